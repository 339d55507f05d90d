package reminder

import (
	"testing"
	"time"

	"taskreminder/model"
)

func TestDueAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task model.Task
		now  time.Time
		want bool
	}{
		{
			name: "due at exact minute",
			task: model.Task{Date: "2024-05-01", Time: "09:00"},
			now:  now,
			want: true,
		},
		{
			name: "not yet due",
			task: model.Task{Date: "2024-05-01", Time: "09:00"},
			now:  time.Date(2024, 5, 1, 8, 59, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "late fire after missed minute",
			task: model.Task{Date: "2024-05-01", Time: "09:00"},
			now:  time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "earlier time same day",
			task: model.Task{Date: "2024-05-01", Time: "07:30"},
			now:  now,
			want: true,
		},
		{
			name: "wrong date",
			task: model.Task{Date: "2024-05-02", Time: "09:00"},
			now:  now,
			want: false,
		},
		{
			name: "yesterday never fires",
			task: model.Task{Date: "2024-04-30", Time: "09:00"},
			now:  now,
			want: false,
		},
		{
			name: "all day sentinel excluded",
			task: model.Task{Date: "2024-05-01", Time: model.AllDay},
			now:  now,
			want: false,
		},
		{
			name: "missing date skipped",
			task: model.Task{Time: "09:00"},
			now:  now,
			want: false,
		},
		{
			name: "missing time skipped",
			task: model.Task{Date: "2024-05-01"},
			now:  now,
			want: false,
		},
		{
			name: "midnight boundary",
			task: model.Task{Date: "2024-05-01", Time: "00:00"},
			now:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "end of day",
			task: model.Task{Date: "2024-05-01", Time: "23:59"},
			now:  time.Date(2024, 5, 1, 23, 59, 30, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dueAt(tt.task, tt.now)
			if got != tt.want {
				t.Errorf("dueAt(%+v, %v) = %v, want %v", tt.task, tt.now, got, tt.want)
			}
		})
	}
}

func TestDueAtRespectsLocation(t *testing.T) {
	// 2024-05-01 01:30 in UTC+2 is still 2024-04-30 23:30 UTC. The scan
	// compares in the configured location, not the instant's own zone.
	loc := time.FixedZone("UTC+2", 2*60*60)
	instant := time.Date(2024, 4, 30, 23, 30, 0, 0, time.UTC)

	task := model.Task{Date: "2024-05-01", Time: "01:00"}
	if dueAt(task, instant) {
		t.Error("task should not be due in UTC")
	}
	if !dueAt(task, instant.In(loc)) {
		t.Error("task should be due in UTC+2")
	}
}
