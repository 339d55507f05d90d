package reminder

import (
	"time"

	"taskreminder/model"
)

// dueAt reports whether the task is due at the given instant. The time
// comparison is <= rather than == so a task missed at its exact minute
// (delayed or skipped tick) still fires on the next pass, as long as it has
// not been marked sent. Lexicographic comparison is valid because both
// operands are zero-padded 24-hour HH:MM strings.
func dueAt(t model.Task, now time.Time) bool {
	if t.Date == "" || t.Time == "" {
		return false
	}
	if t.Time == model.AllDay {
		return false
	}
	if t.Date != now.Format("2006-01-02") {
		return false
	}
	return t.Time <= now.Format("15:04")
}
