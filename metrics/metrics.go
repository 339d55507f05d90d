package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TickCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_tick_count",
			Help: "Total number of scan ticks by outcome",
		},
		[]string{"status"}, // status: ok, error, skipped
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reminder_tick_duration_seconds",
			Help:    "Duration of one scan-dispatch-commit tick in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		},
	)

	TasksProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_tasks_processed_total",
			Help: "Total number of due tasks processed",
		},
	)

	NotificationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_notification_count",
			Help: "Total number of per-device push sends by outcome",
		},
		[]string{"status"}, // status: success, failed
	)

	TokensCleaned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reminder_tokens_cleaned_total",
			Help: "Total number of unregistered device tokens removed",
		},
	)
)

// RecordTick records one tick outcome and its duration.
func RecordTick(status string, duration time.Duration) {
	TickCount.WithLabelValues(status).Inc()
	TickDuration.Observe(duration.Seconds())
}

// RecordSend records the outcome of one per-device push send.
func RecordSend(status string) {
	NotificationCount.WithLabelValues(status).Inc()
}

func AddTasksProcessed(n int) {
	TasksProcessed.Add(float64(n))
}

func IncTokensCleaned() {
	TokensCleaned.Inc()
}
