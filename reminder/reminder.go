// Package reminder implements the due-task scan, the per-device push
// fan-out and the idempotent mark-sent commit. Each tick is stateless:
// everything it needs lives in the task store and the device registry.
package reminder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskreminder/metrics"
	"taskreminder/model"
)

// DueTask pairs a task with the id of the user that owns it.
type DueTask struct {
	UserID string
	Task   model.Task
}

// TaskStore reads unsent task candidates across all users and applies the
// mark-sent batch. MarkSent must be atomic: either every task in the slice
// gets sent=true or none does.
type TaskStore interface {
	UnsentTasks(ctx context.Context) ([]DueTask, error)
	MarkSent(ctx context.Context, tasks []DueTask) error
}

// DeviceRegistry reads a user's registered push tokens and removes tokens
// the push service reports as permanently invalid.
type DeviceRegistry interface {
	Tokens(ctx context.Context, userID string) ([]string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

// PushSender delivers one message to one device token. NotRegistered
// reports whether a send error means the token is permanently invalid.
type PushSender interface {
	Send(ctx context.Context, token string, msg Message) error
	NotRegistered(err error) bool
}

// Message is the push payload built for a due task.
type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// Result summarizes one tick.
type Result struct {
	Processed int // due tasks whose dispatch settled and that were marked sent
	Sent      int // successful per-device sends
}

type Service struct {
	store       TaskStore
	devices     DeviceRegistry
	sender      PushSender
	log         *zap.Logger
	loc         *time.Location
	sendTimeout time.Duration
}

func NewService(store TaskStore, devices DeviceRegistry, sender PushSender, log *zap.Logger, loc *time.Location, sendTimeout time.Duration) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		store:       store,
		devices:     devices,
		sender:      sender,
		log:         log,
		loc:         loc,
		sendTimeout: sendTimeout,
	}
}

// RunTick executes one scan-dispatch-commit cycle against the given
// instant. Dispatch runs concurrently per task and per device; the
// mark-sent batch is committed only after every dispatch has settled, so a
// failed commit leaves every task unsent and the next tick re-dispatches
// (at-least-once, never at-most-once).
func (s *Service) RunTick(ctx context.Context, now time.Time) (Result, error) {
	started := time.Now()
	runID := uuid.New().String()
	log := s.log.With(zap.String("run_id", runID))

	candidates, err := s.store.UnsentTasks(ctx)
	if err != nil {
		log.Error("Failed to scan unsent tasks", zap.Error(err))
		metrics.RecordTick("error", time.Since(started))
		return Result{}, err
	}

	var due []DueTask
	for _, c := range candidates {
		// The store query already filters on sent and completed; re-check
		// here so a stale read can never re-notify a dispatched task.
		if c.Task.Sent || c.Task.Completed {
			continue
		}
		if dueAt(c.Task, now.In(s.loc)) {
			due = append(due, c)
		}
	}

	if len(due) == 0 {
		log.Debug("No due tasks", zap.Int("candidates", len(candidates)))
		metrics.RecordTick("ok", time.Since(started))
		return Result{}, nil
	}

	log.Info("Dispatching due tasks",
		zap.Int("candidates", len(candidates)),
		zap.Int("due", len(due)),
	)

	outcomes := s.dispatchAll(ctx, log, due)

	// Commit only the tasks whose dispatch settled. A failed token read
	// leaves its task unsent so the next tick retries it.
	var settled []DueTask
	sent := 0
	for _, o := range outcomes {
		if o.settled {
			settled = append(settled, o.task)
			sent += o.sent
		}
	}

	if len(settled) > 0 {
		if err := s.store.MarkSent(ctx, settled); err != nil {
			log.Error("Failed to commit sent flags",
				zap.Int("tasks", len(settled)),
				zap.Error(err),
			)
			metrics.RecordTick("error", time.Since(started))
			return Result{}, err
		}
	}

	metrics.AddTasksProcessed(len(settled))
	metrics.RecordTick("ok", time.Since(started))
	log.Info("Tick completed",
		zap.Int("processed", len(settled)),
		zap.Int("sent", sent),
		zap.Duration("duration", time.Since(started)),
	)
	return Result{Processed: len(settled), Sent: sent}, nil
}
