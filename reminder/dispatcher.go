package reminder

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"taskreminder/metrics"
	"taskreminder/model"
)

// taskOutcome records how dispatch went for one due task. settled means
// every per-device send attempt finished (success or handled failure), or
// the user had no registered devices; only settled tasks enter the commit
// batch.
type taskOutcome struct {
	task    DueTask
	settled bool
	sent    int
}

// dispatchAll fans out over the due tasks, one goroutine per task, and
// waits for all of them to settle before returning.
func (s *Service) dispatchAll(ctx context.Context, log *zap.Logger, due []DueTask) []taskOutcome {
	outcomes := make([]taskOutcome, len(due))
	var wg sync.WaitGroup
	for i, d := range due {
		wg.Add(1)
		go func(i int, d DueTask) {
			defer wg.Done()
			outcomes[i] = s.dispatchTask(ctx, log, d)
		}(i, d)
	}
	wg.Wait()
	return outcomes
}

// dispatchTask sends the reminder for one task to every registered device
// of the owning user. A user with zero devices still settles, so the task
// is marked sent instead of being re-scanned forever; the known tradeoff
// is that a device registered moments later misses this reminder.
func (s *Service) dispatchTask(ctx context.Context, log *zap.Logger, d DueTask) taskOutcome {
	tokens, err := s.devices.Tokens(ctx, d.UserID)
	if err != nil {
		log.Error("Failed to read device tokens",
			zap.String("user_id", d.UserID),
			zap.String("task_id", d.Task.TaskID),
			zap.Error(err),
		)
		return taskOutcome{task: d}
	}

	if len(tokens) == 0 {
		return taskOutcome{task: d, settled: true}
	}

	msg := buildMessage(d.Task)

	// One send per token, independently. A failure on one device must not
	// block the others, and only an all-settled join gates the commit: a
	// permanently dead token would otherwise hold the task unsent forever.
	results := make([]bool, len(tokens))
	var wg sync.WaitGroup
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			results[i] = s.sendToToken(ctx, log, d, token, msg)
		}(i, token)
	}
	wg.Wait()

	sent := 0
	for _, ok := range results {
		if ok {
			sent++
		}
	}
	return taskOutcome{task: d, settled: true, sent: sent}
}

func (s *Service) sendToToken(ctx context.Context, log *zap.Logger, d DueTask, token string, msg Message) bool {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	err := s.sender.Send(sendCtx, token, msg)
	if err == nil {
		metrics.RecordSend("success")
		return true
	}
	metrics.RecordSend("failed")

	if s.sender.NotRegistered(err) {
		// Self-healing cleanup: the push service says this token is gone
		// for good, so drop it from the registry.
		if delErr := s.devices.DeleteToken(ctx, d.UserID, token); delErr != nil {
			log.Warn("Failed to delete unregistered token",
				zap.String("user_id", d.UserID),
				zap.String("token_suffix", tokenSuffix(token)),
				zap.Error(delErr),
			)
		} else {
			metrics.IncTokensCleaned()
			log.Info("Removed unregistered device token",
				zap.String("user_id", d.UserID),
				zap.String("token_suffix", tokenSuffix(token)),
			)
		}
		return false
	}

	log.Warn("Push send failed",
		zap.String("user_id", d.UserID),
		zap.String("task_id", d.Task.TaskID),
		zap.String("token_suffix", tokenSuffix(token)),
		zap.Error(err),
	)
	return false
}

// buildMessage assembles the push payload for a due task. The task id
// rides along in the data payload for client-side correlation.
func buildMessage(t model.Task) Message {
	title := "Reminder: " + t.Title
	if t.Title == "" {
		title = "Task"
	}
	return Message{
		Title: title,
		Body:  fmt.Sprintf("Your task is scheduled for %s.", t.Time),
		Data:  map[string]string{"taskId": t.TaskID},
	}
}

// tokenSuffix keeps full push tokens out of the logs.
func tokenSuffix(token string) string {
	if len(token) <= 8 {
		return token
	}
	return "..." + token[len(token)-8:]
}
