package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"taily/config"
	"taily/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// NewReminderTask builds the asynq task carrying a completion reminder,
// scheduled to fire at the booking's service-window end.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues reminder tasks onto the Redis-backed queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler connected to the reminder queue DB.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{client: client}
}

// ScheduleCompletionReminder enqueues a reminder that fires when the
// booking's service window ends.
func (s *ReminderScheduler) ScheduleCompletionReminder(payload models.ReminderPayload) error {
	task, opts, err := NewReminderTask(payload, payload.WindowEnd)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
