package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"taily/config"
	"taily/models"
	"taily/services/notification"
	"taily/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background. It consumes the
// completion reminders queued when bookings are accepted and pushes them to
// the sitter once the service window ends.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"bookingId": p.BookingID,
			"windowEnd": p.WindowEnd.Format(time.RFC3339),
		}

		err := notifSvc.SendProviderPushNotification(ctx, p.ProviderID,
			"Booking ready to complete",
			"The "+p.ServiceType+" service window has ended. Mark the booking completed.",
			data,
		)
		if err != nil {
			log.Printf("[ReminderHandler] failed to send notification: %v", err)
		}
		return err
	}
}
