package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"trimly/config"
	"trimly/models"
	"trimly/services/tasks"
	"trimly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker() {
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask delivers one due appointment reminder. Actual transport
// (push, SMS) is an external collaborator; the worker logs the hand-off.
func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var payload models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	logger.Info("appointment reminder due",
		zap.String("appointmentID", payload.AppointmentID),
		zap.String("customerID", payload.CustomerID),
		zap.String("serviceName", payload.ServiceName),
		zap.String("startDateTime", payload.StartDateTime))
	return nil
}
