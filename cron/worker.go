package cron

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"voicesalon/config"
	"voicesalon/services/notification"
	"voicesalon/services/tasks"
)

// RedisQueueOpt is the asynq connection for the reminder queue (REDIS_QUEUE_DB).
func RedisQueueOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker runs the reminder worker in the background and returns
// the server so the caller can shut it down.
func InitReminderWorker(mailer notification.Mailer, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisQueueOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, HandleReminderTask(mailer, logger))

	go func() {
		logger.Info("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Warn("[ReminderWorker] ❌ Failed to start worker",
				zap.Int("attempt", attempts), zap.Int("max", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[ReminderWorker] ❗ Max retry attempts reached, reminders disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// HandleReminderTask emails the client their reminder.
func HandleReminderTask(mailer notification.Mailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReminderPayload(task)
		if err != nil {
			logger.Error("[ReminderHandler] 🔴 Invalid payload", zap.Error(err))
			// A payload that cannot be decoded will never succeed.
			return asynq.SkipRetry
		}

		logger.Info("[ReminderHandler] ⏰ Sending appointment reminder",
			zap.String("client", p.Appointment.ClientName),
			zap.String("date", p.Appointment.Date),
			zap.String("time", p.Appointment.Time),
		)

		if err := mailer.SendReminder(ctx, p.Appointment, p.Language); err != nil {
			logger.Warn("[ReminderHandler] ❌ Failed to send reminder", zap.Error(err))
			return err
		}
		return nil
	}
}
