package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"voicesalon/models"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
		// Retries must not outlive the appointment itself.
		asynq.Deadline(fireAt.Add(24 * time.Hour)),
	}

	return task, opts, nil
}

// ParseReminderPayload decodes the body of a reminder task.
func ParseReminderPayload(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("reminder payload: %w", err)
	}
	return p, nil
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderScheduler queues an email reminder a fixed lead time before each
// appointment.
type ReminderScheduler struct {
	client enqueuer
	loc    *time.Location
	lead   time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewReminderScheduler(client *asynq.Client, loc *time.Location, lead time.Duration, logger *zap.Logger) *ReminderScheduler {
	return newReminderScheduler(client, loc, lead, logger)
}

func newReminderScheduler(client enqueuer, loc *time.Location, lead time.Duration, logger *zap.Logger) *ReminderScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderScheduler{client: client, loc: loc, lead: lead, now: time.Now, logger: logger}
}

// ScheduleReminder enqueues the reminder. Appointments without an email, or
// whose reminder time has already passed, are skipped.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, appt models.Appointment, lang models.Language) error {
	if !appt.HasEmail() {
		return nil
	}
	start, err := appt.StartsAt(s.loc)
	if err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	fireAt := start.Add(-s.lead)
	if !fireAt.After(s.now()) {
		s.logger.Debug("Reminder time already passed, not scheduling",
			zap.String("date", appt.Date), zap.String("time", appt.Time))
		return nil
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		Appointment: appt,
		Language:    lang,
		FireDate:    fireAt.Format(time.RFC3339),
	}, fireAt)
	if err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}

	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("schedule reminder: enqueue: %w", err)
	}
	s.logger.Info("Reminder scheduled", zap.String("task_id", info.ID), zap.Time("fire_at", fireAt))
	return nil
}
