package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voicesalon/models"
	"voicesalon/services/tasks"
)

type recordingMailer struct {
	reminded []models.Appointment
	err      error
}

func (m *recordingMailer) SendConfirmation(context.Context, models.Appointment, models.Language) error {
	return nil
}

func (m *recordingMailer) NotifySalon(context.Context, models.Appointment, models.Language) error {
	return nil
}

func (m *recordingMailer) SendReminder(_ context.Context, appt models.Appointment, _ models.Language) error {
	m.reminded = append(m.reminded, appt)
	return m.err
}

func TestHandleReminderTask(t *testing.T) {
	mailer := &recordingMailer{}
	appt := models.Appointment{ClientName: "Ana", Date: "2024-06-10", Time: "10:00", Email: "ana@example.com"}
	task, _, err := tasks.NewReminderTask(models.ReminderPayload{Appointment: appt, Language: models.LangSpanish}, time.Now())
	require.NoError(t, err)

	handler := HandleReminderTask(mailer, zap.NewNop())
	require.NoError(t, handler(context.Background(), task))
	assert.Equal(t, []models.Appointment{appt}, mailer.reminded)

	mailer.err = errors.New("smtp down")
	assert.Error(t, handler(context.Background(), task))
}

func TestHandleReminderTask_BadPayload(t *testing.T) {
	handler := HandleReminderTask(&recordingMailer{}, zap.NewNop())
	raw, _ := json.Marshal("not an object")
	err := handler(context.Background(), asynq.NewTask(tasks.TypeSendReminder, raw))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
