package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicesalon/models"
)

type fakeQueue struct {
	tasks []*asynq.Task
}

func (q *fakeQueue) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func testScheduler(q *fakeQueue, now time.Time) *ReminderScheduler {
	s := newReminderScheduler(q, time.UTC, 24*time.Hour, nil)
	s.now = func() time.Time { return now }
	return s
}

var appt = models.Appointment{
	ClientName: "Ana",
	Service:    "Manicura",
	Date:       "2024-06-10",
	Time:       "10:00",
	Email:      "ana@example.com",
}

func TestReminderScheduler_Enqueues(t *testing.T) {
	q := &fakeQueue{}
	s := testScheduler(q, time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC))

	require.NoError(t, s.ScheduleReminder(context.Background(), appt, models.LangSpanish))
	require.Len(t, q.tasks, 1)
	assert.Equal(t, TypeSendReminder, q.tasks[0].Type())

	p, err := ParseReminderPayload(q.tasks[0])
	require.NoError(t, err)
	assert.Equal(t, appt, p.Appointment)
	assert.Equal(t, models.LangSpanish, p.Language)
	assert.Equal(t, "2024-06-09T10:00:00Z", p.FireDate)
}

func TestReminderScheduler_Skips(t *testing.T) {
	q := &fakeQueue{}
	s := testScheduler(q, time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC))

	// Less than a day ahead.
	require.NoError(t, s.ScheduleReminder(context.Background(), appt, models.LangEnglish))

	noEmail := appt
	noEmail.Email = models.NotProvided
	require.NoError(t, s.ScheduleReminder(context.Background(), noEmail, models.LangEnglish))

	assert.Empty(t, q.tasks)
}

func TestReminderScheduler_BadDate(t *testing.T) {
	s := testScheduler(&fakeQueue{}, time.Now())
	bad := appt
	bad.Date = "soon"
	assert.Error(t, s.ScheduleReminder(context.Background(), bad, models.LangEnglish))
}
