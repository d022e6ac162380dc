package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicesalon/models"
)

type fakeEmails struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeEmails) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

var booked = models.Appointment{
	ClientName: "Ana",
	Service:    "Manicura",
	Date:       "2024-06-10",
	Time:       "10:00",
	Phone:      models.NotProvided,
	Email:      "ana@example.com",
}

func testConfig() ResendConfig {
	return ResendConfig{
		From:       "Hera's Nails & Lashes <citas@example.com>",
		SalonEmail: "salon@example.com",
		SalonName:  "Hera's Nails & Lashes",
		Location: models.Location{
			Address:         "Calle Santos Justo y Pastor 72",
			City:            "Valencia",
			PublicTransport: models.PublicTransport{Metro: []models.TransitLine{{Line: "5", Stop: "Amistat"}}},
		},
	}
}

func TestResendMailer_SendConfirmation(t *testing.T) {
	emails := &fakeEmails{}
	m := newResendMailer(emails, testConfig(), nil)

	require.NoError(t, m.SendConfirmation(context.Background(), booked, models.LangSpanish))
	require.Len(t, emails.sent, 1)

	sent := emails.sent[0]
	assert.Equal(t, []string{"ana@example.com"}, sent.To)
	assert.Equal(t, "Cita Confirmada - Hera's Nails & Lashes", sent.Subject)
	assert.Contains(t, sent.Html, "lunes, 10 de junio de 2024")
	assert.Contains(t, sent.Html, "Metro: 5 - Amistat")
	assert.Contains(t, sent.Html, "Hera&#39;s Nails &amp; Lashes")
}

func TestResendMailer_Reminder(t *testing.T) {
	emails := &fakeEmails{}
	m := newResendMailer(emails, testConfig(), nil)

	require.NoError(t, m.SendReminder(context.Background(), booked, models.LangEnglish))
	assert.Equal(t, "Appointment Reminder - Hera's Nails & Lashes", emails.sent[0].Subject)
	assert.Contains(t, emails.sent[0].Html, "Monday, June 10, 2024")
}

func TestResendMailer_NoEmail(t *testing.T) {
	emails := &fakeEmails{}
	m := newResendMailer(emails, testConfig(), nil)

	appt := booked
	appt.Email = models.NotProvided
	assert.Error(t, m.SendConfirmation(context.Background(), appt, models.LangEnglish))
	assert.Empty(t, emails.sent)
}

func TestResendMailer_NotifySalon(t *testing.T) {
	emails := &fakeEmails{}
	cfg := testConfig()
	m := newResendMailer(emails, cfg, nil)
	require.NoError(t, m.NotifySalon(context.Background(), booked, models.LangSpanish))
	require.Len(t, emails.sent, 1)
	assert.Equal(t, []string{"salon@example.com"}, emails.sent[0].To)

	cfg.SalonEmail = ""
	quiet := newResendMailer(emails, cfg, nil)
	require.NoError(t, quiet.NotifySalon(context.Background(), booked, models.LangSpanish))
	assert.Len(t, emails.sent, 1)
}

func TestResendMailer_SendError(t *testing.T) {
	m := newResendMailer(&fakeEmails{err: errors.New("rate limited")}, testConfig(), nil)
	err := m.SendConfirmation(context.Background(), booked, models.LangEnglish)
	assert.ErrorContains(t, err, "rate limited")
}

func TestNew_WithoutKeyIsNoop(t *testing.T) {
	_, ok := New(ResendConfig{}, nil).(*NoopMailer)
	assert.True(t, ok)
}
