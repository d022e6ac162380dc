package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"voicesalon/models"
)

// emailAPI is the part of the Resend client the mailer uses.
type emailAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type ResendMailer struct {
	emails     emailAPI
	from       string
	salonEmail string
	salonName  string
	location   models.Location
	logger     *zap.Logger
}

type ResendConfig struct {
	APIKey     string
	From       string
	SalonEmail string
	SalonName  string
	Location   models.Location
}

func NewResendMailer(cfg ResendConfig, logger *zap.Logger) *ResendMailer {
	return newResendMailer(resend.NewClient(cfg.APIKey).Emails, cfg, logger)
}

func newResendMailer(emails emailAPI, cfg ResendConfig, logger *zap.Logger) *ResendMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResendMailer{
		emails:     emails,
		from:       cfg.From,
		salonEmail: cfg.SalonEmail,
		salonName:  cfg.SalonName,
		location:   cfg.Location,
		logger:     logger,
	}
}

func (m *ResendMailer) SendConfirmation(ctx context.Context, appt models.Appointment, lang models.Language) error {
	return m.sendClient(ctx, appt, lang, false)
}

func (m *ResendMailer) SendReminder(ctx context.Context, appt models.Appointment, lang models.Language) error {
	return m.sendClient(ctx, appt, lang, true)
}

func (m *ResendMailer) sendClient(ctx context.Context, appt models.Appointment, lang models.Language, reminder bool) error {
	if !appt.HasEmail() {
		return fmt.Errorf("appointment for %s has no email", appt.ClientName)
	}
	subject, body, err := renderClient(appt, lang, reminder, m.salonName, m.location)
	if err != nil {
		return err
	}
	return m.send(ctx, appt.Email, subject, body)
}

// NotifySalon tells the salon about a booking. It does nothing when no salon
// address is configured.
func (m *ResendMailer) NotifySalon(ctx context.Context, appt models.Appointment, lang models.Language) error {
	if m.salonEmail == "" {
		return nil
	}
	subject, body, err := renderSalon(appt, lang)
	if err != nil {
		return err
	}
	return m.send(ctx, m.salonEmail, subject, body)
}

func (m *ResendMailer) send(ctx context.Context, to, subject, html string) error {
	sent, err := m.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("resend: send %q: %w", subject, err)
	}
	m.logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject), zap.String("id", sent.Id))
	return nil
}

// NoopMailer is used when RESEND_API_KEY is not set.
type NoopMailer struct {
	logger *zap.Logger
}

func NewNoopMailer(logger *zap.Logger) *NoopMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoopMailer{logger: logger}
}

func (n *NoopMailer) SendConfirmation(_ context.Context, appt models.Appointment, _ models.Language) error {
	n.logger.Info("Resend API key not configured, skipping confirmation email", zap.String("email", appt.Email))
	return nil
}

func (n *NoopMailer) NotifySalon(context.Context, models.Appointment, models.Language) error {
	return nil
}

func (n *NoopMailer) SendReminder(_ context.Context, appt models.Appointment, _ models.Language) error {
	n.logger.Info("Resend API key not configured, skipping reminder email", zap.String("email", appt.Email))
	return nil
}

// New returns the Resend mailer when an API key is configured and the no-op
// mailer otherwise.
func New(cfg ResendConfig, logger *zap.Logger) Mailer {
	if cfg.APIKey == "" {
		return NewNoopMailer(logger)
	}
	return NewResendMailer(cfg, logger)
}
