package notification

import (
	"context"

	"voicesalon/models"
)

// Mailer sends the booking emails. Implementations must be safe for
// concurrent use.
type Mailer interface {
	SendConfirmation(ctx context.Context, appt models.Appointment, lang models.Language) error
	NotifySalon(ctx context.Context, appt models.Appointment, lang models.Language) error
	SendReminder(ctx context.Context, appt models.Appointment, lang models.Language) error
}
