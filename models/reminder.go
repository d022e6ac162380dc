package models

// ReminderPayload is the queued task body for an appointment reminder.
type ReminderPayload struct {
	Appointment Appointment `json:"appointment"`
	Language    Language    `json:"language"`
	FireDate    string      `json:"fireDate"`
}
