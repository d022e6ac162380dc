package appointment

import (
	"time"

	"voicesalon/models"
)

// ValidateAppointmentTime checks an ISO date and an "HH:MM" time against the
// weekly schedule. Both ends of the opening interval are bookable.
func ValidateAppointmentTime(date, clock string, schedule models.WeeklySchedule) models.ValidationResult {
	day, err := time.Parse(models.ISODate, date)
	if err != nil {
		return models.ValidationResult{Reason: models.ReasonClosedOnDay}
	}

	hours, open := schedule.DayHours(day.Weekday())
	if !open {
		return models.ValidationResult{Reason: models.ReasonClosedOnDay}
	}

	minute, err := models.ParseClock(clock)
	if err != nil || !hours.Contains(minute) {
		return models.ValidationResult{Reason: models.ReasonOutsideHours}
	}
	return models.ValidationResult{Valid: true}
}
