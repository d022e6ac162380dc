package appointment

import (
	"fmt"
	"time"

	"voicesalon/models"
	"voicesalon/services/language"
)

// VoiceReply is the text a voice agent reads back to the caller.
type VoiceReply struct {
	Message            string `json:"voice_response"`
	Summary            string `json:"summary,omitempty"`
	NeedsClarification bool   `json:"needs_clarification,omitempty"`
}

// Formatter renders localized replies. Opening hours in the messages come
// from the schedule it was built with.
type Formatter struct {
	schedule models.WeeklySchedule
}

func NewFormatter(schedule models.WeeklySchedule) *Formatter {
	return &Formatter{schedule: schedule}
}

// DisplayDate renders an ISO date the way each locale reads it back:
// DD/MM/YYYY in Spanish, MM/DD/YYYY in English. Unparseable input is
// returned unchanged.
func DisplayDate(iso string, lang models.Language) string {
	day, err := time.Parse(models.ISODate, iso)
	if err != nil {
		return iso
	}
	if lang.IsSpanish() {
		return day.Format("02/01/2006")
	}
	return day.Format("01/02/2006")
}

// Clarification asks the caller to repeat the date and time.
func (f *Formatter) Clarification(lang models.Language) VoiceReply {
	msg := `Sorry, I couldn't understand the date and time. Please tell me something like "tomorrow at 2 PM" or "Friday at 10 AM".`
	if lang.IsSpanish() {
		msg = `Lo siento, no pude entender la fecha y hora. Por favor, dime algo como "mañana a las 2 de la tarde" o "el viernes a las 10 de la mañana".`
	}
	return VoiceReply{Message: msg, NeedsClarification: true}
}

// Rejection explains why a parsed date and time cannot be booked.
func (f *Formatter) Rejection(result models.ValidationResult, date string, lang models.Language) VoiceReply {
	if result.Reason == models.ReasonOutsideHours {
		return VoiceReply{Message: f.outsideHours(date, lang), NeedsClarification: true}
	}
	return VoiceReply{Message: f.closedOnDay(lang), NeedsClarification: true}
}

func (f *Formatter) closedOnDay(lang models.Language) string {
	hours, ok := language.DescribeOpenDays(f.schedule, lang)
	if lang.IsSpanish() {
		if !ok {
			return "Lo siento, estamos cerrados ese día."
		}
		return fmt.Sprintf("Lo siento, estamos cerrados ese día. Nuestros horarios son %s.", hours)
	}
	if !ok {
		return "Sorry, we're closed on that day."
	}
	return fmt.Sprintf("Sorry, we're closed on that day. Our hours are %s.", hours)
}

func (f *Formatter) outsideHours(date string, lang models.Language) string {
	var (
		hours models.OpenInterval
		open  bool
	)
	if day, err := time.Parse(models.ISODate, date); err == nil {
		hours, open = f.schedule.DayHours(day.Weekday())
	}

	if lang.IsSpanish() {
		if open {
			return fmt.Sprintf("Lo siento, ese horario está fuera de nuestro horario de atención. Ese día estamos abiertos de %s a %s.",
				hours.StartClock(), hours.EndClock())
		}
		return "Lo siento, ese horario está fuera de nuestro horario de atención."
	}
	if open {
		return fmt.Sprintf("Sorry, that time is outside our business hours. That day we're open from %s to %s.",
			hours.StartClock(), hours.EndClock())
	}
	return "Sorry, that time is outside our business hours."
}

// Understood acknowledges a valid, bookable date and time and asks for the
// remaining booking details.
func (f *Formatter) Understood(parsed models.ParsedDateTime, lang models.Language) VoiceReply {
	date := DisplayDate(parsed.DateValue(), lang)
	if lang.IsSpanish() {
		return VoiceReply{Message: fmt.Sprintf(
			"Perfecto, entiendo que quieres una cita para el %s a las %s. ¿Cuál es tu nombre y qué servicio te gustaría? También necesito tu correo electrónico para enviarte un recordatorio.",
			date, parsed.TimeValue())}
	}
	return VoiceReply{Message: fmt.Sprintf(
		"Perfect, I understand you want an appointment for %s at %s. What's your name, what service would you like, and what's your email address for reminders?",
		date, parsed.TimeValue())}
}

// Confirmation reads back a booked appointment. The reminder goes by email
// when one was given, otherwise by SMS.
func (f *Formatter) Confirmation(appt models.Appointment, lang models.Language) VoiceReply {
	date := DisplayDate(appt.Date, lang)

	if lang.IsSpanish() {
		reminder := "Te enviaremos un recordatorio por SMS."
		if appt.HasEmail() {
			reminder = fmt.Sprintf("Te enviaremos un recordatorio por correo electrónico a %s.", appt.Email)
		}
		return VoiceReply{
			Message: fmt.Sprintf("Perfecto, %s. Tu cita para %s está confirmada para el %s a las %s. %s ¿Hay algo más en lo que pueda ayudarte?",
				appt.ClientName, appt.Service, date, appt.Time, reminder),
			Summary: fmt.Sprintf("Cita confirmada: %s - %s %s", appt.Service, date, appt.Time),
		}
	}

	reminder := "We'll send you an SMS reminder."
	if appt.HasEmail() {
		reminder = fmt.Sprintf("We'll send you an email reminder to %s.", appt.Email)
	}
	return VoiceReply{
		Message: fmt.Sprintf("Perfect, %s. Your appointment for %s is confirmed for %s at %s. %s Is there anything else I can help you with?",
			appt.ClientName, appt.Service, date, appt.Time, reminder),
		Summary: fmt.Sprintf("Appointment confirmed: %s - %s %s", appt.Service, date, appt.Time),
	}
}

// BookingFailed is returned when the calendar could not take the appointment.
func (f *Formatter) BookingFailed(lang models.Language) VoiceReply {
	if lang.IsSpanish() {
		return VoiceReply{Message: "Lo siento, hubo un problema al crear la cita. Por favor, intenta de nuevo o contacta con nosotros directamente."}
	}
	return VoiceReply{Message: "Sorry, there was a problem creating the appointment. Please try again or contact us directly."}
}

// AvailableTimes lists the bookable slots of an open day.
func (f *Formatter) AvailableTimes(date string, hours models.OpenInterval, slots []string, lang models.Language) VoiceReply {
	display := DisplayDate(date, lang)
	list := language.JoinList(slots, lang)
	if lang.IsSpanish() {
		return VoiceReply{Message: fmt.Sprintf("Para el %s, tenemos horarios disponibles de %s a %s. Horarios disponibles: %s.",
			display, hours.StartClock(), hours.EndClock(), list)}
	}
	return VoiceReply{Message: fmt.Sprintf("For %s, we have available times from %s to %s. Available times: %s.",
		display, hours.StartClock(), hours.EndClock(), list)}
}

// ClosedDay is the short reply for availability requests on a closed day.
func (f *Formatter) ClosedDay(lang models.Language) VoiceReply {
	if lang.IsSpanish() {
		return VoiceReply{Message: "Lo siento, estamos cerrados ese día."}
	}
	return VoiceReply{Message: "Sorry, we're closed on that day."}
}
