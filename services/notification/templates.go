package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"voicesalon/models"
	"voicesalon/services/language"
)

type emailCopy struct {
	ConfirmSubject  string
	ReminderSubject string
	ConfirmTitle    string
	ReminderTitle   string
	Hello           string
	ConfirmIntro    string
	ReminderIntro   string
	DateLabel       string
	TimeLabel       string
	ServiceLabel    string
	EmailLabel      string
	LocationLabel   string
	GettingThere    string
	ContactLabel    string
	ContactText     string
	SeeYou          string
	Team            string
	Footer          string
}

var copies = map[models.Language]emailCopy{
	models.LangEnglish: {
		ConfirmSubject:  "Appointment Confirmed - %s",
		ReminderSubject: "Appointment Reminder - %s",
		ConfirmTitle:    "Appointment Confirmed",
		ReminderTitle:   "Appointment Reminder",
		Hello:           "Hello",
		ConfirmIntro:    "Your appointment has been successfully confirmed. Here are all the details:",
		ReminderIntro:   "This is a reminder of your upcoming appointment:",
		DateLabel:       "Date",
		TimeLabel:       "Time",
		ServiceLabel:    "Service",
		EmailLabel:      "Email",
		LocationLabel:   "Location",
		GettingThere:    "How to get there",
		ContactLabel:    "Contact",
		ContactText:     "If you need to change or cancel your appointment, please contact us at least 24 hours in advance.",
		SeeYou:          "We look forward to seeing you soon!",
		Team:            "The %s team",
		Footer:          "This email was automatically generated by our booking system.",
	},
	models.LangSpanish: {
		ConfirmSubject:  "Cita Confirmada - %s",
		ReminderSubject: "Recordatorio de Cita - %s",
		ConfirmTitle:    "Cita Confirmada",
		ReminderTitle:   "Recordatorio de Cita",
		Hello:           "¡Hola",
		ConfirmIntro:    "Tu cita ha sido confirmada exitosamente. Aquí tienes todos los detalles:",
		ReminderIntro:   "Te recordamos tu próxima cita:",
		DateLabel:       "Fecha",
		TimeLabel:       "Hora",
		ServiceLabel:    "Servicio",
		EmailLabel:      "Email",
		LocationLabel:   "Ubicación",
		GettingThere:    "Cómo llegar",
		ContactLabel:    "Contacto",
		ContactText:     "Si necesitas cambiar o cancelar tu cita, contáctanos con al menos 24 horas de anticipación.",
		SeeYou:          "¡Esperamos verte pronto!",
		Team:            "El equipo de %s",
		Footer:          "Este email fue generado automáticamente por nuestro sistema de reservas.",
	},
}

func copyFor(lang models.Language) emailCopy {
	if c, ok := copies[lang]; ok {
		return c
	}
	return copies[models.LangEnglish]
}

type clientEmail struct {
	Copy      emailCopy
	Title     string
	Intro     string
	SalonName string
	Team      string
	Name      string
	Date      string
	Time      string
	Service   string
	Email     string
	Address   string
	Area      string
	Transport []string
}

var clientTemplate = template.Must(template.New("client").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #ff6b9d, #c44569); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
    .appointment-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #ff6b9d; }
    .label { font-weight: bold; color: #c44569; }
    .footer { text-align: center; margin-top: 30px; color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="logo">💅 {{.SalonName}}</div>
      <h1>{{.Title}}</h1>
    </div>
    <div class="content">
      <h2>{{.Copy.Hello}} {{.Name}}!</h2>
      <p>{{.Intro}}</p>
      <div class="appointment-details">
        <div><span class="label">📅 {{.Copy.DateLabel}}:</span> {{.Date}}</div>
        <div><span class="label">🕐 {{.Copy.TimeLabel}}:</span> {{.Time}}</div>
        <div><span class="label">📝 {{.Copy.ServiceLabel}}:</span> {{.Service}}</div>
        <div><span class="label">📧 {{.Copy.EmailLabel}}:</span> {{.Email}}</div>
      </div>
      {{if .Address}}<p><strong>📍 {{.Copy.LocationLabel}}:</strong><br>{{.Address}}{{if .Area}}<br>{{.Area}}{{end}}</p>{{end}}
      {{if .Transport}}<p><strong>🚗 {{.Copy.GettingThere}}:</strong><br>{{range .Transport}}• {{.}}<br>{{end}}</p>{{end}}
      <p><strong>📞 {{.Copy.ContactLabel}}:</strong><br>{{.Copy.ContactText}}</p>
      <p>{{.Copy.SeeYou}}</p>
      <p>{{.Team}} 💅✨</p>
    </div>
    <div class="footer"><p>{{.Copy.Footer}}</p></div>
  </div>
</body>
</html>
`))

var salonTemplate = template.Must(template.New("salon").Parse(`<h2>New appointment booked by the voice assistant</h2>
<ul>
  <li><strong>Client:</strong> {{.ClientName}}</li>
  <li><strong>Service:</strong> {{.Service}}</li>
  <li><strong>Date:</strong> {{.Date}} {{.Time}}</li>
  <li><strong>Phone:</strong> {{.Phone}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Language:</strong> {{.Language}}</li>
</ul>
`))

type salonEmail struct {
	models.Appointment
	Language models.Language
}

func transportLines(loc models.Location) []string {
	var lines []string
	for _, m := range loc.PublicTransport.Metro {
		lines = append(lines, "Metro: "+describeLine(m))
	}
	for _, b := range loc.PublicTransport.Bus {
		lines = append(lines, "Bus: "+describeLine(b))
	}
	return lines
}

func describeLine(l models.TransitLine) string {
	s := l.Line
	if l.Stop != "" {
		s += " - " + l.Stop
	}
	if l.Distance != "" {
		s += " (" + l.Distance + ")"
	}
	return s
}

func renderClient(appt models.Appointment, lang models.Language, reminder bool, salonName string, loc models.Location) (subject, body string, err error) {
	c := copyFor(lang)
	date := appt.Date
	if day, perr := time.Parse(models.ISODate, appt.Date); perr == nil {
		date = language.LongDate(day, lang)
	}

	data := clientEmail{
		Copy:      c,
		Title:     c.ConfirmTitle,
		Intro:     c.ConfirmIntro,
		SalonName: salonName,
		Team:      fmt.Sprintf(c.Team, salonName),
		Name:      appt.ClientName,
		Date:      date,
		Time:      appt.Time,
		Service:   appt.Service,
		Email:     appt.Email,
		Address:   loc.Address,
		Area:      loc.Area(),
		Transport: transportLines(loc),
	}
	subject = fmt.Sprintf(c.ConfirmSubject, salonName)
	if reminder {
		data.Title = c.ReminderTitle
		data.Intro = c.ReminderIntro
		subject = fmt.Sprintf(c.ReminderSubject, salonName)
	}

	var buf bytes.Buffer
	if err := clientTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render email: %w", err)
	}
	return subject, buf.String(), nil
}

func renderSalon(appt models.Appointment, lang models.Language) (string, string, error) {
	var buf bytes.Buffer
	if err := salonTemplate.Execute(&buf, salonEmail{Appointment: appt, Language: lang}); err != nil {
		return "", "", fmt.Errorf("render salon email: %w", err)
	}
	subject := fmt.Sprintf("New appointment: %s - %s %s", appt.Service, appt.Date, appt.Time)
	return subject, buf.String(), nil
}
