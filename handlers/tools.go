package handlers

import (
	"context"

	"voicesalon/models"
	"voicesalon/services/voiceai"
)

// RegisterTools binds every voice tool to the payload builder of its route,
// so a tool call answers exactly what the REST endpoint would.
func (hb *HandlerBundle) RegisterTools(d *voiceai.Dispatcher) error {
	svc, hrs, loc, gen, appt := hb.Services, hb.Hours, hb.Location, hb.General, hb.Appointments

	tools := map[string]voiceai.Handler{
		"searchServices": func(_ context.Context, a voiceai.Args, lang models.Language) (any, error) {
			return svc.searchPayload(a.String("query"), lang)
		},
		"getServices": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return svc.listPayload(lang), nil
		},
		"getServiceCategory": func(_ context.Context, a voiceai.Args, lang models.Language) (any, error) {
			return svc.categoryPayload(a.String("category"), lang)
		},
		"getPopularServices": func(context.Context, voiceai.Args, models.Language) (any, error) {
			return svc.popularPayload(), nil
		},
		"getServicesByPrice": func(_ context.Context, a voiceai.Args, _ models.Language) (any, error) {
			min, minOK := a.Float("min")
			max, maxOK := a.Float("max")
			return svc.priceRangePayload(min, max, minOK && maxOK)
		},

		"getBusinessHours": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return hrs.statusPayload(lang), nil
		},
		"getWeeklyHours": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return hrs.weekPayload(lang), nil
		},
		"getTodayHours": func(context.Context, voiceai.Args, models.Language) (any, error) {
			return hrs.todayPayload(), nil
		},
		"getAllHours": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return hrs.allPayload(lang), nil
		},

		"getLocation": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return loc.locationPayload(lang), nil
		},
		"getAddress": func(context.Context, voiceai.Args, models.Language) (any, error) {
			return loc.addressPayload(), nil
		},
		"getDirections": func(context.Context, voiceai.Args, models.Language) (any, error) {
			return loc.directionsPayload(), nil
		},
		"getTransportInfo": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return loc.transportPayload(lang), nil
		},
		"getParkingInfo": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return loc.parkingPayload(lang), nil
		},
		"getLocationSummary": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return loc.summaryPayload(lang), nil
		},

		"parseAppointmentDateTime": func(_ context.Context, a voiceai.Args, lang models.Language) (any, error) {
			return appt.parsePayload(a.String("text"), lang)
		},
		"bookAppointment": func(ctx context.Context, a voiceai.Args, lang models.Language) (any, error) {
			req := bookRequest{
				ClientName:   a.String("clientName"),
				Service:      a.String("service"),
				DateTimeText: a.String("dateTimeText"),
				Phone:        a.String("phone"),
				Email:        a.String("email"),
				VoiceEmail:   a.String("voiceEmail"),
			}
			return appt.bookPayload(ctx, req.toModel(lang))
		},
		"getAvailableTimes": func(_ context.Context, a voiceai.Args, lang models.Language) (any, error) {
			return appt.availablePayload(a.String("date"), lang)
		},

		"getWelcomeMessage": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return gen.welcomePayload(lang), nil
		},
		"getAboutInfo": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return gen.aboutPayload(lang), nil
		},
		"getServicesOverview": func(context.Context, voiceai.Args, models.Language) (any, error) {
			return gen.overviewPayload(), nil
		},
		"getContactInfo": func(context.Context, voiceai.Args, models.Language) (any, error) {
			return gen.contactPayload(), nil
		},
		"getBusinessStatus": func(_ context.Context, _ voiceai.Args, lang models.Language) (any, error) {
			return gen.statusPayload(lang), nil
		},
	}

	for name, h := range tools {
		if err := d.Register(name, h); err != nil {
			return err
		}
	}
	return nil
}
