package handlers

import (
	"time"

	"voicesalon/services/appointment"
	"voicesalon/services/catalog"
	"voicesalon/services/conversation"
	"voicesalon/services/hours"
	"voicesalon/services/location"
	"voicesalon/services/salondata"
	"voicesalon/services/voiceai"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Services     *ServiceHandler
	Hours        *HoursHandler
	Location     *LocationHandler
	General      *GeneralHandler
	Appointments *AppointmentHandler
	Voice        *VoiceHandler
}

// Deps are the services the handlers are built from.
type Deps struct {
	SalonName    string
	Directory    *salondata.Directory
	TimeZone     *time.Location
	Appointments *appointment.Service
	ElevenLabs   *voiceai.ElevenLabsClient
	Dispatcher   *voiceai.Dispatcher
	Tracker      *conversation.Tracker
	VapiSecret   string
	BaseURL      string
}

// NewHandlerBundle builds the handlers and registers every voice tool on
// deps.Dispatcher.
func NewHandlerBundle(deps Deps) (*HandlerBundle, error) {
	cat := catalog.New(deps.Directory.Catalog)
	board := hours.NewBoard(deps.Directory.Hours(), deps.TimeZone)
	guide := location.NewGuide(deps.Directory.Schedule)
	logger := deps.Dispatcher.Logger()

	hb := &HandlerBundle{
		Services:     NewServiceHandler(cat),
		Hours:        NewHoursHandler(board),
		Location:     NewLocationHandler(guide),
		General:      NewGeneralHandler(deps.SalonName, cat, board, guide, deps.TimeZone),
		Appointments: NewAppointmentHandler(deps.Appointments),
		Voice: &VoiceHandler{
			ElevenLabs: deps.ElevenLabs,
			Webhook:    voiceai.NewElevenLabsWebhook(deps.ElevenLabs, deps.Dispatcher, logger),
			Vapi:       voiceai.NewVapiTools(deps.Dispatcher, deps.VapiSecret, logger),
			Tracker:    deps.Tracker,
			BaseURL:    deps.BaseURL,
		},
	}
	if err := hb.RegisterTools(deps.Dispatcher); err != nil {
		return nil, err
	}
	return hb, nil
}
