package voiceai

import (
	"net/http"
	"sort"
	"strings"

	"voicesalon/models"
)

func langParam() models.ParameterSpec {
	return models.ParameterSpec{Type: "string", Description: "Language preference (en/es)"}
}

func required(description string) models.ParameterSpec {
	return models.ParameterSpec{Type: "string", Description: description, Required: true}
}

func optional(description string) models.ParameterSpec {
	return models.ParameterSpec{Type: "string", Description: description}
}

// definitions is the tool catalog shared by ElevenLabs and Vapi. Paths use gin
// route syntax; the dispatcher never calls them over HTTP.
var definitions = []models.FunctionDefinition{
	{
		Name:        "searchServices",
		Description: `Search for specific services by name or category. Use this when the customer asks about a specific service like "manicure", "pedicure", "eyebrows", "eyelashes" or general terms like "servicios", "tratamientos", "services", "treatments".`,
		Path:        "/api/services/search",
		Method:      http.MethodGet,
		Parameters: map[string]models.ParameterSpec{
			"query": required(`Search term (e.g. "manicure", "pedicure", "cejas", "pestañas", "everything")`),
			"lang":  langParam(),
		},
		Examples: []string{"manicure", "pedicure", "eyebrows", "eyelashes", "nails", "cejas", "pestañas", "servicios", "todo"},
	},
	{
		Name:        "getServices",
		Description: `Get all available services and categories. Use this when the customer asks "what services do you offer" or "what do you do".`,
		Path:        "/api/services",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "getServiceCategory",
		Description: "Get detailed information about a specific service category, including variants and prices.",
		Path:        "/api/services/:category",
		Method:      http.MethodGet,
		Parameters: map[string]models.ParameterSpec{
			"category": required(`Service category (e.g. "manicuras", "pedicuras", "cejas")`),
			"lang":     langParam(),
		},
	},
	{
		Name:        "getPopularServices",
		Description: `Get popular services and special packages. Use this when the customer asks "what are your most popular services" or "do you have packages".`,
		Path:        "/api/services/popular",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "getServicesByPrice",
		Description: `Get services within a price range in euros. Use this when the customer asks "what do you have under 30 euros".`,
		Path:        "/api/services/price-range/:min/:max",
		Method:      http.MethodGet,
		Parameters: map[string]models.ParameterSpec{
			"min":  required("Minimum price in euros"),
			"max":  required("Maximum price in euros"),
			"lang": langParam(),
		},
	},
	{
		Name:        "getBusinessHours",
		Description: `Get business hours and current status. Use this when the customer asks "what are your hours", "are you open" or "when do you close".`,
		Path:        "/api/hours/status",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "getWeeklyHours",
		Description: `Get the full weekly schedule. Use this when the customer asks "when are you open this week".`,
		Path:        "/api/hours/week",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "getTodayHours",
		Description: `Get today's hours and current status. Use this when the customer asks "are you open today".`,
		Path:        "/api/hours/today",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{},
	},
	{
		Name:        "getAllHours",
		Description: "Get complete business hours information with a spoken summary.",
		Path:        "/api/hours",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "getLocation",
		Description: `Get the salon location and address. Use this when the customer asks "where are you located".`,
		Path:        "/api/location",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "getAddress",
		Description: `Get the exact address. Use this when the customer asks "what's your exact address".`,
		Path:        "/api/location/address",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{},
	},
	{
		Name:        "getDirections",
		Description: `Get directions and nearby landmarks. Use this when the customer asks "how do I get there".`,
		Path:        "/api/location/directions",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{},
	},
	{
		Name:        "getTransportInfo",
		Description: `Get public transport options. Use this when the customer asks "is there a metro nearby".`,
		Path:        "/api/location/transport",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "getParkingInfo",
		Description: `Get parking information. Use this when the customer asks "where can I park".`,
		Path:        "/api/location/parking",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "getLocationSummary",
		Description: "Get a complete location summary with transport and parking.",
		Path:        "/api/location/summary",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "parseAppointmentDateTime",
		Description: "Parse a date and time from natural language and check it against business hours. Call this first when the customer wants to book.",
		Path:        "/api/appointments/parse-datetime",
		Method:      http.MethodPost,
		Parameters: map[string]models.ParameterSpec{
			"text": required(`Phrase containing the date and time (e.g. "tomorrow at 2 PM", "el viernes a las 10 de la mañana")`),
			"lang": langParam(),
		},
		Examples: []string{"tomorrow at 2 PM", "Friday at 10 AM", "mañana a las 2 de la tarde", "el viernes a las 10"},
	},
	{
		Name:        "bookAppointment",
		Description: "Book an appointment once the date and time were understood and the customer details collected.",
		Path:        "/api/appointments/book",
		Method:      http.MethodPost,
		Parameters: map[string]models.ParameterSpec{
			"dateTimeText": required(`Date and time as the customer said it (e.g. "tomorrow at 2 PM")`),
			"clientName":   required("Customer name"),
			"service":      required(`Service requested (e.g. "manicure", "pedicure")`),
			"email":        optional(`Email address for reminders, typed or spoken (e.g. "john at gmail dot com")`),
			"phone":        optional("Phone number"),
			"lang":         langParam(),
		},
	},
	{
		Name:        "getAvailableTimes",
		Description: `Get available appointment times for a date. Use this when the customer asks "what times do you have".`,
		Path:        "/api/appointments/available-times/:date",
		Method:      http.MethodGet,
		Parameters: map[string]models.ParameterSpec{
			"date": required("Date in YYYY-MM-DD format"),
			"lang": langParam(),
		},
	},
	{
		Name:        "getWelcomeMessage",
		Description: "Get a greeting and business overview. Use this at the start of the call.",
		Path:        "/api/general/welcome",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "getAboutInfo",
		Description: `Get business information and a service summary. Use this when the customer asks "tell me more about your salon".`,
		Path:        "/api/general/about",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
	{
		Name:        "getServicesOverview",
		Description: "Get a services overview with categories, popular services and price range.",
		Path:        "/api/general/services-overview",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{},
	},
	{
		Name:        "getContactInfo",
		Description: "Get contact information including address, hours and transport.",
		Path:        "/api/general/contact",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{},
	},
	{
		Name:        "getBusinessStatus",
		Description: `Get whether the salon is open right now and today's information. Use this when the customer asks "are you open".`,
		Path:        "/api/general/status",
		Method:      http.MethodGet,
		Parameters:  map[string]models.ParameterSpec{"lang": langParam()},
	},
}

// Definitions returns a copy of the tool catalog.
func Definitions() []models.FunctionDefinition {
	out := make([]models.FunctionDefinition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup finds a definition by name.
func Lookup(name string) (models.FunctionDefinition, bool) {
	for _, d := range definitions {
		if d.Name == name {
			return d, true
		}
	}
	return models.FunctionDefinition{}, false
}

// JSONSchema renders the parameters of d as a JSON-schema object, the shape
// both platforms expect for tool parameters.
func JSONSchema(d models.FunctionDefinition) map[string]any {
	props := map[string]any{}
	req := []string{}
	for _, name := range sortedParams(d) {
		p := d.Parameters[name]
		props[name] = map[string]any{"type": p.Type, "description": p.Description}
		if p.Required {
			req = append(req, name)
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   req,
	}
}

func sortedParams(d models.FunctionDefinition) []string {
	names := make([]string, 0, len(d.Parameters))
	for name := range d.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// URL joins the base URL and the definition path.
func URL(baseURL string, d models.FunctionDefinition) string {
	return strings.TrimRight(baseURL, "/") + d.Path
}
