package voiceai

import (
	"fmt"
	"strings"

	"voicesalon/models"
)

// ExternalFunction is a catalog entry with its absolute URL, as written to
// the exported agent configuration.
type ExternalFunction struct {
	Name        string                          `json:"name"`
	Description string                          `json:"description"`
	URL         string                          `json:"url"`
	Method      string                          `json:"method"`
	Parameters  map[string]models.ParameterSpec `json:"parameters"`
	Examples    []string                        `json:"examples,omitempty"`
}

type VoiceSettings struct {
	Language string  `json:"language"`
	Voice    string  `json:"voice"`
	Speed    float64 `json:"speed"`
}

// AgentConfig is the exported configuration for a voice agent.
type AgentConfig struct {
	VoiceSettings          VoiceSettings      `json:"voice_settings"`
	SystemPrompt           string             `json:"system_prompt"`
	InitialMessage         string             `json:"initial_message"`
	ConversationEndMessage string             `json:"conversation_end_message"`
	ExternalFunctions      []ExternalFunction `json:"external_functions"`
}

// BuildAgentConfig renders the catalog against baseURL.
func BuildAgentConfig(baseURL, salonName, area string) AgentConfig {
	defs := Definitions()
	funcs := make([]ExternalFunction, 0, len(defs))
	for _, d := range defs {
		funcs = append(funcs, ExternalFunction{
			Name:        d.Name,
			Description: d.Description,
			URL:         URL(baseURL, d),
			Method:      d.Method,
			Parameters:  d.Parameters,
			Examples:    d.Examples,
		})
	}
	return AgentConfig{
		VoiceSettings: VoiceSettings{Language: "en-US", Voice: "shimmer", Speed: 1},
		SystemPrompt:  SystemPrompt(defs, salonName, area),
		InitialMessage: fmt.Sprintf("Hello! Welcome to %s in %s. I'm here to help you with our services, hours, location, and appointments. How can I assist you today?",
			salonName, area),
		ConversationEndMessage: fmt.Sprintf("Thank you for calling %s. Have a wonderful day!", salonName),
		ExternalFunctions:      funcs,
	}
}

// SystemPrompt lists the tools and the calling rules for the agent.
func SystemPrompt(defs []models.FunctionDefinition, salonName, area string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful AI assistant for %s beauty salon in %s. You have access to the following functions:\n\n", salonName, area)
	for _, d := range defs {
		fmt.Fprintf(&b, "- %s: %s", d.Name, d.Description)
		if len(d.Examples) > 0 {
			fmt.Fprintf(&b, " (Examples: %s)", strings.Join(d.Examples, ", "))
		}
		b.WriteString("\n")
	}
	b.WriteString(`
RULES:
1. Always read the voice_response field of a function result when there is one.
2. Call one function per request.
3. To book: call parseAppointmentDateTime first, then bookAppointment with the name, service and email.
4. Always ask for an email address to send the reminder.
5. If a function returns an error, apologize and ask the customer to try again.
6. Pass lang=es when the customer speaks Spanish and lang=en otherwise.
`)
	return b.String()
}
