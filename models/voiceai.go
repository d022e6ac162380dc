package models

import (
	"bytes"
	"encoding/json"
)

// FunctionCall is a tool invocation requested by a voice platform. ElevenLabs
// sends "arguments" on function_calls and "parameters" on tools.
type FunctionCall struct {
	ID         string         `json:"id,omitempty"`
	Name       string         `json:"name"`
	Arguments  map[string]any `json:"arguments,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Args returns whichever argument map was sent.
func (f FunctionCall) Args() map[string]any {
	if len(f.Arguments) > 0 {
		return f.Arguments
	}
	if f.Parameters != nil {
		return f.Parameters
	}
	return map[string]any{}
}

// FunctionResult is the outcome of executing one FunctionCall.
type FunctionResult struct {
	FunctionName string `json:"function_name"`
	Success      bool   `json:"success"`
	Result       any    `json:"result,omitempty"`
	Error        string `json:"error,omitempty"`
}

// ElevenLabsWebhook is the body ElevenLabs posts when the agent needs tools.
type ElevenLabsWebhook struct {
	ConversationID string `json:"conversation_id"`
	Message        *struct {
		Text string `json:"text"`
	} `json:"message,omitempty"`
	FunctionCalls []FunctionCall `json:"function_calls,omitempty"`
	Tools         []FunctionCall `json:"tools,omitempty"`
}

// Calls returns function_calls, falling back to the newer tools field.
func (w ElevenLabsWebhook) Calls() []FunctionCall {
	if len(w.FunctionCalls) > 0 {
		return w.FunctionCalls
	}
	return w.Tools
}

// VapiServerMessage wraps every Vapi server-URL event.
type VapiServerMessage struct {
	Message VapiMessage `json:"message"`
}

type VapiMessage struct {
	Type         string         `json:"type"`
	ToolCallList []VapiToolCall `json:"toolCallList,omitempty"`
	Call         *struct {
		ID string `json:"id"`
	} `json:"call,omitempty"`
}

type VapiToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string        `json:"name"`
		Arguments VapiArguments `json:"arguments"`
	} `json:"function"`
}

// VapiArguments accepts tool arguments either as an object or as a JSON
// encoded string, both of which Vapi has sent over time.
type VapiArguments map[string]any

func (a *VapiArguments) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = VapiArguments{}
		return nil
	}
	if data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		if encoded == "" {
			*a = VapiArguments{}
			return nil
		}
		data = []byte(encoded)
	}
	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*a = m
	return nil
}

type VapiToolResult struct {
	ToolCallID string `json:"toolCallId"`
	Result     string `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
}

type VapiToolResponse struct {
	Results []VapiToolResult `json:"results"`
}

// ParameterSpec describes one tool argument.
type ParameterSpec struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// FunctionDefinition is a tool exposed to the voice platforms.
type FunctionDefinition struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Path        string                   `json:"path"`
	Method      string                   `json:"method"`
	Parameters  map[string]ParameterSpec `json:"parameters"`
	Examples    []string                 `json:"examples,omitempty"`
}
