package voiceai

import (
	"context"
	"crypto/subtle"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"voicesalon/models"
)

// VapiTools answers Vapi "tool-calls" server messages.
type VapiTools struct {
	dispatcher *Dispatcher
	secret     string
	logger     *zap.Logger
}

func NewVapiTools(dispatcher *Dispatcher, secret string, logger *zap.Logger) *VapiTools {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VapiTools{dispatcher: dispatcher, secret: secret, logger: logger}
}

// Authorized checks the X-Vapi-Secret header. Without a configured secret
// every request is accepted.
func (v *VapiTools) Authorized(header string) bool {
	if v.secret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(header), []byte(v.secret)) == 1
}

// Handle executes the tool calls of msg. Other message types produce an
// empty result list.
func (v *VapiTools) Handle(ctx context.Context, msg models.VapiMessage, lang models.Language) models.VapiToolResponse {
	resp := models.VapiToolResponse{Results: []models.VapiToolResult{}}
	if msg.Type != "tool-calls" {
		v.logger.Debug("Ignoring Vapi message", zap.String("type", msg.Type))
		return resp
	}

	for _, call := range msg.ToolCallList {
		res := v.dispatcher.Execute(ctx, call.Function.Name, Args(call.Function.Arguments), lang)
		out := models.VapiToolResult{ToolCallID: call.ID}
		if !res.Success {
			out.Error = res.Error
		} else if text, err := SpokenText(res.Result); err != nil {
			out.Error = err.Error()
		} else {
			out.Result = text
		}
		resp.Results = append(resp.Results, out)
	}
	return resp
}

// VapiClient updates the assistant's tool list through the Vapi REST API.
type VapiClient struct {
	api         apiClient
	assistantID string
	enabled     bool
}

func NewVapiClient(baseURL, apiKey, assistantID string, httpClient *http.Client) *VapiClient {
	return &VapiClient{
		api: newAPIClient("vapi", baseURL, httpClient, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+apiKey)
		}),
		assistantID: assistantID,
		enabled:     apiKey != "" && assistantID != "",
	}
}

// VapiTool is one function tool in the assistant model.
type VapiTool struct {
	Type     string         `json:"type"`
	Function VapiFunction   `json:"function"`
	Server   map[string]any `json:"server,omitempty"`
}

type VapiFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// VapiToolsFor renders the catalog as Vapi function tools calling serverURL.
func VapiToolsFor(defs []models.FunctionDefinition, serverURL string) []VapiTool {
	tools := make([]VapiTool, 0, len(defs))
	for _, d := range defs {
		t := VapiTool{
			Type: "function",
			Function: VapiFunction{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  JSONSchema(d),
			},
		}
		if serverURL != "" {
			t.Server = map[string]any{"url": serverURL}
		}
		tools = append(tools, t)
	}
	return tools
}

// SyncAssistant replaces the assistant tools. The assistant's model settings
// are read first so the PATCH keeps its provider and model.
func (c *VapiClient) SyncAssistant(ctx context.Context, tools []VapiTool) error {
	if !c.enabled {
		return ErrNotConfigured
	}
	path := "/assistant/" + url.PathEscape(c.assistantID)

	var current struct {
		Model map[string]any `json:"model"`
	}
	if err := c.api.do(ctx, http.MethodGet, path, nil, &current); err != nil {
		return err
	}
	model := current.Model
	if model == nil {
		model = map[string]any{}
	}
	model["tools"] = tools

	return c.api.do(ctx, http.MethodPatch, path, map[string]any{"model": model}, nil)
}
