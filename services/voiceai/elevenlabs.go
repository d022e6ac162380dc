package voiceai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"voicesalon/models"
)

// ErrNotConfigured is returned by platform clients without credentials.
var ErrNotConfigured = errors.New("voice platform credentials not configured")

// AgentInfo is the part of the ElevenLabs agent we report on.
type AgentInfo struct {
	AgentID string `json:"agent_id"`
	Name    string `json:"name"`
}

type ElevenLabsClient struct {
	api     apiClient
	agentID string
	enabled bool
}

func NewElevenLabsClient(baseURL, apiKey, agentID string, httpClient *http.Client) *ElevenLabsClient {
	return &ElevenLabsClient{
		api: newAPIClient("elevenlabs", baseURL, httpClient, func(r *http.Request) {
			r.Header.Set("xi-api-key", apiKey)
		}),
		agentID: agentID,
		enabled: apiKey != "" && agentID != "",
	}
}

func (c *ElevenLabsClient) AgentID() string { return c.agentID }

func (c *ElevenLabsClient) Agent(ctx context.Context) (*AgentInfo, error) {
	if !c.enabled {
		return nil, ErrNotConfigured
	}
	var info AgentInfo
	if err := c.api.do(ctx, http.MethodGet, "/convai/agents/"+url.PathEscape(c.agentID), nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SignedURL returns a WebSocket URL for a client-side conversation.
func (c *ElevenLabsClient) SignedURL(ctx context.Context) (string, error) {
	if !c.enabled {
		return "", ErrNotConfigured
	}
	var out struct {
		SignedURL string `json:"signed_url"`
	}
	path := "/convai/conversation/get-signed-url?agent_id=" + url.QueryEscape(c.agentID)
	if err := c.api.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}
	return out.SignedURL, nil
}

// ConversationToken returns a WebRTC conversation token.
func (c *ElevenLabsClient) ConversationToken(ctx context.Context) (string, error) {
	if !c.enabled {
		return "", ErrNotConfigured
	}
	var out struct {
		Token string `json:"conversation_token"`
	}
	body := map[string]string{"agent_id": c.agentID}
	if err := c.api.do(ctx, http.MethodPost, "/convai/conversation/get-conversation-token", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// SendFunctionResults posts tool results back to a running conversation.
func (c *ElevenLabsClient) SendFunctionResults(ctx context.Context, conversationID string, results []models.FunctionResult) (json.RawMessage, error) {
	if !c.enabled {
		return nil, ErrNotConfigured
	}
	body := map[string]any{
		"conversation_id":  conversationID,
		"function_results": results,
	}
	var out json.RawMessage
	if err := c.api.do(ctx, http.MethodPost, "/convai/conversation/function-results", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WebhookReply is what the ElevenLabs webhook route returns.
type WebhookReply struct {
	Results     []models.FunctionResult `json:"results,omitempty"`
	Acknowledge json.RawMessage         `json:"acknowledgement,omitempty"`
}

// ElevenLabsWebhook executes the tool calls of a webhook and relays the
// results to the conversation.
type ElevenLabsWebhook struct {
	client     *ElevenLabsClient
	dispatcher *Dispatcher
	logger     *zap.Logger
}

func NewElevenLabsWebhook(client *ElevenLabsClient, dispatcher *Dispatcher, logger *zap.Logger) *ElevenLabsWebhook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ElevenLabsWebhook{client: client, dispatcher: dispatcher, logger: logger}
}

// Handle runs every call in hook. Results are returned even when relaying
// them fails, since the caller gets them in the HTTP response as well.
func (w *ElevenLabsWebhook) Handle(ctx context.Context, hook models.ElevenLabsWebhook, lang models.Language) WebhookReply {
	calls := hook.Calls()
	text := ""
	if hook.Message != nil {
		text = hook.Message.Text
	}
	w.logger.Info("Received ElevenLabs webhook",
		zap.String("conversation_id", hook.ConversationID),
		zap.String("message", text),
		zap.Int("calls", len(calls)),
	)
	if len(calls) == 0 {
		return WebhookReply{}
	}

	results := w.dispatcher.ExecuteAll(ctx, calls, lang)
	reply := WebhookReply{Results: results}
	if hook.ConversationID == "" {
		return reply
	}

	ack, err := w.client.SendFunctionResults(ctx, hook.ConversationID, results)
	switch {
	case errors.Is(err, ErrNotConfigured):
		w.logger.Debug("ElevenLabs not configured, results not relayed")
	case err != nil:
		w.logger.Warn("Failed to relay function results", zap.String("conversation_id", hook.ConversationID), zap.Error(err))
	default:
		reply.Acknowledge = ack
	}
	return reply
}
