package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voicesalon/middleware"
	"voicesalon/models"
	"voicesalon/services/conversation"
	"voicesalon/services/voiceai"
)

// VoiceHandler serves the ElevenLabs and Vapi integration endpoints.
type VoiceHandler struct {
	ElevenLabs *voiceai.ElevenLabsClient
	Webhook    *voiceai.ElevenLabsWebhook
	Vapi       *voiceai.VapiTools
	Tracker    *conversation.Tracker
	BaseURL    string
}

// conversationLanguage prefers what we remember about the conversation over
// the request headers, which voice platforms rarely set.
func (h *VoiceHandler) conversationLanguage(ctx context.Context, c *gin.Context, conversationID string) models.Language {
	if c.Query("lang") == "" {
		if lang, ok := h.Tracker.Language(ctx, conversationID); ok {
			return lang
		}
	}
	return middleware.LanguageFrom(c)
}

// recordTurn stores the language and the intake state reached by the
// appointment tools, if any ran.
func (h *VoiceHandler) recordTurn(ctx context.Context, platform, conversationID string, lang models.Language, names []string, results []models.FunctionResult, args []voiceai.Args) {
	turn := conversation.Turn{ConversationID: conversationID, Platform: platform, Language: lang}
	for i, res := range results {
		if a := args[i]; a.String("lang") != "" {
			turn.Language = a.Language(lang)
		}
		if !res.Success {
			continue
		}
		body, ok := res.Result.(gin.H)
		if !ok {
			continue
		}
		if state, ok := body["state"].(models.IntakeState); ok {
			turn.State = state
		}
		if names[i] == "parseAppointmentDateTime" {
			turn.Phrase = args[i].String("text")
			if parsed, ok := body["parsed_datetime"].(models.ParsedDateTime); ok {
				turn.Parsed = &parsed
			}
		}
	}
	h.Tracker.Record(ctx, turn)
}

// ElevenLabsWebhook handles POST /api/elevenlabs/webhook.
func (h *VoiceHandler) ElevenLabsWebhook(c *gin.Context) {
	logger := getLogger(c)
	var hook models.ElevenLabsWebhook
	if err := c.ShouldBindJSON(&hook); err != nil {
		logger.Warn("ElevenLabsWebhook: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid webhook payload"})
		return
	}

	ctx := c.Request.Context()
	lang := h.conversationLanguage(ctx, c, hook.ConversationID)
	reply := h.Webhook.Handle(ctx, hook, lang)

	calls := hook.Calls()
	names := make([]string, len(calls))
	args := make([]voiceai.Args, len(calls))
	for i, call := range calls {
		names[i], args[i] = call.Name, voiceai.Args(call.Args())
	}
	h.recordTurn(ctx, "elevenlabs", hook.ConversationID, lang, names, reply.Results, args)

	if len(reply.Results) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "results": reply.Results, "acknowledgement": reply.Acknowledge})
}

// ElevenLabsHealth handles GET /api/elevenlabs/health.
func (h *VoiceHandler) ElevenLabsHealth(c *gin.Context) {
	info, err := h.ElevenLabs.Agent(c.Request.Context())
	if err != nil {
		getLogger(c).Warn("ElevenLabs agent check failed", zap.Error(err))
		c.JSON(vendorStatus(err), gin.H{"status": "ERROR", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "ElevenLabs Integration",
		"agent": gin.H{
			"id":     h.ElevenLabs.AgentID(),
			"name":   info.Name,
			"status": "connected",
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// SignedURL handles GET /api/elevenlabs/signed-url.
func (h *VoiceHandler) SignedURL(c *gin.Context) {
	signed, err := h.ElevenLabs.SignedURL(c.Request.Context())
	if err != nil {
		getLogger(c).Warn("Failed to get signed URL", zap.Error(err))
		c.JSON(vendorStatus(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "signed_url": signed})
}

// ConversationToken handles GET /api/elevenlabs/conversation-token.
func (h *VoiceHandler) ConversationToken(c *gin.Context) {
	token, err := h.ElevenLabs.ConversationToken(c.Request.Context())
	if err != nil {
		getLogger(c).Warn("Failed to get conversation token", zap.Error(err))
		c.JSON(vendorStatus(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conversation_token": token})
}

func vendorStatus(err error) int {
	if errors.Is(err, voiceai.ErrNotConfigured) {
		return http.StatusServiceUnavailable
	}
	var vendorErr *voiceai.VendorError
	if errors.As(err, &vendorErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// VapiWebhook handles POST /api/vapi/webhook, Vapi's server URL.
func (h *VoiceHandler) VapiWebhook(c *gin.Context) {
	logger := getLogger(c)
	if !h.Vapi.Authorized(c.GetHeader("X-Vapi-Secret")) {
		logger.Warn("VapiWebhook: bad secret")
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var msg models.VapiServerMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		logger.Warn("VapiWebhook: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid webhook payload"})
		return
	}

	ctx := c.Request.Context()
	callID := ""
	if msg.Message.Call != nil {
		callID = msg.Message.Call.ID
	}
	lang := h.conversationLanguage(ctx, c, callID)
	resp := h.Vapi.Handle(ctx, msg.Message, lang)

	if callID != "" {
		turn := conversation.Turn{ConversationID: callID, Platform: "vapi", Language: lang}
		for _, call := range msg.Message.ToolCallList {
			if a := voiceai.Args(call.Function.Arguments); a.String("lang") != "" {
				turn.Language = a.Language(lang)
			}
		}
		h.Tracker.Record(ctx, turn)
	}
	c.JSON(http.StatusOK, resp)
}

// VapiTools handles GET /api/vapi/tools: the tool list as Vapi expects it.
func (h *VoiceHandler) VapiTools(c *gin.Context) {
	serverURL := ""
	if h.BaseURL != "" {
		serverURL = strings.TrimRight(h.BaseURL, "/") + "/api/vapi/webhook"
	}
	tools := voiceai.VapiToolsFor(voiceai.Definitions(), serverURL)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tools, "total": len(tools)})
}
