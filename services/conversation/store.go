package conversation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"voicesalon/models"
)

// Store keeps per-conversation context between voice-AI webhook calls.
type Store interface {
	Get(ctx context.Context, conversationID string) (*models.ConversationContext, error)
	Set(ctx context.Context, convCtx *models.ConversationContext) error
	Clear(ctx context.Context, conversationID string) error
}

// Tracker records what each webhook turn did to the conversation.
type Tracker struct {
	store  Store
	now    func() time.Time
	logger *zap.Logger
}

func NewTracker(store Store, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{store: store, now: time.Now, logger: logger}
}

// Turn describes one platform call within a conversation.
type Turn struct {
	ConversationID string
	Platform       string
	Language       models.Language
	Phrase         string
	Parsed         *models.ParsedDateTime
	State          models.IntakeState
}

// Record merges the turn into the stored context. Failures are logged only,
// since losing context must not break the call.
func (t *Tracker) Record(ctx context.Context, turn Turn) *models.ConversationContext {
	if turn.ConversationID == "" {
		return nil
	}
	convCtx, err := t.store.Get(ctx, turn.ConversationID)
	if err != nil {
		t.logger.Warn("Failed to load conversation context", zap.String("conversation_id", turn.ConversationID), zap.Error(err))
		convCtx = &models.ConversationContext{}
	}

	convCtx.ConversationID = turn.ConversationID
	if turn.Platform != "" {
		convCtx.Platform = turn.Platform
	}
	if turn.Language != "" {
		convCtx.Language = turn.Language
	}
	if convCtx.State == "" {
		convCtx.State = models.StateAwaitingPhrase
	}
	if turn.Phrase != "" {
		convCtx.LastPhrase = turn.Phrase
	}
	if turn.Parsed != nil {
		convCtx.LastParsed = turn.Parsed
	}
	if turn.State != "" {
		convCtx.State = turn.State
	}
	convCtx.UpdatedAt = t.now().UTC()

	if err := t.store.Set(ctx, convCtx); err != nil {
		t.logger.Warn("Failed to save conversation context", zap.String("conversation_id", turn.ConversationID), zap.Error(err))
	}
	return convCtx
}

// Language returns the language remembered for a conversation, if any.
func (t *Tracker) Language(ctx context.Context, conversationID string) (models.Language, bool) {
	if conversationID == "" {
		return "", false
	}
	convCtx, err := t.store.Get(ctx, conversationID)
	if err != nil || convCtx.Language == "" {
		return "", false
	}
	return convCtx.Language, true
}
