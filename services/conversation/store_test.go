package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicesalon/models"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(30 * time.Minute)
	s.now = func() time.Time { return now }

	empty, err := s.Get(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", empty.ConversationID)
	assert.Empty(t, empty.Language)

	require.NoError(t, s.Set(ctx, &models.ConversationContext{ConversationID: "conv-1", Language: models.LangSpanish}))
	got, err := s.Get(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, models.LangSpanish, got.Language)

	now = now.Add(31 * time.Minute)
	expired, err := s.Get(ctx, "conv-1")
	require.NoError(t, err)
	assert.Empty(t, expired.Language)

	require.NoError(t, s.Set(ctx, &models.ConversationContext{ConversationID: "conv-2"}))
	require.NoError(t, s.Clear(ctx, "conv-2"))
	cleared, _ := s.Get(ctx, "conv-2")
	assert.Empty(t, cleared.State)
}

func TestTracker_Record(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(NewMemoryStore(time.Hour), nil)

	first := tracker.Record(ctx, Turn{ConversationID: "c1", Platform: "vapi", Language: models.LangSpanish})
	require.NotNil(t, first)
	assert.Equal(t, models.StateAwaitingPhrase, first.State)

	date, clock := "2024-06-07", "10:00"
	parsed := models.ParsedDateTime{Date: &date, Time: &clock, IsValid: true}
	second := tracker.Record(ctx, Turn{
		ConversationID: "c1",
		Phrase:         "el viernes a las 10 de la mañana",
		Parsed:         &parsed,
		State:          models.StateValidated,
	})
	assert.Equal(t, "vapi", second.Platform)
	assert.Equal(t, models.LangSpanish, second.Language)
	assert.Equal(t, models.StateValidated, second.State)
	assert.Equal(t, "2024-06-07", second.LastParsed.DateValue())

	lang, ok := tracker.Language(ctx, "c1")
	assert.True(t, ok)
	assert.Equal(t, models.LangSpanish, lang)

	assert.Nil(t, tracker.Record(ctx, Turn{}))
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (*models.ConversationContext, error) {
	return nil, errors.New("redis down")
}
func (failingStore) Set(context.Context, *models.ConversationContext) error { return errors.New("redis down") }
func (failingStore) Clear(context.Context, string) error                    { return nil }

func TestTracker_StoreFailureIsNotFatal(t *testing.T) {
	tracker := NewTracker(failingStore{}, nil)
	got := tracker.Record(context.Background(), Turn{ConversationID: "c1", Language: models.LangEnglish})
	require.NotNil(t, got)
	assert.Equal(t, models.LangEnglish, got.Language)

	_, ok := tracker.Language(context.Background(), "c1")
	assert.False(t, ok)
}
