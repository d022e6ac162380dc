package conversation

import (
	"context"
	"sync"
	"time"

	"voicesalon/models"
)

type memoryEntry struct {
	value     models.ConversationContext
	expiresAt time.Time
}

// MemoryStore is the Store used when Redis is not configured. Entries expire
// after the same TTL the Redis store uses.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{entries: map[string]memoryEntry{}, ttl: ttl, now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, conversationID string) (*models.ConversationContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[conversationID]
	if !ok || (s.ttl > 0 && s.now().After(e.expiresAt)) {
		delete(s.entries, conversationID)
		return &models.ConversationContext{ConversationID: conversationID}, nil
	}
	v := e.value
	return &v, nil
}

func (s *MemoryStore) Set(_ context.Context, convCtx *models.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	s.entries[convCtx.ConversationID] = memoryEntry{value: *convCtx, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, conversationID)
	return nil
}

// sweep drops expired entries; callers hold mu.
func (s *MemoryStore) sweep() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
