package models

import "time"

// ConversationContext is what we remember about one voice-AI conversation.
type ConversationContext struct {
	ConversationID string          `json:"conversationId"`
	Platform       string          `json:"platform"`
	Language       Language        `json:"language"`
	State          IntakeState     `json:"state"`
	LastPhrase     string          `json:"lastPhrase,omitempty"`
	LastParsed     *ParsedDateTime `json:"lastParsed,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
