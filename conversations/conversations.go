package conversations

import (
	"context"
	"time"
)

// Conversation is one WhatsApp chat thread between a customer and the
// AI assistant, scoped to an agency.
type Conversation struct {
	ID            string    `json:"id"`
	AgencyID      string    `json:"agency_id"`
	CustomerID    string    `json:"customer_id"`
	WhatsappPhone string    `json:"whatsapp_phone"`
	LastMessage   string    `json:"last_message,omitempty"`
	LastMessageAt time.Time `json:"last_message_at,omitzero"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	FromCustomer   bool      `json:"from_customer"`
	MessageText    string    `json:"message_text"`
	Timestamp      time.Time `json:"timestamp,omitzero"`
}

type API interface {
	ListConversations(ctx context.Context, agencyID string) ([]Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]Message, error)
	DeleteConversation(ctx context.Context, id string) error
}
