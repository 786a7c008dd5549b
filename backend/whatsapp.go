package backend

import (
	"context"
	"net/http"
)

// TestChatReply is the assistant's answer from the sandbox chat endpoint.
type TestChatReply struct {
	Status         string `json:"status"`
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

// TestChat sends a message through the AI assistant without touching the
// WhatsApp Cloud API. Passing an empty conversationID starts a new test
// conversation.
func (c *Client) TestChat(ctx context.Context, agencyID, message, conversationID string) (TestChatReply, error) {
	body := map[string]string{
		"agency_id": agencyID,
		"message":   message,
	}
	if conversationID != "" {
		body["conversation_id"] = conversationID
	}
	var reply TestChatReply
	if err := c.do(ctx, http.MethodPost, "/api/whatsapp/test-chat", nil, body, &reply); err != nil {
		return TestChatReply{}, err
	}
	return reply, nil
}
