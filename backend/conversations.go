package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/agencydesk/go-dealer-admin/conversations"
)

var _ conversations.API = (*Client)(nil)

func (c *Client) ListConversations(ctx context.Context, agencyID string) ([]conversations.Conversation, error) {
	query := url.Values{"agency_id": {agencyID}}
	var list []conversations.Conversation
	if err := c.do(ctx, http.MethodGet, "/api/conversations", query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]conversations.Message, error) {
	var list []conversations.Message
	if err := c.do(ctx, http.MethodGet, "/api/conversations/"+conversationID+"/messages", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/conversations/"+id, nil, nil, nil)
}
