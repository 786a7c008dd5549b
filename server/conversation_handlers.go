package server

import (
	"net/http"

	"github.com/agencydesk/go-dealer-admin/conversations"
)

type ConversationsPageData struct {
	HasAgency     bool
	Conversations []conversations.Conversation
}

func (s *Server) ConversationsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, hasAgency := s.registry.ActiveAgencyID()
		data := ConversationsPageData{
			HasAgency:     hasAgency,
			Conversations: s.views.Conversations.Items(),
		}
		s.renderPage(w, r, "conversations", "Conversations", "conversations.html", data)
	}
}

type ConversationMessagesPageData struct {
	Conversation conversations.Conversation
	Messages     []conversations.Message
	LoadError    string
}

// ConversationMessagesHandler shows one chat thread. Messages are fetched
// live; the thread list itself comes from the cached view.
func (s *Server) ConversationMessagesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		data := ConversationMessagesPageData{}
		for _, c := range s.views.Conversations.Items() {
			if c.ID == id {
				data.Conversation = c
				break
			}
		}

		messages, err := s.backend.ListMessages(r.Context(), id)
		if err != nil {
			s.log.Err(err).Str("conversation_id", id).Msg("failed to fetch messages")
			data.LoadError = err.Error()
		} else {
			data.Messages = messages
		}

		s.renderPage(w, r, "conversations", "Conversation", "conversation_messages.html", data)
	}
}

func (s *Server) ConversationDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		if err := s.backend.DeleteConversation(r.Context(), id); err != nil {
			s.redirectError(w, r, RouteConversations, err)
			return
		}
		s.views.Conversations.Reload(r.Context())
		s.redirectNotice(w, r, RouteConversations, "Conversation deleted")
	}
}
