package server

import "net/http"

type TestChatPageData struct {
	HasAgency      bool
	Message        string
	Reply          string
	ConversationID string
	SendError      string
}

func (s *Server) TestChatPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, hasAgency := s.registry.ActiveAgencyID()
		data := TestChatPageData{
			HasAgency:      hasAgency,
			ConversationID: r.URL.Query().Get("conversation_id"),
		}
		s.renderPage(w, r, "test-chat", "Test Chat", "test_chat.html", data)
	}
}

// TestChatSubmitHandler relays a sandbox message to the AI assistant and
// renders the reply directly. The conversation id rides a hidden field so
// follow-up messages continue the same test thread.
func (s *Server) TestChatSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		agencyID, ok := s.registry.ActiveAgencyID()
		if !ok {
			http.Redirect(w, r, RouteTestChat+"?error=Select+an+agency+first", http.StatusSeeOther)
			return
		}

		message := r.FormValue("message")
		conversationID := r.FormValue("conversation_id")
		data := TestChatPageData{
			HasAgency:      true,
			Message:        message,
			ConversationID: conversationID,
		}

		if message == "" {
			data.SendError = "A message is required"
			s.renderPage(w, r, "test-chat", "Test Chat", "test_chat.html", data)
			return
		}

		reply, err := s.backend.TestChat(r.Context(), agencyID, message, conversationID)
		if err != nil {
			s.log.Err(err).Str("agency_id", agencyID).Msg("test chat failed")
			data.SendError = err.Error()
		} else {
			data.Reply = reply.Response
			data.ConversationID = reply.ConversationID
		}

		s.renderPage(w, r, "test-chat", "Test Chat", "test_chat.html", data)
	}
}
