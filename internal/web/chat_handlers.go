package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/chat"
)

type chatEntryView struct {
	chat.Entry
	HTML template.HTML
}

type chatBody struct {
	Entries []chatEntryView
}

func (s *Server) handleChatPage(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	b.page.Unmount()

	history, err := s.chat.History(r.Context(), b.id)
	if err != nil {
		s.log.WithError(err).WithField("session", b.id).Error("loading chat history")
		b.setFlash(err.Error())
	}
	body := chatBody{}
	for _, e := range history {
		body.Entries = append(body.Entries, chatEntryView{Entry: e, HTML: s.render.Markdown(e.Answer)})
	}
	s.page(w, r, "chat", "chat", http.StatusOK, body)
}

func (s *Server) handleChatAsk(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	lang := r.FormValue("language")
	if lang == "" {
		lang = b.language()
	}
	_, err := s.chat.Ask(r.Context(), sessionBackend{s: b.auth}, b.id, r.FormValue("question"), lang)
	if errors.Is(err, chat.ErrEmptyQuestion) {
		b.setFlash(s.translator(b).T("chat.empty_question"))
		http.Redirect(w, r, "/chat", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.fail(w, r, "/chat", err)
		return
	}
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
	},
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type     string `json:"type"` // "ask"
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type     string `json:"type"` // "response" or "error"
	ID       string `json:"id,omitempty"`
	Question string `json:"question,omitempty"`
	Content  string `json:"content"`
	HTML     string `json:"html,omitempty"`
}

func (s *Server) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	b := browserFrom(r)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).WithField("session", b.id).Warn("websocket upgrade")
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.WithError(err).WithField("session", b.id).Warn("websocket read")
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendChat(conn, chatResponse{Type: "error", Content: "invalid message format"})
			continue
		}
		if req.Type != "ask" {
			s.sendChat(conn, chatResponse{Type: "error", Content: "unknown message type: " + req.Type})
			continue
		}
		lang := req.Language
		if lang == "" {
			lang = b.language()
		}

		entry, err := s.chat.Ask(r.Context(), sessionBackend{s: b.auth}, b.id, req.Content, lang)
		if err != nil {
			s.sendChat(conn, chatResponse{Type: "error", Content: api.Message(err)})
			continue
		}
		s.sendChat(conn, chatResponse{
			Type:     "response",
			ID:       entry.ID,
			Question: entry.Question,
			Content:  entry.Answer,
			HTML:     string(s.render.Markdown(entry.Answer)),
		})
	}
}

func (s *Server) sendChat(conn *websocket.Conn, resp chatResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		s.log.WithError(err).Warn("websocket write")
	}
}
