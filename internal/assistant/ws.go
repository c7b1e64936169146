package assistant

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	SessionID string `json:"session_id"` // empty for new sessions
	Message   string `json:"message"`
}

// wsError is sent when a message cannot be processed.
type wsError struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Error     string `json:"error"`
}

// handleWebSocket runs the chat turn pipeline over a WebSocket. Each
// incoming message yields one TurnResult frame, the same shape the HTTP
// chat endpoint returns.
func (a *Assistant) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("assistant: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("assistant: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			a.sendWSError(conn, "", "invalid message format")
			continue
		}
		if req.Message == "" {
			a.sendWSError(conn, req.SessionID, "message is required")
			continue
		}

		result := a.ProcessMessage(r.Context(), req.SessionID, req.Message)
		if err := conn.WriteJSON(result); err != nil {
			log.Printf("assistant: websocket write: %v", err)
			return
		}
	}
}

func (a *Assistant) sendWSError(conn *websocket.Conn, sessionID, message string) {
	if err := conn.WriteJSON(wsError{Type: "error", SessionID: sessionID, Error: message}); err != nil {
		log.Printf("assistant: websocket write: %v", err)
	}
}
