package assistant

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/priyankdesai/smartshop/internal/session"
)

// chatPayload is the POST /api/chat request body.
type chatPayload struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// preferencesPayload is the PUT /api/sessions/{id}/preferences body.
// Only the provided sections are replaced.
type preferencesPayload struct {
	PriorityRankings map[string]int `json:"priority_rankings"`
	DealBreakers     []string       `json:"deal_breakers"`
	NiceToHaves      []string       `json:"nice_to_haves"`
}

// RegisterRoutes mounts the chat and session endpoints.
func (a *Assistant) RegisterRoutes(r chi.Router) {
	r.Post("/api/chat", a.chatHandler)
	r.Get("/api/sessions/{id}", a.getSessionHandler)
	r.Put("/api/sessions/{id}/preferences", a.putPreferencesHandler)
	r.Delete("/api/sessions/{id}", a.deleteSessionHandler)
	r.Get("/ws/chat", a.handleWebSocket)
}

func (a *Assistant) chatHandler(w http.ResponseWriter, r *http.Request) {
	var payload chatPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	result := a.ProcessMessage(r.Context(), payload.SessionID, payload.Message)
	writeJSON(w, http.StatusOK, result)
}

func (a *Assistant) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, ok := a.sessions.Get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (a *Assistant) putPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload preferencesPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	for _, weight := range payload.PriorityRankings {
		if weight < 1 || weight > 10 {
			http.Error(w, "priority weights must be between 1 and 10", http.StatusBadRequest)
			return
		}
	}

	state := a.sessions.Update(id, func(st *session.State) {
		if payload.PriorityRankings != nil {
			st.PriorityRankings = payload.PriorityRankings
		}
		if payload.DealBreakers != nil {
			st.DealBreakers = payload.DealBreakers
		}
		if payload.NiceToHaves != nil {
			st.NiceToHaves = payload.NiceToHaves
		}
	})
	writeJSON(w, http.StatusOK, state)
}

func (a *Assistant) deleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := a.sessions.Get(id); !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	a.sessions.Evict(id)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
