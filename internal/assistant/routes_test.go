package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupRouter(t *testing.T) (*Assistant, *chi.Mux) {
	t.Helper()
	a := setupAssistant(t)
	r := chi.NewRouter()
	a.RegisterRoutes(r)
	return a, r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestChatEndpoint(t *testing.T) {
	_, r := setupRouter(t)

	rec := postJSON(t, r, "/api/chat", chatPayload{Message: "Gaming Laptops under ₹60,000"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result TurnResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.SessionID == "" {
		t.Errorf("no session id in response")
	}
	if result.InteractionType != TypeRecommendations {
		t.Errorf("type = %q, want recommendations", result.InteractionType)
	}
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	_, r := setupRouter(t)

	rec := postJSON(t, r, "/api/chat", chatPayload{SessionID: "s1"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetSessionEndpoint(t *testing.T) {
	a, r := setupRouter(t)
	a.ProcessMessage(context.Background(), "s1", "I need a smartphone")

	req := httptest.NewRequest("GET", "/api/sessions/s1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var state map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if state["session_id"] != "s1" {
		t.Errorf("session_id = %v", state["session_id"])
	}

	req = httptest.NewRequest("GET", "/api/sessions/unknown", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", rec.Code)
	}
}

func TestPreferencesEndpointFeedsScoring(t *testing.T) {
	a, r := setupRouter(t)

	req := httptest.NewRequest("PUT", "/api/sessions/s1/preferences",
		bytes.NewReader([]byte(`{"priority_rankings":{"performance":9},"deal_breakers":["no HDD"]}`)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	result := a.ProcessMessage(context.Background(), "s1", "Gaming laptop under 60k")
	if result.InteractionType != TypeRecommendations {
		t.Fatalf("type = %q, want recommendations", result.InteractionType)
	}
	if got := result.ConversationSummary.Priorities["performance"]; got != 9 {
		t.Errorf("summary priority = %d, want 9", got)
	}
	if len(result.ConversationSummary.DealBreakers) != 1 {
		t.Errorf("deal breakers = %v", result.ConversationSummary.DealBreakers)
	}
}

func TestPreferencesEndpointValidatesWeights(t *testing.T) {
	_, r := setupRouter(t)

	req := httptest.NewRequest("PUT", "/api/sessions/s1/preferences",
		bytes.NewReader([]byte(`{"priority_rankings":{"performance":11}}`)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteSessionEndpoint(t *testing.T) {
	a, r := setupRouter(t)
	a.ProcessMessage(context.Background(), "s1", "hello")

	req := httptest.NewRequest("DELETE", "/api/sessions/s1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if _, ok := a.Sessions().Get("s1"); ok {
		t.Errorf("session survived DELETE")
	}

	req = httptest.NewRequest("DELETE", "/api/sessions/s1", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}
