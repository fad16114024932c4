package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
)

func TestWriteErrorEnvelope(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
	rec := httptest.NewRecorder()

	WriteError(ctx, rec, NewError("invalid_request", "bad\ninput", http.StatusUnprocessableEntity).
		WithFields(map[string]string{"email": "email"}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	var body struct {
		Error     string            `json:"error"`
		Message   string            `json:"message"`
		Status    int               `json:"status"`
		RequestID string            `json:"request_id"`
		Fields    map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "invalid_request" || body.Message != "bad input" || body.Status != 422 {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.RequestID != "req-1" {
		t.Fatalf("unexpected request id %q", body.RequestID)
	}
	if body.Fields["email"] != "email" {
		t.Fatalf("unexpected fields %v", body.Fields)
	}
}

func TestNewErrorDefaultsStatus(t *testing.T) {
	if got := NewError("x", "y", 0).Status; got != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got)
	}
}
