package handlers

import (
	"net/http"
	"testing"

	"tokensite/internal/models"
)

func TestNewsletterLifecycle(t *testing.T) {
	handler, _ := newTestServer(t)
	body := map[string]string{"email": "reader@example.com"}

	w := doJSON(t, handler, http.MethodPost, "/newsletter/subscribe", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("subscribe: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var subscriber models.Subscriber
	decodeBody(t, w, &subscriber)
	if !subscriber.IsActive {
		t.Fatalf("expected active subscriber: %+v", subscriber)
	}

	if w := doJSON(t, handler, http.MethodPost, "/newsletter/subscribe", "", body); w.Code != http.StatusConflict {
		t.Fatalf("double subscribe: expected 409, got %d", w.Code)
	}

	if w := doJSON(t, handler, http.MethodPost, "/newsletter/unsubscribe", "", body); w.Code != http.StatusOK {
		t.Fatalf("unsubscribe: expected 200, got %d", w.Code)
	}
	if w := doJSON(t, handler, http.MethodPost, "/newsletter/unsubscribe", "", body); w.Code != http.StatusNotFound {
		t.Fatalf("double unsubscribe: expected 404, got %d", w.Code)
	}

	// Coming back reuses the old row instead of minting a new one.
	w = doJSON(t, handler, http.MethodPost, "/newsletter/subscribe", "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("resubscribe: expected 200, got %d", w.Code)
	}
	var returned models.Subscriber
	decodeBody(t, w, &returned)
	if returned.ID != subscriber.ID || !returned.IsActive {
		t.Fatalf("expected reactivated original row: %+v", returned)
	}
}

func TestNewsletterValidation(t *testing.T) {
	handler, _ := newTestServer(t)
	if w := doJSON(t, handler, http.MethodPost, "/newsletter/subscribe", "", map[string]string{"email": "not-an-email"}); w.Code != http.StatusBadRequest {
		t.Fatalf("bad email: expected 400, got %d", w.Code)
	}
	if w := doJSON(t, handler, http.MethodPost, "/newsletter/unsubscribe", "", map[string]string{"email": "ghost@example.com"}); w.Code != http.StatusNotFound {
		t.Fatalf("unknown email: expected 404, got %d", w.Code)
	}
}
