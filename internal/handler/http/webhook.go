package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"
)

type WebhookHandler interface {
	DebugEcho(w http.ResponseWriter, r *http.Request)
}

type WebhookHandlerImpl struct{}

func NewWebhookHandler() WebhookHandler {
	return &WebhookHandlerImpl{}
}

// DebugEcho echoes the received payload back, for wiring up external webhook
// integrations against a staging deployment. The response shape is fixed and
// does not use the API envelope.
func (h *WebhookHandlerImpl) DebugEcho(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	timestamp := time.Now().UTC().Format(time.RFC3339)

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":     "failed to read request body",
			"details":   err.Error(),
			"timestamp": timestamp,
		})
		return
	}

	var received interface{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &received); err != nil {
			// Non-JSON payloads are echoed verbatim.
			received = string(body)
		}
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"message":   "webhook received",
		"received":  received,
		"timestamp": timestamp,
	})
}
