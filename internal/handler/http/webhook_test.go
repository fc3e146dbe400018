package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEchoJSONPayload(t *testing.T) {
	handler := NewWebhookHandler()

	body := `{"event":"test","attempt":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/debug-webhook-test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.DebugEcho(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["message"])
	assert.NotEmpty(t, resp["timestamp"])

	received, ok := resp["received"].(map[string]interface{})
	require.True(t, ok, "JSON payload should be echoed as an object")
	assert.Equal(t, "test", received["event"])
	assert.Equal(t, float64(2), received["attempt"])
}

func TestDebugEchoNonJSONPayload(t *testing.T) {
	handler := NewWebhookHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/debug-webhook-test", strings.NewReader("plain text ping"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	handler.DebugEcho(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "plain text ping", resp["received"])
}

func TestDebugEchoEmptyBody(t *testing.T) {
	handler := NewWebhookHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/debug-webhook-test", nil)
	rec := httptest.NewRecorder()

	handler.DebugEcho(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Nil(t, resp["received"])
}
