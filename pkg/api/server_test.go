package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llmcouncil/councild/pkg/config"
	"github.com/llmcouncil/councild/pkg/services"
)

// newTestServer builds a server over the file-backed store with no
// database: enough surface for routing, middleware, and conversation
// handler tests.
func newTestServer(t *testing.T, allowNoAuth bool) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := services.NewFileConversationStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{AllowNoAuth: allowNoAuth}
	return NewServer(cfg, nil, nil, store, nil, nil)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthWithoutDatabase(t *testing.T) {
	s := newTestServer(t, true)

	w := doJSON(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "councild", body["service"])
	db := body["database"].(map[string]interface{})
	assert.Equal(t, "disabled", db["status"])
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestRequestIDGenerated(t *testing.T) {
	s := newTestServer(t, true)

	w := doJSON(t, s, http.MethodGet, "/healthz", "")
	id := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestMissingAPIKeyRejectedWhenAuthRequired(t *testing.T) {
	s := newTestServer(t, false)

	w := doJSON(t, s, http.MethodPost, "/v1/tools/council.ask", `{"prompt":"hi"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "missing_api_key", body["detail"])
	assert.Equal(t, "missing_api_key", body["error_code"])
	assert.NotEmpty(t, body["request_id"])
}

func TestStrictBindingRejectsUnknownFields(t *testing.T) {
	s := newTestServer(t, true)

	// api_key must not be accepted over HTTP; auth rides the header.
	w := doJSON(t, s, http.MethodPost, "/v1/tools/council.ask",
		`{"prompt":"hi","api_key":"sneaky"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_input", decodeBody(t, w)["error_code"])
}

func TestStrictBindingRejectsMalformedJSON(t *testing.T) {
	s := newTestServer(t, true)

	w := doJSON(t, s, http.MethodPost, "/v1/tools/council.pipeline", `{"task_description":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_input", decodeBody(t, w)["error_code"])
}

func TestAccountRequiresKeyEvenWithNoAuth(t *testing.T) {
	s := newTestServer(t, true)

	w := doJSON(t, s, http.MethodGet, "/v1/account/limits", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing_api_key", decodeBody(t, w)["error_code"])
}

func TestConversationLifecycle(t *testing.T) {
	s := newTestServer(t, true)

	created := doJSON(t, s, http.MethodPost, "/v1/conversations", "")
	require.Equal(t, http.StatusOK, created.Code)
	id := decodeBody(t, created)["id"].(string)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	detail := doJSON(t, s, http.MethodGet, "/v1/conversations/"+id, "")
	require.Equal(t, http.StatusOK, detail.Code)
	body := decodeBody(t, detail)
	assert.Equal(t, id, body["id"])
	assert.Equal(t, float64(0), body["message_count"])
	assert.Equal(t, []interface{}{}, body["messages"])

	list := doJSON(t, s, http.MethodGet, "/v1/conversations", "")
	require.Equal(t, http.StatusOK, list.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0]["id"])
}

func TestGetConversationNotFound(t *testing.T) {
	s := newTestServer(t, true)

	w := doJSON(t, s, http.MethodGet, "/v1/conversations/"+uuid.New().String(), "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decodeBody(t, w)["error_code"])

	w = doJSON(t, s, http.MethodGet, "/v1/conversations/not-a-uuid", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodOptions, "/v1/conversations", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorCodeOnlyForStableCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(requestIDKey, "rid")

	withCode := errorPayload(c, "quota_exceeded")
	assert.Equal(t, "quota_exceeded", withCode["error_code"])

	prose := errorPayload(c, "Rate limit exceeded")
	_, ok := prose["error_code"]
	assert.False(t, ok)
	assert.Equal(t, "rid", prose["request_id"])
}
