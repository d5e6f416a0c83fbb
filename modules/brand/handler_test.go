package brand

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	t.Setenv("GEMINI_API_KEYS", "test-key")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")

	_, err := config.LoadConfig()
	require.NoError(t, err)

	return NewHandler()
}

func postAnalyze(t *testing.T, h *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/brand/analyze", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	h.Analyze(w, req)
	return w
}

func TestAnalyzeRejectsMalformedMediaAsBadRequest(t *testing.T) {
	h := newTestHandler(t)

	w := postAnalyze(t, h, AnalyzeRequest{
		MediaDataURL: "data:image/png;base64,!!!not-base64!!!",
		TargetVibe:   "Industrial Luxury",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeInvalidRequest, resp.ErrorCode)
}

func TestAnalyzeRejectsNonDataURLAsBadRequest(t *testing.T) {
	h := newTestHandler(t)

	w := postAnalyze(t, h, AnalyzeRequest{
		MediaDataURL: "https://example.com/image.png",
		TargetVibe:   "Industrial Luxury",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeRejectsMissingFields(t *testing.T) {
	h := newTestHandler(t)

	w := postAnalyze(t, h, AnalyzeRequest{TargetVibe: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeRejectsInvalidBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/brand/analyze", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	h.Analyze(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
