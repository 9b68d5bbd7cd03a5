package cards

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qusai-Kagalwala/repo-vista/internal/config"
)

// testRouter wires the routes with no live DB; only paths that reject the
// request before touching storage are exercised here.
func testRouter(t *testing.T) (*mux.Router, *config.Config) {
	t.Helper()
	cfg := &config.Config{AppEnv: "test", CacheDir: t.TempDir()}
	r := mux.NewRouter()
	RegisterRoutes(r, nil, cfg)
	return r, cfg
}

func TestAddLanguageRejectsMissingName(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/cards/o/r/languages", strings.NewReader(`{"percentage": 5}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "language name")
}

func TestUpdateLanguageRejectsBadIndex(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/cards/o/r/languages/two", strings.NewReader(`{"percentage": 40}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveLanguageRejectsBadIndex(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/cards/o/r/languages/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCardImageMissing(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/cards/o/r/image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCardImageServed(t *testing.T) {
	r, cfg := testRouter(t)

	path := ImagePath(cfg.CacheDir, "o", "r")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, RenderCard(&Card{Owner: "o", Repo: "r"}, path))

	req := httptest.NewRequest(http.MethodGet, "/cards/o/r/image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestEditRequestRawPercentage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"percentage": 42}`, "42"},
		{"string", `{"percentage": "37"}`, "37"},
		{"non-numeric string", `{"percentage": "lots"}`, "lots"},
		{"missing", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var er editRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &er))
			assert.Equal(t, tt.want, er.rawPercentage())
		})
	}
}
