package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/testutil"
)

// TestNewRouter tests that every route is mounted with its middleware.
//
// WHY: Handlers are tested in isolation; this catches routes that were never
// registered, wrong methods and missing UUID validation.
func TestNewRouter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svcs := testutil.NewTestServices(t, db, false)
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}}

	router := api.NewRouter(api.Services{
		System:    svcs.System,
		Holdings:  svcs.Holdings,
		Goals:     svcs.Goals,
		Analytics: svcs.Analytics,
	}, cfg, zerolog.Nop())

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/system/health", http.StatusOK},
		{http.MethodGet, "/api/system/version", http.StatusOK},
		{http.MethodGet, "/api/holdings", http.StatusOK},
		{http.MethodGet, "/api/holdings/latest", http.StatusOK},
		{http.MethodPost, "/api/holdings", http.StatusBadRequest},
		{http.MethodPost, "/api/holdings/import", http.StatusBadRequest},
		{http.MethodDelete, "/api/holdings/not-a-uuid", http.StatusBadRequest},
		{http.MethodDelete, "/api/holdings/550e8400-e29b-41d4-a716-446655440000", http.StatusNotFound},
		{http.MethodGet, "/api/goals", http.StatusOK},
		{http.MethodDelete, "/api/goals/550e8400-e29b-41d4-a716-446655440000", http.StatusNotFound},
		{http.MethodGet, "/api/analytics/dashboard", http.StatusOK},
		{http.MethodGet, "/api/analytics/projection?years=10", http.StatusOK},
		{http.MethodPut, "/api/holdings", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}

	t.Run("CORS preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/holdings", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Expected allowed origin header, got %q", got)
		}
	})
}
