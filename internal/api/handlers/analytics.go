package handlers

import (
	"net/http"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/validation"
)

// AnalyticsHandler serves the computed dashboard figures
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Dashboard handles GET requests for every dashboard figure.
//
// Endpoint: GET /api/analytics/dashboard
// Response: 200 OK with service.DashboardResult; demo is true when the
// demonstration dataset stands in for unavailable data
// Error: 500 Internal Server Error if the snapshot cannot be loaded and demo fallback is off
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.Dashboard(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoadSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// Projection handles GET requests for the long-term growth projection.
//
// Endpoint: GET /api/analytics/projection
// Query Parameters:
//   - monthlySavings: monthly contribution, default 100000
//   - annualReturn: expected return in percent, default 5
//   - years: horizon, default 20
//
// Out of range values are clamped.
// Response: 200 OK with service.ProjectionResult
// Error: 400 Bad Request if a parameter is not a number
// Error: 500 Internal Server Error if the snapshot cannot be loaded
func (h *AnalyticsHandler) Projection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params, err := validation.ParseProjectionParams(q.Get("monthlySavings"), q.Get("annualReturn"), q.Get("years"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidParameter.Error(), err.Error())
		return
	}

	result, err := h.analyticsService.Projection(r.Context(), params)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoadSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
