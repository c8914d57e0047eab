package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/validation"
)

// HoldingHandler handles balance record HTTP requests
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// LatestHoldings handles GET requests for the current snapshot, the newest
// record of every account.
//
// Endpoint: GET /api/holdings/latest
// Response: 200 OK with array of HoldingRecord
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) LatestHoldings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.holdingService.GetLatestHoldings(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// Holdings handles GET requests for the record history.
//
// Endpoint: GET /api/holdings
// Query Parameters:
//   - from, to: inclusive month bounds (YYYY/MM)
//   - category: comma-separated category names
//
// Response: 200 OK with array of HoldingRecord ordered by month
// Error: 400 Bad Request if a filter is invalid
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := request.ParseHistoryFilters(q.Get("from"), q.Get("to"), q.Get("category"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	holdings, err := h.holdingService.GetHistory(r.Context(), *filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// CreateHolding handles POST requests to record a balance.
//
// Endpoint: POST /api/holdings
// Request Body: CreateHoldingRequest
// Response: 201 Created with HoldingRecord
// Error: 400 Bad Request if the body is invalid or validation fails
// Error: 500 Internal Server Error if storing fails
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.CreateHolding(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, holding)
}

// DeleteHolding handles DELETE requests to remove a balance record.
//
// Endpoint: DELETE /api/holdings/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the record does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	err := h.holdingService.DeleteHolding(r.Context(), holdingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ImportSnapshot handles POST requests that load an exported snapshot. The
// whole import is rejected when any record cannot be stored.
//
// Endpoint: POST /api/holdings/import
// Request Body: model.Snapshot ({latestMonth, latestData, raw, goals})
// Response: 201 Created with service.ImportResult
// Error: 400 Bad Request if the body is invalid
// Error: 500 Internal Server Error if the import fails
func (h *HoldingHandler) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := parseJSON[model.Snapshot](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.holdingService.Import(r.Context(), snapshot)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to import snapshot", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, result)
}
