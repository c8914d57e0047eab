package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/response"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/validation"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// Goals handles GET requests to list all goals. The first goal is the main goal.
//
// Endpoint: GET /api/goals
// Response: 200 OK with array of Goal in creation order
// Error: 500 Internal Server Error if retrieval fails
func (h *GoalHandler) Goals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.GetGoals(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveGoals.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, goals)
}

// CreateGoal handles POST requests to create a goal.
//
// Endpoint: POST /api/goals
// Request Body: CreateGoalRequest
// Response: 201 Created with Goal
// Error: 400 Bad Request if the body is invalid or validation fails
// Error: 500 Internal Server Error if storing fails
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal, err := h.goalService.CreateGoal(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, goal)
}

// DeleteGoal handles DELETE requests to remove a goal.
//
// Endpoint: DELETE /api/goals/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the goal does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "uuid")

	if err := h.goalService.DeleteGoal(r.Context(), goalID); err != nil {
		if errors.Is(err, apperrors.ErrGoalNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrGoalNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete goal", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
