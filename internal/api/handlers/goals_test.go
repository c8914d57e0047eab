package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/handlers"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/testutil"
)

func TestGoalHandler_Goals(t *testing.T) {
	t.Run("returns goals in creation order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))

		g1 := testutil.CreateGoal(t, db, "資産1000万", 10_000_000)
		g2 := testutil.CreateGoal(t, db, "新車貯金", 3_000_000)

		req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
		w := httptest.NewRecorder()

		handler.Goals(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var goals []model.Goal
		if err := json.NewDecoder(w.Body).Decode(&goals); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(goals) != 2 {
			t.Fatalf("Expected 2 goals, got %d", len(goals))
		}
		if goals[0].ID != g1.ID || goals[1].ID != g2.ID {
			t.Errorf("Expected creation order, got %s then %s", goals[0].Name, goals[1].Name)
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
		w := httptest.NewRecorder()

		handler.Goals(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected status 500, got %d", w.Code)
		}
	})
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 with created goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))

		req := testutil.NewJSONRequest(http.MethodPost, "/api/goals",
			`{"name":"新車貯金","category":"貯蓄","target":3000000,"deadline":"2024-06-30"}`)
		w := httptest.NewRecorder()

		handler.CreateGoal(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var goal model.Goal
		if err := json.NewDecoder(w.Body).Decode(&goal); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if goal.Target != 3_000_000 {
			t.Errorf("Expected target 3000000, got %d", goal.Target)
		}
		if goal.Deadline.String() != "2024-06-30" {
			t.Errorf("Expected deadline 2024-06-30, got %s", goal.Deadline)
		}
		testutil.AssertRowCount(t, db, "goal", 1)
	})

	t.Run("returns 400 for zero target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))

		req := testutil.NewJSONRequest(http.MethodPost, "/api/goals", `{"name":"新車貯金","target":0}`)
		w := httptest.NewRecorder()

		handler.CreateGoal(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
		testutil.AssertRowCount(t, db, "goal", 0)
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewGoalHandler(testutil.NewTestGoalService(t, db))
	goal := testutil.CreateGoal(t, db, "資産1000万", 10_000_000)

	t.Run("returns 204 on success", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/goals/"+goal.ID, map[string]string{"uuid": goal.ID})
		w := httptest.NewRecorder()

		handler.DeleteGoal(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
	})

	t.Run("returns 404 once deleted", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/goals/"+goal.ID, map[string]string{"uuid": goal.ID})
		w := httptest.NewRecorder()

		handler.DeleteGoal(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
