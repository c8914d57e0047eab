package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/analytics"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/service"
)

// Services bundles every service wired to one test database, sharing one
// snapshot cache the way the server does.
type Services struct {
	Snapshots *service.SnapshotService
	Analytics *service.AnalyticsService
	Holdings  *service.HoldingService
	Goals     *service.GoalService
	System    *service.SystemService
}

// NewTestServices wires every service against db with the built-in tables,
// JPY reporting and no memo encryption.
func NewTestServices(t *testing.T, db *sql.DB, demoFallback bool) *Services {
	t.Helper()

	log := zerolog.Nop()
	holdingRepo := repository.NewHoldingRepository(db, nil)
	goalRepo := repository.NewGoalRepository(db)
	snapshots := service.NewSnapshotService(holdingRepo, goalRepo, demoFallback, log)

	return &Services{
		Snapshots: snapshots,
		Analytics: service.NewAnalyticsService(snapshots, analytics.NewEngine(analytics.DefaultTables()), "JPY"),
		Holdings:  service.NewHoldingService(db, holdingRepo, goalRepo, snapshots, log),
		Goals:     service.NewGoalService(goalRepo, snapshots, log),
		System:    service.NewSystemService(db, map[string]bool{"demo_fallback": demoFallback}),
	}
}

func NewTestSnapshotService(t *testing.T, db *sql.DB, demoFallback bool) *service.SnapshotService {
	t.Helper()
	return NewTestServices(t, db, demoFallback).Snapshots
}

func NewTestAnalyticsService(t *testing.T, db *sql.DB) *service.AnalyticsService {
	t.Helper()
	return NewTestServices(t, db, false).Analytics
}

func NewTestHoldingService(t *testing.T, db *sql.DB) *service.HoldingService {
	t.Helper()
	return NewTestServices(t, db, false).Holdings
}

func NewTestGoalService(t *testing.T, db *sql.DB) *service.GoalService {
	t.Helper()
	return NewTestServices(t, db, false).Goals
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return NewTestServices(t, db, false).System
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeLabel generates a unique account or goal label for testing.
//
// Example usage:
//
//	label := testutil.MakeLabel("Bank")
//	// Returns: "Bank ABC123"
func MakeLabel(base string) string {
	if base == "" {
		base = "Account"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
