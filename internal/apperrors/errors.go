package apperrors

import "errors"

// Domain entity errors represent records that do not exist.
var (
	// ErrHoldingNotFound indicates that a holding record with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrGoalNotFound indicates that a goal with the given ID does not exist.
	ErrGoalNotFound = errors.New("goal not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidParameter indicates a query parameter that is not a number.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveHoldings = errors.New("failed to retrieve holdings")
	ErrFailedToRetrieveGoals    = errors.New("failed to retrieve goals")
	ErrFailedToLoadSnapshot     = errors.New("failed to load snapshot")
)
