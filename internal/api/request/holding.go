package request

import "github.com/shopspring/decimal"

// CreateHoldingRequest represents the request body for recording a balance.
// Balance accepts a JSON number or a numeric string.
type CreateHoldingRequest struct {
	Month    string           `json:"month"`
	Category string           `json:"category"`
	Label    string           `json:"label"`
	Balance  *decimal.Decimal `json:"balance"`
	Memo     string           `json:"memo"`
}

// CreateGoalRequest represents the request body for creating a goal
type CreateGoalRequest struct {
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Target   *decimal.Decimal `json:"target"`
	Deadline string           `json:"deadline"`
}
