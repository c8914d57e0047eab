package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

const (
	maxNameLength = 100
	maxMemoLength = 500
)

// ValidateCreateHolding checks a balance entry. Month is optional; when set it
// must be a valid YYYY/MM month.
func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Month) != "" {
		if _, err := model.ParseYearMonth(req.Month); err != nil {
			errors["month"] = "month must be in YYYY/MM format"
		}
	}

	requireName(errors, "category", req.Category)
	requireName(errors, "label", req.Label)

	switch {
	case req.Balance == nil:
		errors["balance"] = "balance is required"
	case req.Balance.IsNegative():
		errors["balance"] = "balance cannot be negative"
	case !req.Balance.IsInteger():
		errors["balance"] = "balance must be a whole amount"
	case exceedsMaxMoney(*req.Balance):
		errors["balance"] = maxMoneyMessage("balance")
	}

	if utf8.RuneCountInString(req.Memo) > maxMemoLength {
		errors["memo"] = "memo must be 500 characters or less"
	}

	return fieldErrors(errors)
}

var maxMoney = decimal.NewFromInt(int64(model.MaxMoney))

func exceedsMaxMoney(d decimal.Decimal) bool {
	return d.GreaterThan(maxMoney)
}

func maxMoneyMessage(field string) string {
	return field + " must be at most " + maxMoney.String()
}

func requireName(errors map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errors[field] = field + " is required"
	} else if utf8.RuneCountInString(value) > maxNameLength {
		errors[field] = field + " must be 100 characters or less"
	}
}
