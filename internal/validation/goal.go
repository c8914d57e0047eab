package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// ValidateCreateGoal checks a new goal. Category and deadline are optional.
func ValidateCreateGoal(req request.CreateGoalRequest) error {
	errors := make(map[string]string)

	requireName(errors, "name", req.Name)

	if utf8.RuneCountInString(req.Category) > maxNameLength {
		errors["category"] = "category must be 100 characters or less"
	}

	switch {
	case req.Target == nil:
		errors["target"] = "target is required"
	case !req.Target.IsPositive():
		errors["target"] = "target must be greater than zero"
	case !req.Target.IsInteger():
		errors["target"] = "target must be a whole amount"
	case exceedsMaxMoney(*req.Target):
		errors["target"] = maxMoneyMessage("target")
	}

	if strings.TrimSpace(req.Deadline) != "" {
		if _, err := model.ParseDate(req.Deadline); err != nil {
			errors["deadline"] = "deadline must be in YYYY-MM-DD format"
		}
	}

	return fieldErrors(errors)
}
