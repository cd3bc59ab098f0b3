package domain

import "github.com/shopspring/decimal"

// Summary holds the derived portfolio figures shown on the home screen.
// GoalProgress is nil unless the user has set a positive goal.
type Summary struct {
	TotalInvested    decimal.Decimal
	AverageReturn    decimal.Decimal
	MonthlyVariation decimal.Decimal
	GoalProgress     *decimal.Decimal
}
