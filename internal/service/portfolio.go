package service

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"fundbuddy/internal/domain"
)

var months = decimal.NewFromInt(12)

// Summarize computes the derived portfolio figures for a ledger. It is a
// pure function recomputed on every read; goal is the raw text from the
// profile and counts only when it parses to a positive amount.
func Summarize(assets []domain.Asset, goal string) domain.Summary {
	total := decimal.Zero
	rateSum := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.InvestedAmount)
		rateSum = rateSum.Add(a.ReturnRate)
	}

	average := decimal.Zero
	if len(assets) > 0 {
		average = rateSum.Div(decimal.NewFromInt(int64(len(assets))))
	}

	summary := domain.Summary{
		TotalInvested:    total,
		AverageReturn:    average,
		MonthlyVariation: average.Div(months),
	}

	if g, err := decimal.NewFromString(strings.TrimSpace(goal)); err == nil && g.IsPositive() {
		progress := total.Div(g).Mul(decimal.NewFromInt(100))
		summary.GoalProgress = &progress
	}

	return summary
}

// FormatBRL renders an amount the way the app displays currency, e.g.
// "R$1.234,56".
func FormatBRL(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0).IntPart()
	return money.New(cents, money.BRL).Display()
}
