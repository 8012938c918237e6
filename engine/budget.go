package engine

import (
	"github.com/shopspring/decimal"

	"github.com/SrChaoz/financeApp-sub000/models"
)

// BudgetStatus is the spend-vs-limit band of a budget.
type BudgetStatus string

const (
	StatusUnderControl BudgetStatus = "under control"
	StatusWarning      BudgetStatus = "warning"
	StatusExceeded     BudgetStatus = "exceeded"
)

// BudgetView is the derived utilization of one budget.
type BudgetView struct {
	Spent      decimal.Decimal `json:"spent"`
	Percentage float64         `json:"percentage"`
	// Remaining goes negative when the budget is exceeded; it is never
	// clamped.
	Remaining decimal.Decimal `json:"remaining"`
	Status    BudgetStatus    `json:"status"`
}

// Utilization sums the expense transactions whose category exactly matches
// the budget's category (case-sensitive, no fuzzy matching) and derives the
// percentage of the limit spent. A zero or negative limit yields percentage
// 0 rather than a division fault.
func Utilization(b models.Budget, txs []models.Transaction) BudgetView {
	spent := decimal.Zero
	for _, tx := range txs {
		if tx.Type != models.TypeExpense || tx.Category != b.Category {
			continue
		}
		spent = spent.Add(tx.Amount)
	}

	pct := 0.0
	if b.LimitAmount.IsPositive() {
		pct, _ = spent.Div(b.LimitAmount).Mul(decimal.NewFromInt(100)).Float64()
	}

	return BudgetView{
		Spent:      spent,
		Percentage: pct,
		Remaining:  b.LimitAmount.Sub(spent),
		Status:     Band(pct),
	}
}

// Band classifies a utilization percentage: below 80 is under control,
// 80 up to but excluding 100 is a warning, 100 and above is exceeded.
func Band(pct float64) BudgetStatus {
	switch {
	case pct >= 100:
		return StatusExceeded
	case pct >= 80:
		return StatusWarning
	default:
		return StatusUnderControl
	}
}
