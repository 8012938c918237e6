package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SrChaoz/financeApp-sub000/models"
)

// Stats is the global financial view over a set of transactions.
type Stats struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
	// ExpensesByCategory only carries categories that have at least one
	// expense row; a silent category is absent, not zero.
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
	TransactionCount   int                        `json:"transaction_count"`
}

// InRange keeps the transactions whose date falls within [start, end],
// both bounds inclusive. A nil bound leaves that side open.
func InRange(txs []models.Transaction, start, end *time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if start != nil && tx.Date.Before(*start) {
			continue
		}
		if end != nil && tx.Date.After(*end) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Summarize computes the global statistics view over a user's transactions.
func Summarize(txs []models.Transaction) Stats {
	s := Stats{
		TotalIncome:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
		Balance:            decimal.Zero,
		ExpensesByCategory: map[string]decimal.Decimal{},
		TransactionCount:   len(txs),
	}
	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case models.TypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
			prev, ok := s.ExpensesByCategory[tx.Category]
			if !ok {
				prev = decimal.Zero
			}
			s.ExpensesByCategory[tx.Category] = prev.Add(tx.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}
