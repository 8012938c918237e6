package engine

import (
	"github.com/shopspring/decimal"

	"github.com/SrChaoz/financeApp-sub000/models"
)

// BalanceView is the derived balance of one account.
type BalanceView struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// AccountBalance sums the transactions of a single account. An empty slice
// yields all-zero sums; transaction order does not affect the result.
func AccountBalance(txs []models.Transaction) BalanceView {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			income = income.Add(tx.Amount)
		case models.TypeExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}
	return BalanceView{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}
