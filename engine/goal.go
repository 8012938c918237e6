package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SrChaoz/financeApp-sub000/models"
)

// GoalView is the derived progress of one savings goal.
type GoalView struct {
	ProgressPercent float64         `json:"progress_percent"`
	Remaining       decimal.Decimal `json:"remaining"`
}

// Progress derives a goal's progress. A non-positive target yields 0%
// rather than a division fault.
func Progress(g models.Goal) GoalView {
	pct := 0.0
	if g.TargetAmount.IsPositive() {
		pct, _ = g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	}
	return GoalView{
		ProgressPercent: pct,
		Remaining:       g.TargetAmount.Sub(g.CurrentAmount),
	}
}

// Deposit adds amount to a goal's current amount and auto-completes the
// goal when the target is reached. The amount must be positive.
func Deposit(g *models.Goal, amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return InvalidInput("amount must be positive")
	}
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	ReconcileCompletion(g, now)
	return nil
}

// ReconcileCompletion applies the automatic ACTIVE -> COMPLETED transition
// after a field edit may have pushed the current amount past the target.
// Completed goals are left alone.
func ReconcileCompletion(g *models.Goal, now time.Time) {
	if g.IsCompleted || !g.TargetAmount.IsPositive() {
		return
	}
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		complete(g, now)
	}
}

// Complete marks a goal completed. Re-completing is rejected and leaves the
// goal untouched.
func Complete(g *models.Goal, now time.Time) error {
	if g.IsCompleted {
		return AlreadyCompleted("goal is already completed")
	}
	complete(g, now)
	return nil
}

// complete flips the one-way ACTIVE -> COMPLETED transition. The completion
// timestamp is stamped only if it was never set, so a goal that somehow
// re-enters completion keeps its original CompletedAt.
func complete(g *models.Goal, now time.Time) {
	g.IsCompleted = true
	if g.CompletedAt == nil {
		t := now
		g.CompletedAt = &t
	}
}
