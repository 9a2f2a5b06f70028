package finance

import (
	"fmt"

	"finai/internal/models"

	"github.com/shopspring/decimal"
)

var (
	milestoneNear    = decimal.NewFromInt(75)
	milestoneReached = decimal.NewFromInt(100)
)

// GoalProgress returns current/target*100, or 0 for a zero target.
func GoalProgress(g models.SavingGoal) decimal.Decimal {
	return Percent(g.CurrentAmount, g.TargetAmount)
}

// GoalMilestone returns the notification for the highest milestone g has crossed.
// The key is stable per goal and milestone so repeated checks deduplicate.
func GoalMilestone(g models.SavingGoal) (key, message string, ok bool) {
	pct := GoalProgress(g)
	switch {
	case pct.GreaterThanOrEqual(milestoneReached):
		return fmt.Sprintf("savings-%d-100", g.ID),
			fmt.Sprintf("You've reached your saving goal: %s!", g.Title), true
	case pct.GreaterThanOrEqual(milestoneNear):
		return fmt.Sprintf("savings-%d-75", g.ID),
			fmt.Sprintf("You're %s%% of the way to your goal: %s.", pct.StringFixed(0), g.Title), true
	}
	return "", "", false
}
