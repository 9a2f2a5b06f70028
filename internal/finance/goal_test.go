package finance

import (
	"testing"

	"finai/internal/models"

	"github.com/shopspring/decimal"
)

func goal(id uint, title, current, target string) models.SavingGoal {
	return models.SavingGoal{
		ID:            id,
		Title:         title,
		CurrentAmount: decimal.RequireFromString(current),
		TargetAmount:  decimal.RequireFromString(target),
	}
}

func TestGoalMilestone(t *testing.T) {
	tests := []struct {
		name    string
		goal    models.SavingGoal
		wantOK  bool
		wantKey string
		wantMsg string
	}{
		{
			name:    "reached",
			goal:    goal(7, "Bike", "500", "500"),
			wantOK:  true,
			wantKey: "savings-7-100",
			wantMsg: "You've reached your saving goal: Bike!",
		},
		{
			name:    "overshoot still reached",
			goal:    goal(7, "Bike", "650", "500"),
			wantOK:  true,
			wantKey: "savings-7-100",
			wantMsg: "You've reached your saving goal: Bike!",
		},
		{
			name:    "three quarters",
			goal:    goal(3, "Trip", "80", "100"),
			wantOK:  true,
			wantKey: "savings-3-75",
			wantMsg: "You're 80% of the way to your goal: Trip.",
		},
		{
			name:    "rounds percentage",
			goal:    goal(4, "Laptop", "2397", "3000"),
			wantOK:  true,
			wantKey: "savings-4-75",
			wantMsg: "You're 80% of the way to your goal: Laptop.",
		},
		{
			name:   "below threshold",
			goal:   goal(5, "Car", "10", "100"),
			wantOK: false,
		},
		{
			name:   "zero target",
			goal:   goal(6, "Nothing", "10", "0"),
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, msg, ok := GoalMilestone(tt.goal)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if key != tt.wantKey {
				t.Errorf("key = %q, want %q", key, tt.wantKey)
			}
			if msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestGoalProgress(t *testing.T) {
	if got := GoalProgress(goal(1, "x", "25", "200")); !got.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("GoalProgress = %s, want 12.5", got)
	}
}
