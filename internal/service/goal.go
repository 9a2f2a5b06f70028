package service

import (
	"context"
	"strings"
	"time"

	"finai/internal/finance"
	"finai/internal/logger"
	"finai/internal/models"
	"finai/internal/store"
	"finai/internal/util"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const maxGoalTitleLen = 128

// GoalInput is the client-editable part of a saving goal. Deadline is optional.
type GoalInput struct {
	Title        string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
}

// emitter is the part of NotificationService goals need.
type emitter interface {
	Emit(ctx context.Context, userID, message, uniqueKey string) (bool, error)
}

// GoalService manages saving goals and their milestone notifications.
type GoalService struct {
	goals    store.GoalStore
	notifier emitter
	log      zerolog.Logger
}

// NewGoalService tags log with the goal component.
func NewGoalService(goals store.GoalStore, notifier emitter, log zerolog.Logger) *GoalService {
	return &GoalService{goals: goals, notifier: notifier, log: logger.WithComponent(log, logger.ComponentGoal)}
}

func validateGoal(in *GoalInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return validationf("title is required")
	}
	if len(in.Title) > maxGoalTitleLen {
		return validationf("title too long (max %d)", maxGoalTitleLen)
	}
	if err := util.ValidateAmount(in.TargetAmount); err != nil {
		return validationf("target %s", err.Error())
	}
	return nil
}

// Create starts a goal at zero saved.
func (s *GoalService) Create(ctx context.Context, userID string, in GoalInput) (*models.SavingGoal, error) {
	if err := validateGoal(&in); err != nil {
		return nil, err
	}
	g := &models.SavingGoal{
		UserID:        userID,
		Title:         in.Title,
		TargetAmount:  in.TargetAmount.Round(2),
		CurrentAmount: decimal.Zero,
		Deadline:      in.Deadline,
	}
	if err := s.goals.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// List returns the user's goals and emits a milestone notification for each goal at or
// beyond 75% of its target. Each milestone is stored once.
func (s *GoalService) List(ctx context.Context, userID string) ([]models.SavingGoal, error) {
	goals, err := s.goals.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		key, msg, ok := finance.GoalMilestone(g)
		if !ok {
			continue
		}
		created, err := s.notifier.Emit(ctx, userID, msg, key)
		if err != nil {
			return nil, err
		}
		if created {
			s.log.Info().Str("user_id", userID).Str("key", key).Msg("goal milestone reached")
		}
	}
	return goals, nil
}

// Update edits title, target and deadline, then returns the stored goal.
func (s *GoalService) Update(ctx context.Context, userID string, id uint, in GoalInput) (*models.SavingGoal, error) {
	if err := validateGoal(&in); err != nil {
		return nil, err
	}
	g, err := s.goals.Get(ctx, userID, id)
	if err != nil {
		return nil, fromStore(err, "saving goal")
	}
	g.Title = in.Title
	g.TargetAmount = in.TargetAmount.Round(2)
	g.Deadline = in.Deadline
	if err := s.goals.Update(ctx, g); err != nil {
		return nil, fromStore(err, "saving goal")
	}
	// reload so contributions made meanwhile are reflected
	g, err = s.goals.Get(ctx, userID, id)
	if err != nil {
		return nil, fromStore(err, "saving goal")
	}
	return g, nil
}

// Contribute adds amount to the goal. There is no cap at the target.
func (s *GoalService) Contribute(ctx context.Context, userID string, id uint, amount decimal.Decimal) (*models.SavingGoal, error) {
	if err := util.ValidateAmount(amount); err != nil {
		return nil, validationf("contribution %s", err.Error())
	}
	g, err := s.goals.AddContribution(ctx, userID, id, amount.Round(2))
	if err != nil {
		return nil, fromStore(err, "saving goal")
	}
	return g, nil
}

// Delete removes one of the user's goals.
func (s *GoalService) Delete(ctx context.Context, userID string, id uint) error {
	if err := s.goals.Delete(ctx, userID, id); err != nil {
		return fromStore(err, "saving goal")
	}
	return nil
}
