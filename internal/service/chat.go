package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"finai/internal/finance"
	"finai/internal/llm"
	"finai/internal/logger"
	"finai/internal/models"
	"finai/internal/store"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const maxChatMessageLen = 2000

type ChatService struct {
	txs       store.TransactionStore
	budgets   store.BudgetStore
	goals     store.GoalStore
	completer llm.Completer
	timeout   time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewChatService(s *store.Store, completer llm.Completer, timeout time.Duration, log zerolog.Logger) *ChatService {
	return &ChatService{
		txs:       s.Transactions,
		budgets:   s.Budgets,
		goals:     s.Goals,
		completer: completer,
		timeout:   timeout,
		log:       logger.WithComponent(log, logger.ComponentChat),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Ask answers message with the user's financial summary as the system prompt.
// The completion's first choice is returned verbatim.
func (s *ChatService) Ask(ctx context.Context, userID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", validationf("message is required")
	}
	if utf8.RuneCountInString(message) > maxChatMessageLen {
		return "", validationf("message too long (max %d characters)", maxChatMessageLen)
	}

	now := s.now()
	prompt, err := s.buildContext(ctx, userID, message, now)
	if err != nil {
		return "", err
	}

	cctx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	reply, err := s.completer.Complete(cctx, []llm.Message{
		{Role: llm.RoleSystem, Content: prompt},
		{Role: llm.RoleUser, Content: message},
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Dur("elapsed", time.Since(started)).Msg("completion failed")
		return "", upstream("assistant is unavailable, please try again later", err)
	}
	s.log.Debug().Str("user_id", userID).Dur("elapsed", time.Since(started)).Msg("completion done")
	return reply, nil
}

func (s *ChatService) buildContext(ctx context.Context, userID, message string, now time.Time) (string, error) {
	month := finance.MonthKey(now)

	var (
		txs     []models.Transaction
		budgets []models.Budget
		goals   []models.SavingGoal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.txs.List(gctx, userID, store.TransactionFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgets.ListByMonth(gctx, userID, month)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.goals.List(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	spent := finance.SpentByCategory(txs, finance.MonthStart(now))
	for i := range budgets {
		budgets[i].Spent = finance.CheckBudgetUsage(budgets[i].Amount, spent[budgets[i].Category]).Spent
	}

	in := finance.ChatInput{
		Transactions: txs,
		Budgets:      budgets,
		Goals:        goals,
		Now:          now,
	}
	if r, ok := finance.ExtractDateRange(message, now); ok {
		in.Range = &r
	}
	return finance.BuildChatContext(in), nil
}
