package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"finai/internal/llm"

	"github.com/rs/zerolog"
)

func TestChatService_Ask(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := newTestUser(t, s)
	txs := NewTransactionService(s.Transactions, zerolog.Nop())
	budgets := NewBudgetService(s.Budgets, s.Transactions, zerolog.Nop())
	goals := NewGoalService(s.Goals, NewNotificationService(s.Notifications, nil, zerolog.Nop()), zerolog.Nop())

	_, _ = txs.Create(ctx, userID, TransactionInput{Amount: dec("40"), Category: "Food", Type: "expense", Date: date(2024, 6, 3)})
	_, _ = txs.Create(ctx, userID, TransactionInput{Amount: dec("60"), Category: "Shopping", Type: "expense", Date: date(2023, 6, 3)})
	_, _ = budgets.Create(ctx, userID, BudgetInput{Category: "Food", Amount: dec("100"), Month: "2024-06"})
	_, _ = goals.Create(ctx, userID, GoalInput{Title: "Holiday", TargetAmount: dec("1000")})

	fake := &fakeCompleter{reply: "You spent 60.00 in June 2023."}
	chat := NewChatService(s, fake, time.Second, zerolog.Nop())
	chat.now = func() time.Time { return date(2024, 6, 15) }

	reply, err := chat.Ask(ctx, userID, "What did I spend in June 2023?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if reply != fake.reply {
		t.Errorf("Ask() = %q, want completion verbatim", reply)
	}

	if len(fake.messages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(fake.messages))
	}
	if fake.messages[0].Role != llm.RoleSystem || fake.messages[1].Role != llm.RoleUser {
		t.Errorf("roles = %s, %s", fake.messages[0].Role, fake.messages[1].Role)
	}
	if fake.messages[1].Content != "What did I spend in June 2023?" {
		t.Errorf("user message = %q", fake.messages[1].Content)
	}
	prompt := fake.messages[0].Content
	for _, want := range []string{
		"Period: June 2023",
		"Total expense: 60.00",
		"Biggest expense category: Shopping (60.00)",
		"- 2024-06 Food: 40.00 of 100.00 spent",
		"- Holiday: 0.00 / 1000.00",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\n%s", want, prompt)
		}
	}
}

func TestChatService_UpstreamFailure(t *testing.T) {
	s := newTestStore(t)
	userID := newTestUser(t, s)
	chat := NewChatService(s, &fakeCompleter{err: errors.New("connection refused")}, time.Second, zerolog.Nop())

	_, err := chat.Ask(context.Background(), userID, "hello")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("Ask() error = %v, want ErrUpstream", err)
	}
}

func TestChatService_EmptyMessage(t *testing.T) {
	s := newTestStore(t)
	chat := NewChatService(s, &fakeCompleter{}, time.Second, zerolog.Nop())
	if _, err := chat.Ask(context.Background(), "u", "   "); !errors.Is(err, ErrValidation) {
		t.Errorf("Ask(empty) error = %v, want ErrValidation", err)
	}
}

type slowCompleter struct{}

func (slowCompleter) Complete(ctx context.Context, _ []llm.Message) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestChatService_Timeout(t *testing.T) {
	s := newTestStore(t)
	userID := newTestUser(t, s)
	chat := NewChatService(s, slowCompleter{}, 20*time.Millisecond, zerolog.Nop())

	_, err := chat.Ask(context.Background(), userID, "hello")
	if !errors.Is(err, ErrUpstream) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Ask() error = %v, want upstream deadline", err)
	}
}
