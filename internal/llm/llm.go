// Package llm wraps the chat completion service used by the assistant and receipt parser.
package llm

import (
	"context"
	"errors"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ErrEmptyCompletion is returned when the service answers without any choice.
var ErrEmptyCompletion = errors.New("completion returned no choices")

type Message struct {
	Role    string
	Content string
}

// Completer returns the content of the first completion choice for messages.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
