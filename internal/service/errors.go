// Package service orchestrates the store, the finance rules and the outbound
// collaborators for each request.
package service

import (
	"errors"
	"fmt"

	"finai/internal/store"
)

// Error kinds. Handlers map them to HTTP statuses with errors.Is; anything else is
// reported as an internal error.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("upstream failure")
)

// kindError carries a client-facing message and classifies it under kind.
type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

func validationf(format string, args ...any) error {
	return &kindError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func notFound(what string) error {
	return &kindError{kind: ErrNotFound, msg: what + " not found"}
}

func unauthorized(msg string) error {
	return &kindError{kind: ErrUnauthorized, msg: msg}
}

func upstream(msg string, cause error) error {
	return &kindError{kind: ErrUpstream, msg: msg, cause: cause}
}

// fromStore turns store.ErrNotFound into a not-found error for what and leaves
// other failures untouched.
func fromStore(err error, what string) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound(what)
	}
	return err
}
