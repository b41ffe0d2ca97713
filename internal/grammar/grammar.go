// Package grammar provides the grammar-checking capability used by the
// analysis core. The production implementation talks to a LanguageTool
// server over HTTP; the core only depends on the Checker interface.
package grammar

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the grammar service could not be reached or
// answered with a server error. Callers can distinguish it from
// malformed-response failures with errors.Is.
var ErrUnavailable = errors.New("grammar service unavailable")

// Match is a single span flagged by the grammar service.
type Match struct {
	Message      string   `json:"message"`
	RuleID       string   `json:"rule_id"`
	Category     string   `json:"category"`
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	Replacements []string `json:"replacements"`
}

// Checker flags grammar and spelling problems in text. Implementations
// wrapping a long-lived process or connection must be released with Close
// exactly once when no longer needed.
type Checker interface {
	Check(ctx context.Context, text string) ([]Match, error)
	Close() error
}
