// Package llm talks to an OpenAI-compatible chat completion API.
package llm

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=llm.go -destination=mocks/completer.go -package=mocks

// Completer sends one system+user exchange and returns the reply text of
// the first choice.
type Completer interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

type Prompt struct {
	System    string
	User      string
	MaxTokens int
}

type Error struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm %s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("llm %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

const (
	CodeRequest       = "request_error"
	CodeTimeout       = "timeout"
	CodeNetwork       = "network_error"
	CodeStatus        = "bad_status"
	CodeDecode        = "decode_error"
	CodeEmptyResponse = "empty_response"
	CodeNotConfigured = "not_configured"
)
