package api

import (
	"errors"
	"net/http"

	"github.com/samcharles93/tokplot/internal/analysis"
	"github.com/samcharles93/tokplot/internal/metrics"
)

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrMissingInput   = errors.New("missing_input")
	ErrInputTooLarge  = errors.New("input_too_large")
	ErrTokenizer      = errors.New("tokenizer_error")
	ErrRateLimited    = errors.New("rate_limited")
)

// ErrEmptyTokens is returned when a sentence tokenizes to nothing.
var ErrEmptyTokens = analysis.ErrEmptyTokens

type requestError struct {
	kind error
	msg  string
}

func (e requestError) Error() string {
	return e.msg
}

func (e requestError) Unwrap() error {
	return e.kind
}

func newInvalidRequest(msg string) error {
	return requestError{kind: ErrInvalidRequest, msg: msg}
}

func newMissingInput(field string) error {
	return requestError{kind: ErrMissingInput, msg: field + " is required"}
}

// failure describes how an error surfaces to a client.
type failure struct {
	status  int
	errType string
	outcome string
	title   string
	message string
}

func classify(err error) failure {
	switch {
	case errors.Is(err, ErrMissingInput):
		return failure{http.StatusBadRequest, "missing_input", metrics.OutcomeMissingInput,
			"Missing sentence", "Please enter a sentence to tokenize."}
	case errors.Is(err, ErrInputTooLarge):
		return failure{http.StatusRequestEntityTooLarge, "input_too_large", metrics.OutcomeInvalidRequest,
			"Sentence too long", err.Error()}
	case errors.Is(err, ErrInvalidRequest):
		return failure{http.StatusBadRequest, "invalid_request", metrics.OutcomeInvalidRequest,
			"Invalid request", err.Error()}
	case errors.Is(err, ErrEmptyTokens):
		return failure{http.StatusUnprocessableEntity, "empty_tokens", metrics.OutcomeEmptyTokens,
			"Nothing to tokenize", "The sentence has no words, only whitespace or punctuation."}
	case errors.Is(err, ErrRateLimited):
		return failure{http.StatusTooManyRequests, "rate_limited", metrics.OutcomeRateLimited,
			"Slow down", "Too many submissions; try again shortly."}
	case errors.Is(err, ErrTokenizer):
		return failure{http.StatusInternalServerError, "tokenizer_error", metrics.OutcomeTokenizerError,
			"Tokenizer failed", "The sentence could not be tokenized."}
	default:
		return failure{http.StatusInternalServerError, "server_error", "",
			"Something went wrong", "An internal error occurred."}
	}
}
