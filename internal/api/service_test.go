package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samcharles93/tokplot/internal/history"
	"github.com/samcharles93/tokplot/internal/tokenizer"
)

func newTestService(tok tokenizer.Tokenizer) (*TokenizeService, *history.History) {
	hist := history.New(history.DefaultCapacity)
	svc := NewTokenizeService(tok, hist, fixedSampler(0.1))
	svc.clock = func() time.Time { return time.Unix(1700000000, 0) }
	svc.newID = func() string { return "tok_test" }
	return svc, hist
}

func TestSubmitCatDogBird(t *testing.T) {
	t.Parallel()
	svc, hist := newTestService(nil)

	res, err := svc.Submit(context.Background(), "cat dog bird")
	require.NoError(t, err)

	assert.Equal(t, "tok_test", res.ID)
	assert.Equal(t, "tokenization", res.Object)
	assert.Equal(t, int64(1700000000), res.CreatedAt)
	assert.Equal(t, []string{"cat", "dog", "bird"}, res.Tokens)
	assert.Equal(t, "3.33", res.Summary.Formatted)
	assert.InDelta(t, 3.33, res.Summary.Mean, 1e-9)
	require.Len(t, res.Points, 3)
	assert.InDelta(t, 1.0, res.Points[2].Z, 1e-9)
	assert.Equal(t, []string{"cat dog bird"}, hist.Snapshot())
}

func TestSubmitRejectsWithoutMutatingHistory(t *testing.T) {
	t.Parallel()
	svc, hist := newTestService(nil)

	_, err := svc.Submit(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = svc.Submit(context.Background(), " , . ! ")
	assert.ErrorIs(t, err, ErrEmptyTokens)

	assert.Equal(t, 0, hist.Len())
}

func TestSubmitWrapsTokenizerErrors(t *testing.T) {
	t.Parallel()
	cause := errors.New("vocab missing")
	svc, hist := newTestService(tokenizer.Func(func(string) ([]string, error) {
		return nil, cause
	}))

	_, err := svc.Submit(context.Background(), "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenizer)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 0, hist.Len())
}

func TestSubmitHonoursCancelledContext(t *testing.T) {
	t.Parallel()
	svc, hist := newTestService(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Submit(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, hist.Len())
}

func TestSubmitDefaultsIDs(t *testing.T) {
	t.Parallel()
	svc := NewTokenizeService(nil, nil, nil)
	a, err := svc.Submit(context.Background(), "one")
	require.NoError(t, err)
	b, err := svc.Submit(context.Background(), "two")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, history.DefaultCapacity, svc.HistoryCapacity())
	assert.Equal(t, 2, svc.HistoryLen())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err     error
		status  int
		errType string
	}{
		{newMissingInput("sentence"), 400, "missing_input"},
		{newInvalidRequest("bad"), 400, "invalid_request"},
		{ErrEmptyTokens, 422, "empty_tokens"},
		{ErrRateLimited, 429, "rate_limited"},
		{requestError{kind: ErrInputTooLarge, msg: "big"}, 413, "input_too_large"},
		{errors.Join(ErrTokenizer, errors.New("x")), 500, "tokenizer_error"},
		{errors.New("unexpected"), 500, "server_error"},
	}
	for _, tt := range tests {
		f := classify(tt.err)
		assert.Equal(t, tt.status, f.status, tt.err.Error())
		assert.Equal(t, tt.errType, f.errType, tt.err.Error())
	}
}
