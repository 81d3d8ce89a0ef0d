package api

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/samcharles93/tokplot/internal/analysis"
	"github.com/samcharles93/tokplot/internal/history"
	"github.com/samcharles93/tokplot/internal/tokenizer"
)

// TokenizeService turns submitted sentences into results and records them
// in the history.
type TokenizeService struct {
	tokenizer tokenizer.Tokenizer
	history   *history.History
	sampler   analysis.Sampler
	clock     func() time.Time
	newID     func() string
}

// NewTokenizeService wires a tokenizer to a history. A nil sampler uses the
// process-wide random generator.
func NewTokenizeService(tok tokenizer.Tokenizer, hist *history.History, sampler analysis.Sampler) *TokenizeService {
	if tok == nil {
		tok = tokenizer.Word{}
	}
	if hist == nil {
		hist = history.New(history.DefaultCapacity)
	}
	return &TokenizeService{
		tokenizer: tok,
		history:   hist,
		sampler:   sampler,
		clock:     time.Now,
		newID:     newResultID,
	}
}

// Submit tokenizes sentence, appends it to the history and returns the
// analysis. Empty sentences and sentences without tokens are rejected
// before the history is touched.
func (s *TokenizeService) Submit(ctx context.Context, sentence string) (*TokenizationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sentence == "" {
		return nil, newMissingInput("sentence")
	}

	tokens, err := s.tokenizer.Tokenize(sentence)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenizer, err)
	}
	res, err := analysis.Analyze(tokens, s.sampler)
	if err != nil {
		return nil, err
	}

	s.history.Add(sentence)

	return &TokenizationResult{
		ID:        s.newID(),
		Object:    "tokenization",
		CreatedAt: s.clock().Unix(),
		Sentence:  sentence,
		Tokens:    res.Tokens,
		Points:    res.Points,
		Summary:   res.Summary,
	}, nil
}

// History returns the recorded sentences, oldest first.
func (s *TokenizeService) History() []string {
	return s.history.Snapshot()
}

func (s *TokenizeService) HistoryLen() int {
	return s.history.Len()
}

func (s *TokenizeService) HistoryCapacity() int {
	return s.history.Cap()
}

func newResultID() string {
	return "tok_" + uuid.NewString()
}
