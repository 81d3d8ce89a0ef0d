package tokenizer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Tiktoken splits text into BPE pieces using an OpenAI tiktoken encoding.
// Each piece is decoded back to text with surrounding whitespace trimmed;
// whitespace-only pieces are dropped.
type Tiktoken struct {
	encoding string

	once    sync.Once
	enc     *tiktoken.Tiktoken
	initErr error
}

// NewTiktoken returns a tokenizer for the named encoding (e.g. "cl100k_base").
// The encoding is loaded on first use, which may download its BPE ranks.
func NewTiktoken(encoding string) *Tiktoken {
	return &Tiktoken{encoding: encoding}
}

func (t *Tiktoken) init() error {
	t.once.Do(func() {
		enc, err := tiktoken.GetEncoding(t.encoding)
		if err != nil {
			t.initErr = fmt.Errorf("load tiktoken encoding %s: %w", t.encoding, err)
			return
		}
		t.enc = enc
	})
	return t.initErr
}

func (t *Tiktoken) Tokenize(text string) ([]string, error) {
	if err := t.init(); err != nil {
		return nil, err
	}
	ids := t.enc.Encode(text, nil, nil)
	tokens := make([]string, 0, len(ids))
	for _, id := range ids {
		piece := strings.TrimSpace(t.enc.Decode([]int{id}))
		if piece == "" {
			continue
		}
		tokens = append(tokens, piece)
	}
	return tokens, nil
}

// Encoding returns the configured encoding name.
func (t *Tiktoken) Encoding() string {
	return t.encoding
}

var _ Tokenizer = (*Tiktoken)(nil)
