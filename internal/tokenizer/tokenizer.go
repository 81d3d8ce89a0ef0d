// Package tokenizer splits sentences into ordered word-like tokens.
//
// Request handling depends only on the Tokenizer interface; concrete
// implementations are chosen by name through New.
package tokenizer

import (
	"fmt"
	"sort"
	"strings"
)

// Tokenizer splits text into an ordered sequence of non-empty tokens.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Func adapts an ordinary function to the Tokenizer interface.
type Func func(text string) ([]string, error)

func (f Func) Tokenize(text string) ([]string, error) {
	return f(text)
}

// Registered tokenizer names.
const (
	NameWord     = "word"
	NameTiktoken = "tiktoken"
)

const defaultTiktokenEncoding = "cl100k_base"

// Names lists the tokenizer names accepted by New.
func Names() []string {
	names := []string{NameWord, NameTiktoken}
	sort.Strings(names)
	return names
}

// New resolves a tokenizer by name. An empty name selects the word tokenizer.
// The tiktoken tokenizer accepts an optional encoding suffix,
// e.g. "tiktoken:o200k_base".
func New(name string) (Tokenizer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	base, arg, _ := strings.Cut(name, ":")
	switch base {
	case "", NameWord:
		if arg != "" {
			return nil, fmt.Errorf("tokenizer %q takes no options", NameWord)
		}
		return Word{}, nil
	case NameTiktoken:
		if arg == "" {
			arg = defaultTiktokenEncoding
		}
		return NewTiktoken(arg), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}
