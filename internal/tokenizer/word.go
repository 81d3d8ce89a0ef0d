package tokenizer

import (
	"strings"
	"unicode"
)

// Word splits text into maximal runs of letters, digits, combining marks and
// underscores. Whitespace and punctuation separate tokens and are dropped,
// so "Hello, world!" yields ["Hello" "world"].
type Word struct{}

func (Word) Tokenize(text string) ([]string, error) {
	return strings.FieldsFunc(text, isWordSeparator), nil
}

func isWordSeparator(r rune) bool {
	if r == '_' {
		return false
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
}

var _ Tokenizer = Word{}
