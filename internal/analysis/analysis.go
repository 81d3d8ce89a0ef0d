// Package analysis derives plot coordinates and the mean token length
// "prediction" from a token sequence.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"unicode/utf8"
)

// ZScale bounds the random z coordinate to [0, ZScale).
const ZScale = 10

// ErrEmptyTokens is returned when there are no tokens to average.
var ErrEmptyTokens = errors.New("sentence contains no tokens")

// Point is one token placed in plot space.
type Point struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Z     float64 `json:"z"`
	Label string  `json:"label"`
}

// Summary is the mean token length of one submission.
type Summary struct {
	Mean       float64 `json:"mean"`
	Formatted  string  `json:"formatted"`
	TokenCount int     `json:"token_count"`
}

// Result bundles everything derived from one token sequence.
type Result struct {
	Tokens  []string `json:"tokens"`
	Points  []Point  `json:"points"`
	Summary Summary  `json:"summary"`
}

// Sampler yields uniform floats in [0, 1).
type Sampler interface {
	Float64() float64
}

// Analyze computes points and summary for tokens. It fails with
// ErrEmptyTokens when tokens is empty.
func Analyze(tokens []string, s Sampler) (Result, error) {
	summary, err := Summarize(tokens)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Tokens:  tokens,
		Points:  Points(tokens, s),
		Summary: summary,
	}, nil
}

// Points places token i at (i, len(token), random*ZScale). A nil sampler
// uses the process-wide generator.
func Points(tokens []string, s Sampler) []Point {
	if s == nil {
		s = globalSampler{}
	}
	points := make([]Point, len(tokens))
	for i, tok := range tokens {
		points[i] = Point{
			X:     i,
			Y:     TokenLength(tok),
			Z:     s.Float64() * ZScale,
			Label: tok,
		}
	}
	return points
}

// Summarize returns the mean token length rounded to two decimals.
func Summarize(tokens []string) (Summary, error) {
	if len(tokens) == 0 {
		return Summary{}, ErrEmptyTokens
	}
	total := 0
	for _, tok := range tokens {
		total += TokenLength(tok)
	}
	// Round half away from zero before formatting; %.2f alone rounds ties to even.
	mean := math.Round(float64(total)/float64(len(tokens))*100) / 100
	return Summary{
		Mean:       mean,
		Formatted:  fmt.Sprintf("%.2f", mean),
		TokenCount: len(tokens),
	}, nil
}

// TokenLength counts Unicode code points.
func TokenLength(tok string) int {
	return utf8.RuneCountInString(tok)
}

type globalSampler struct{}

func (globalSampler) Float64() float64 {
	return rand.Float64()
}

// LockedRand is a seeded Sampler safe for concurrent use.
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedRand returns a deterministic Sampler seeded with seed.
func NewLockedRand(seed uint64) *LockedRand {
	return &LockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
