package api

import "github.com/samcharles93/tokplot/internal/analysis"

// TokenizeRequest is the JSON body accepted by the tokenize endpoints.
type TokenizeRequest struct {
	Sentence *string `json:"sentence"`
}

// TokenizationResult is everything derived from one accepted submission.
type TokenizationResult struct {
	ID        string           `json:"id"`
	Object    string           `json:"object"`
	CreatedAt int64            `json:"created_at"`
	Sentence  string           `json:"sentence"`
	Tokens    []string         `json:"tokens"`
	Points    []analysis.Point `json:"points"`
	Summary   analysis.Summary `json:"summary"`
}

type HistoryResponse struct {
	Object    string   `json:"object"`
	Capacity  int      `json:"capacity"`
	Sentences []string `json:"sentences"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
