package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v5"
)

// MaxBodyBytes caps tokenize request bodies.
const MaxBodyBytes = 64 << 10

// readSentence extracts the sentence field from a form-urlencoded or JSON
// body. An absent field and an empty string both yield ErrMissingInput.
func readSentence(c *echo.Context) (string, error) {
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, MaxBodyBytes)

	if isJSON(req.Header.Get(echo.HeaderContentType)) {
		payload, err := decodeJSON[TokenizeRequest](req.Body)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", newMissingInput("sentence")
			}
			return "", bodyError(err)
		}
		if payload.Sentence == nil || *payload.Sentence == "" {
			return "", newMissingInput("sentence")
		}
		return *payload.Sentence, nil
	}

	if err := req.ParseForm(); err != nil {
		return "", bodyError(err)
	}
	sentence := req.PostForm.Get("sentence")
	if sentence == "" {
		return "", newMissingInput("sentence")
	}
	return sentence, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return requestError{
			kind: ErrInputTooLarge,
			msg:  fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		}
	}
	return newInvalidRequest(fmt.Sprintf("malformed request body: %v", err))
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), echo.MIMEApplicationJSON)
}

// errTrailingData reports a body with more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON value")

// decodeJSON decodes exactly one JSON value from r.
func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	dec := json.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return out, err
	}
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case err == io.EOF:
		return out, nil
	case err == nil:
		return out, errTrailingData
	default:
		return out, fmt.Errorf("%w: %w", errTrailingData, err)
	}
}

func writeJSON(c *echo.Context, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.JSONBlob(status, b)
}

func wrapHandler(h http.Handler) echo.HandlerFunc {
	return func(c *echo.Context) error {
		h.ServeHTTP(c.Response(), c.Request())
		return nil
	}
}
