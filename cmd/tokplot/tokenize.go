package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/tokplot/internal/analysis"
	"github.com/samcharles93/tokplot/internal/tokenizer"
)

func tokenizeCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "tokenize",
		Usage:     "Tokenize a sentence and print its tokens and predicted token length",
		ArgsUsage: "[sentence...]",
		Flags: []cli.Flag{
			tokenizerFlag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the result as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cfg.Tokenizer != "" && !cmd.IsSet("tokenizer") {
				tokenizerName = cfg.Tokenizer
			}
			tok, err := tokenizer.New(tokenizerName)
			if err != nil {
				return err
			}

			sentence := strings.Join(cmd.Args().Slice(), " ")
			if sentence == "" {
				sentence, err = readSentence(cmd.Root().Reader)
				if err != nil {
					return err
				}
			}
			return runTokenize(cmd.Root().Writer, tok, sentence, asJSON)
		},
	}
}

func runTokenize(w io.Writer, tok tokenizer.Tokenizer, sentence string, asJSON bool) error {
	if sentence == "" {
		return fmt.Errorf("tokenize: a sentence is required")
	}
	tokens, err := tok.Tokenize(sentence)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}
	res, err := analysis.Analyze(tokens, nil)
	if err != nil {
		return fmt.Errorf("tokenize %q: %w", sentence, err)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, _ = fmt.Fprintf(w, "tokens:     %s\n", strings.Join(res.Tokens, " | "))
	_, _ = fmt.Fprintf(w, "count:      %d\n", res.Summary.TokenCount)
	_, _ = fmt.Fprintf(w, "prediction: %s\n", res.Summary.Formatted)
	return nil
}

// readSentence reads the first line of r.
func readSentence(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
