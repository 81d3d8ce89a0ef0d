package main

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/tokplot/internal/history"
	"github.com/samcharles93/tokplot/internal/tokenizer"
)

var (
	configFile    string
	logLevel      string
	logFormat     string
	debug         bool
	tokenizerName string

	// cfg is the config file loaded by the root command's Before hook.
	cfg Config
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Usage:       "path to config.yaml (default: $" + envConfigPath + " or the user config dir)",
		Destination: &configFile,
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (auto, pretty, json, text)",
			Value:       "auto",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func tokenizerFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "tokenizer",
		Usage:       "tokenizer (" + strings.Join(tokenizer.Names(), ", ") + "; tiktoken accepts :<encoding>)",
		Value:       tokenizer.NameWord,
		Destination: &tokenizerName,
	}
}

func historySizeFlag(dst *int64) cli.Flag {
	return &cli.Int64Flag{
		Name:        "history-size",
		Usage:       "number of recent sentences to keep",
		Value:       history.DefaultCapacity,
		Destination: dst,
	}
}
