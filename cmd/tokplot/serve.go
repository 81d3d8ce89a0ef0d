package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/tokplot/internal/analysis"
	"github.com/samcharles93/tokplot/internal/api"
	"github.com/samcharles93/tokplot/internal/history"
	"github.com/samcharles93/tokplot/internal/logger"
	"github.com/samcharles93/tokplot/internal/metrics"
	"github.com/samcharles93/tokplot/internal/tokenizer"
)

type serveOptions struct {
	addr        string
	readTimeout time.Duration
	historySize int64
	rateLimit   float64
	rateBurst   int64

	// seed makes plot depths reproducible when seeded is true.
	seed   int64
	seeded bool
}

func serveCmd() *cli.Command {
	var opts serveOptions

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the tokenize/plot web UI and JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:3001",
				Destination: &opts.addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read header timeout",
				Value:       30 * time.Second,
				Destination: &opts.readTimeout,
			},
			historySizeFlag(&opts.historySize),
			tokenizerFlag(),
			&cli.Float64Flag{
				Name:        "rate-limit",
				Usage:       "submissions per second per client IP (0 disables)",
				Destination: &opts.rateLimit,
			},
			&cli.Int64Flag{
				Name:        "rate-burst",
				Usage:       "submission burst per client IP",
				Value:       5,
				Destination: &opts.rateBurst,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "seed the plot's random depth axis for reproducible output",
				Destination: &opts.seed,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyServeConfig(cmd.IsSet, cfg, &opts)
			if cmd.IsSet("seed") {
				opts.seeded = true
			}

			e, limiter, err := buildServer(opts, log)
			if err != nil {
				return err
			}
			if limiter != nil {
				go limiter.Run(ctx)
			}

			log.Info("starting server",
				"address", opts.addr,
				"tokenizer", tokenizerName,
				"history_size", opts.historySize,
				"rate_limit", opts.rateLimit,
			)
			sc := echo.StartConfig{
				Address: opts.addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = opts.readTimeout
					return nil
				},
			}
			if err := sc.Start(ctx, e); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			log.Info("server stopped")
			return nil
		},
	}
}

// buildServer is the composition root: it owns the history and wires the
// tokenizer, metrics and rate limiter into the HTTP server.
func buildServer(opts serveOptions, log logger.Logger) (*echo.Echo, *api.RateLimiter, error) {
	if opts.historySize < 1 {
		return nil, nil, fmt.Errorf("history size must be at least 1, got %d", opts.historySize)
	}
	tok, err := tokenizer.New(tokenizerName)
	if err != nil {
		return nil, nil, err
	}

	var sampler analysis.Sampler
	if opts.seeded {
		sampler = analysis.NewLockedRand(uint64(opts.seed))
	}

	hist := history.New(int(opts.historySize))
	limiter := api.NewRateLimiter(opts.rateLimit, int(opts.rateBurst))
	server, err := api.NewServer(api.ServerConfig{
		Service: api.NewTokenizeService(tok, hist, sampler),
		Metrics: metrics.NewCollector(),
		Limiter: limiter,
		Logger:  log,
	})
	if err != nil {
		return nil, nil, err
	}

	e := echo.New()
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	server.Register(e)
	return e, limiter, nil
}
