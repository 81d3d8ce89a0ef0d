package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/tokplot/internal/logger"
	"github.com/samcharles93/tokplot/internal/metrics"
	"github.com/samcharles93/tokplot/internal/version"
	"github.com/samcharles93/tokplot/internal/webui"
)

// ServerConfig collects the server's collaborators. Nil fields get defaults.
type ServerConfig struct {
	Service  *TokenizeService
	Renderer *webui.Renderer
	Metrics  *metrics.Collector
	Limiter  *RateLimiter
	Logger   logger.Logger
}

type Server struct {
	service  *TokenizeService
	renderer *webui.Renderer
	metrics  *metrics.Collector
	limiter  *RateLimiter
	log      logger.Logger
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Service == nil {
		cfg.Service = NewTokenizeService(nil, nil, nil)
	}
	if cfg.Renderer == nil {
		r, err := webui.NewRenderer()
		if err != nil {
			return nil, err
		}
		cfg.Renderer = r
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewCollector()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return &Server{
		service:  cfg.Service,
		renderer: cfg.Renderer,
		metrics:  cfg.Metrics,
		limiter:  cfg.Limiter,
		log:      cfg.Logger.With("component", "api"),
	}, nil
}

func (s *Server) Register(e *echo.Echo) {
	// HTML views
	e.GET("/", s.handleHome)
	e.POST("/tokenize", s.handleTokenizePage, s.limiter.middleware(s.writePageError))

	// JSON API
	e.POST("/api/tokenize", s.handleTokenizeAPI, s.limiter.middleware(s.writeAPIError))
	e.GET("/api/history", s.handleHistoryAPI)

	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", wrapHandler(s.metrics.Handler()))
	e.GET("/static/*", wrapHandler(http.StripPrefix("/static/", http.FileServerFS(webui.StaticFS()))))
}

func (s *Server) handleHome(c *echo.Context) error {
	body, err := s.renderer.RenderString(webui.PageHome, webui.HomeData{
		Sentences: s.service.History(),
	})
	if err != nil {
		return s.writePageError(c, err)
	}
	return c.HTML(http.StatusOK, body)
}

func (s *Server) handleTokenizePage(c *echo.Context) error {
	res, err := s.submit(c)
	if err != nil {
		return s.writePageError(c, err)
	}
	body, err := s.renderer.RenderString(webui.PageResult, webui.ResultData{
		Sentence: res.Sentence,
		Tokens:   res.Tokens,
		Points:   res.Points,
		Summary:  res.Summary,
	})
	if err != nil {
		return s.writePageError(c, err)
	}
	return c.HTML(http.StatusOK, body)
}

func (s *Server) handleTokenizeAPI(c *echo.Context) error {
	res, err := s.submit(c)
	if err != nil {
		return s.writeAPIError(c, err)
	}
	return writeJSON(c, http.StatusOK, res)
}

func (s *Server) handleHistoryAPI(c *echo.Context) error {
	return writeJSON(c, http.StatusOK, HistoryResponse{
		Object:    "history",
		Capacity:  s.service.HistoryCapacity(),
		Sentences: s.service.History(),
	})
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version.String(),
	})
}

// submit runs one submission and records its outcome.
func (s *Server) submit(c *echo.Context) (*TokenizationResult, error) {
	start := time.Now()
	sentence, err := readSentence(c)
	if err != nil {
		return nil, err
	}
	res, err := s.service.Submit(c.Request().Context(), sentence)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordSubmission(metrics.OutcomeOK, len(res.Tokens))
	s.metrics.SetHistorySize(s.service.HistoryLen())
	s.log.Debug("sentence tokenized",
		"id", res.ID,
		"tokens", len(res.Tokens),
		"prediction", res.Summary.Formatted,
		"elapsed", time.Since(start),
	)
	return res, nil
}

func (s *Server) writePageError(c *echo.Context, err error) error {
	f := s.observeFailure(c, err)
	body, rerr := s.renderer.RenderString(webui.PageError, webui.ErrorData{
		Title:   f.title,
		Message: f.message,
	})
	if rerr != nil {
		return errors.Join(err, rerr)
	}
	return c.HTML(f.status, body)
}

func (s *Server) writeAPIError(c *echo.Context, err error) error {
	f := s.observeFailure(c, err)
	return writeJSON(c, f.status, ErrorResponse{Error: ErrorBody{
		Message: f.message,
		Type:    f.errType,
	}})
}

func (s *Server) observeFailure(c *echo.Context, err error) failure {
	f := classify(err)
	if f.outcome != "" {
		s.metrics.RecordSubmission(f.outcome, 0)
	}
	args := []any{"path", c.Request().URL.Path, "status", f.status, "error", err}
	if f.status >= http.StatusInternalServerError {
		s.log.Error("request failed", args...)
	} else {
		s.log.Warn("request rejected", args...)
	}
	return f
}
