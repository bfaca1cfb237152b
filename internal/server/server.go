// Package server serves the signup form over HTTP with gin. Every visitor
// gets an own form state container, found through a session cookie.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/components/choices"
	"github.com/goliatone/go-signupform/internal/metrics"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/openapi"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/renderers/jsonview"
	"github.com/goliatone/go-signupform/pkg/renderers/tui"
	"github.com/goliatone/go-signupform/pkg/renderers/vanilla"
	"github.com/goliatone/go-signupform/pkg/state"
)

const (
	FormPath    = "/signup"
	ResetPath   = "/signup/reset"
	HealthPath  = "/healthz"
	OpenAPIPath = "/openapi.json"
	MetricsPath = "/metrics"

	fallbackRenderer = "vanilla"
	shutdownTimeout  = 5 * time.Second
)

// Server owns the gin engine and the per-visitor form instances.
type Server struct {
	form        model.Form
	views       *orchestrator.Orchestrator
	sessions    *sessionStore
	metrics     *metrics.Metrics
	logger      *zap.Logger
	cookieName  string
	csrfField   string
	secure      bool
	openapiJSON []byte
	engine      *gin.Engine
}

// New builds a server for form.
func New(form model.Form, options ...Option) (*Server, error) {
	cfg := defaultConfig()
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	renderers := cfg.renderers
	if len(renderers) == 0 {
		html, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		text, err := tui.New()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		renderers = []render.Renderer{html, jsonview.New(), text}
	}
	registry, err := render.NewRegistry(renderers...)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if _, err := registry.Get(fallbackRenderer); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	views := orchestrator.New(append([]orchestrator.Option{
		orchestrator.WithForm(form),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(fallbackRenderer),
	}, cfg.viewOptions...)...)
	if _, err := views.Form(); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	doc, err := openapi.Document(form, openapi.WithPath(FormPath))
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	docJSON, err := openapi.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	s := &Server{
		form:        form,
		views:       views,
		metrics:     cfg.metrics,
		logger:      cfg.logger,
		cookieName:  cfg.cookieName,
		csrfField:   cfg.csrfField,
		secure:      cfg.secureCookie,
		openapiJSON: docJSON,
	}

	sessions, err := newSessionStore(cfg.sessionLimit, s.newContainer, func(id string) {
		s.logger.Debug("form session evicted", zap.String("session", id))
	})
	if err != nil {
		return nil, err
	}
	s.sessions = sessions

	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Handler exposes the gin engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx ends, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("signup server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info("signup server stopped")
	return nil
}

func (s *Server) routes() error {
	engine := gin.New()
	engine.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(s.logger, true))

	engine.GET(FormPath, s.showForm)
	engine.POST(FormPath, s.submitForm)
	engine.POST(ResetPath, s.resetForm)
	engine.GET(HealthPath, s.health)
	engine.GET(OpenAPIPath, s.openAPI)
	if s.metrics != nil {
		engine.GET(MetricsPath, gin.WrapH(s.metrics.Handler()))
	}

	mux := http.NewServeMux()
	pattern, err := choices.New(
		choices.WithLists(choices.ListsFromForm(s.form)),
		choices.WithLogger(s.logger.Named("choices")),
	).RegisterRoutes(mux, "")
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	engine.Any(pattern+"*list", gin.WrapH(mux))

	s.engine = engine
	return nil
}

func (s *Server) newContainer(id string) *state.Container {
	options := []state.Option{
		state.WithID(id),
		state.WithLogger(s.logger.Sugar()),
	}
	if s.metrics != nil {
		options = append(options, state.WithObserver(s.metrics.Observer()))
	}
	return state.New(options...)
}
