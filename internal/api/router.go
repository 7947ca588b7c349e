package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/Harshitk-cp/mindshift/internal/api/handlers"
	mw "github.com/Harshitk-cp/mindshift/internal/api/middleware"
	"github.com/Harshitk-cp/mindshift/internal/buildconfig"
	"github.com/Harshitk-cp/mindshift/internal/config"
	"github.com/Harshitk-cp/mindshift/internal/domain"
	"github.com/Harshitk-cp/mindshift/internal/llm"
	"github.com/Harshitk-cp/mindshift/internal/service"
	"github.com/Harshitk-cp/mindshift/internal/surface"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router   *chi.Mux
	Sessions *surface.Manager
	Limiter  *mw.RateLimiter

	svc       *service.TransformService
	metrics   *mw.MetricsCollector
	provider  string
	startTime time.Time
}

// NewTransformService builds the transformation client from configuration.
// A missing API key is not fatal: the service runs in degraded mode.
func NewTransformService(ctx context.Context, logger *zap.Logger) (*service.TransformService, error) {
	provider := config.LLMProvider()
	model := config.LLMModel()
	if model == "" {
		model = llm.DefaultModel(provider)
	}

	var llmClient domain.LLMClient
	client, err := llm.NewClient(ctx, provider, config.LLMAPIKey(), llm.Options{BaseURL: config.LLMBaseURL()})
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		logger.Warn("LLM API key not configured, serving example results", zap.String("provider", provider), zap.Error(err))
	case err != nil:
		return nil, fmt.Errorf("init %s client: %w", provider, err)
	default:
		llmClient = client
		logger.Info("LLM client initialized", zap.String("provider", provider), zap.String("model", model))
	}

	svc := service.NewTransformService(llmClient, model, logger)
	svc.SetMockDelay(config.MockDelay())
	return svc, nil
}

func NewApp(svc *service.TransformService, logger *zap.Logger) (*App, error) {
	placeholders, err := surface.LoadPlaceholders()
	if err != nil {
		return nil, fmt.Errorf("load placeholders: %w", err)
	}

	sessions := surface.NewManager(svc, placeholders, logger)
	sessions.SetTTL(config.SessionTTL())

	provider := config.LLMProvider()
	if svc.Degraded() {
		provider = "example data"
	}

	r := chi.NewRouter()
	app := &App{
		Router:    r,
		Sessions:  sessions,
		Limiter:   mw.NewRateLimiter(config.RateLimitRPS(), config.RateLimitBurst()),
		svc:       svc,
		metrics:   mw.NewMetricsCollector(),
		provider:  provider,
		startTime: time.Now(),
	}

	pageHandler := handlers.NewPageHandler(sessions, provider, logger)
	transformHandler := handlers.NewTransformHandler(svc)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.metrics.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(app.Limiter.Middleware)

	r.Get("/health", app.healthHandler())
	r.Get("/metrics", app.metricsHandler())

	// Browser surface
	r.Get("/", pageHandler.Index)
	r.Post("/submit", pageHandler.Submit)
	r.Get("/session", pageHandler.Session)

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.BearerToken(config.APIToken()))
		r.Post("/transform", transformHandler.Transform)
	})

	return app, nil
}

// Start launches the session janitor and the rate limiter cleanup.
func (app *App) Start() {
	app.Sessions.Start()
	app.Limiter.Start(0)
}

// Close stops background work and waits for in-flight transformations.
func (app *App) Close() {
	app.Limiter.Stop()
	app.Sessions.Stop()
}

func (app *App) mode() string {
	if app.svc.Degraded() {
		return "degraded"
	}
	return "live"
}

func (app *App) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":   "ok",
			"mode":     app.mode(),
			"provider": app.provider,
			"version":  buildconfig.Version(),
		})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.metrics.Requests(),
			"error_count":    app.metrics.Errors(),
			"sessions":       app.Sessions.Len(),
			"transforms":     app.svc.Stats(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

var (
	_ domain.LLMClient     = (*llm.OpenAIClient)(nil)
	_ domain.LLMClient     = (*llm.GeminiClient)(nil)
	_ domain.LLMClient     = (*llm.MockClient)(nil)
	_ surface.Transformer  = (*service.TransformService)(nil)
	_ handlers.Transformer = (*service.TransformService)(nil)
)
