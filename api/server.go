// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"context"
	"net/http"
	"time"

	"filepreview-app/api/middleware"
	"filepreview-app/core/interfaces"
	"filepreview-app/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle       = "File Preview API"
	apiVersion     = "1.0.0"
	apiDescription = "Drag-and-drop text file preview: validates a file and renders its first lines as escaped HTML"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	RateLimit      int           // requests per window
	RateWindow     time.Duration // rate limit window
	AllowedOrigins []string
	Flags          featureflags.Manager
	MaxBodyBytes   int64 // request body cap, 0 disables
}

// NewAPI creates an API with default CORS and no logging or rate limiting
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{
		Flags: featureflags.NewStaticManager(nil),
	})
}

// NewAPIWithMiddleware creates a new API with middleware configured.
// Request logging and rate limiting are switched by feature flags.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	if cfg.Flags == nil {
		cfg.Flags = featureflags.NewStaticManager(featureflags.Defaults)
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := chi.NewRouter()

	// CORS first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(withFlags(cfg.Flags))

	ctx := context.Background()
	if cfg.Logger != nil && cfg.Flags.IsEnabled(ctx, featureflags.RequestLogging) {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 && cfg.Flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	if cfg.MaxBodyBytes > 0 {
		router.Use(middleware.BodyLimitMiddleware(cfg.MaxBodyBytes))
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}

// withFlags makes the flag manager reachable from handler contexts
func withFlags(flags featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), flags)))
		})
	}
}
