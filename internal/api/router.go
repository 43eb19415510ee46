package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/quotepulse/internal/middleware"
	"github.com/guttosm/quotepulse/internal/provider"
)

// requestMargin covers middleware and handler work on top of provider calls.
const requestMargin = 5 * time.Second

// RequestTimeout is the default request deadline: a primary and one
// fallback provider, each with its full per-call budget.
const RequestTimeout = 2*provider.CallTimeout + requestMargin

// RequestBudget returns the request deadline that lets each of n providers
// called one after another use its whole per-call budget.
func RequestBudget(n int, perCall time.Duration) time.Duration {
	if n < 1 {
		n = 1
	}
	if perCall <= 0 {
		perCall = provider.CallTimeout
	}
	return time.Duration(n)*perCall + requestMargin
}

// RouterOptions tunes the router middlewares. Zero values select defaults.
type RouterOptions struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Bounds each request with opts.RequestTimeout (default RequestTimeout).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimit, opts.RateWindow),
	)

	// ─── Timeout ──────────────────────────────────
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = RequestTimeout
	}
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/quote", handler.GetQuote)
	}

	return router
}
