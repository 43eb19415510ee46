package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/config"
	"github.com/guttosm/quotepulse/internal/api"
	"github.com/guttosm/quotepulse/internal/httpx"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/provider"
	"github.com/guttosm/quotepulse/internal/resolver"
	"github.com/guttosm/quotepulse/internal/service"
)

// Components is the wired quote pipeline shared by every run mode.
type Components struct {
	Resolver *resolver.Resolver
	Service  service.QuoteService
	Cleanup  func()
}

// BuildComponents creates the shared HTTP client, the provider chains, the
// resolver and the quote service from cfg.
func BuildComponents(cfg config.Config) (*Components, error) {
	timeout := cfg.Providers.Timeout
	if timeout <= 0 {
		timeout = provider.CallTimeout
	}
	// The client timeout is a backstop above the per-call context budget.
	client := httpx.New(timeout + 5*time.Second)

	quotes, trades, err := InitProviders(cfg, client)
	if err != nil {
		client.Close()
		return nil, err
	}

	names := make([]string, 0, len(quotes))
	for _, q := range quotes {
		names = append(names, q.Name())
	}
	logger.L().Info().Strs("quote_chain", names).Int("trade_sources", len(trades)).Msg("providers configured")

	r := resolver.New(quotes, trades)
	return &Components{
		Resolver: r,
		Service:  service.NewQuoteService(r),
		Cleanup:  client.Close,
	}, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the quote pipeline with BuildComponents().
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function releasing pooled connections.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	comps, err := BuildComponents(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize providers: %w", err)
	}

	handler := api.NewHandler(comps.Service)
	router := api.NewRouter(handler, api.RouterOptions{
		RateLimit:      cfg.Server.RateLimitPerMinute,
		RateWindow:     time.Minute,
		RequestTimeout: RequestBudget(cfg),
	})

	api.NewHealthHandler(func() error {
		if !comps.Resolver.Ready() {
			return ErrNoProviders
		}
		return nil
	}).Register(router)

	return router, comps.Cleanup, nil
}
