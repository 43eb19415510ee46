package app

import (
	"errors"
	"time"

	"github.com/guttosm/quotepulse/config"
	"github.com/guttosm/quotepulse/internal/api"
	"github.com/guttosm/quotepulse/internal/provider"
	"github.com/guttosm/quotepulse/internal/provider/finnhub"
	"github.com/guttosm/quotepulse/internal/provider/fmp"
)

// ErrNoProviders is returned when no upstream has an API key configured.
var ErrNoProviders = errors.New("no quote provider configured")

// InitProviders builds the provider chains from cfg. FMP is primary for
// quotes and the only extended-trade source; Finnhub backs up the quote
// role. Providers without a key are skipped.
//
// Returns:
//   - quotes: quote chain, primary first.
//   - trades: extended-trade chain.
//   - error: ErrNoProviders when the quote chain is empty.
func InitProviders(cfg config.Config, client provider.HTTPClient) ([]provider.QuoteSource, []provider.TradeSource, error) {
	var (
		quotes []provider.QuoteSource
		trades []provider.TradeSource
	)
	p := cfg.Providers

	if p.FMPAPIKey != "" {
		c := fmp.New(p.FMPAPIKey,
			fmp.WithBaseURL(p.FMPBaseURL),
			fmp.WithHTTPClient(client),
			fmp.WithTimeout(p.Timeout),
		)
		quotes = append(quotes, c)
		trades = append(trades, c)
	}
	if p.FinnhubAPIKey != "" {
		quotes = append(quotes, finnhub.New(p.FinnhubAPIKey,
			finnhub.WithBaseURL(p.FinnhubBaseURL),
			finnhub.WithHTTPClient(client),
			finnhub.WithTimeout(p.Timeout),
		))
	}

	if len(quotes) == 0 {
		return nil, nil, ErrNoProviders
	}
	return quotes, trades, nil
}

// RequestBudget is the API request deadline for cfg. The quote chain is the
// longest sequential path (trades run beside it), so every configured quote
// provider gets its full per-call timeout.
func RequestBudget(cfg config.Config) time.Duration {
	n := 0
	if cfg.Providers.FMPAPIKey != "" {
		n++
	}
	if cfg.Providers.FinnhubAPIKey != "" {
		n++
	}
	return api.RequestBudget(n, cfg.Providers.Timeout)
}
