package provider

import (
	"context"
	"net/http"
	"time"
)

// CallTimeout is the budget of a single upstream call. There is no retry:
// running out of it is a soft failure like any other.
const CallTimeout = 10 * time.Second

// Quote is the normalized snapshot from a regular quote endpoint.
// Change and ChangePercent are always populated, derived from
// PreviousClose when the upstream omits them; ChangeReported and
// PercentReported tell which of the two the upstream actually sent.
type Quote struct {
	Symbol          string
	Price           float64
	PreviousClose   float64
	Change          float64
	ChangePercent   float64
	ChangeReported  bool
	PercentReported bool
	Timestamp       time.Time // zero when the upstream does not report one
	Source          string
}

// ExtendedTrade is a single pre-/post-market execution.
type ExtendedTrade struct {
	Symbol    string
	Price     float64
	Timestamp time.Time
	Source    string
}

// QuoteSource fetches regular-session quotes from one upstream.
type QuoteSource interface {
	Name() string
	FetchQuote(ctx context.Context, symbol string) (Quote, error)
}

// TradeSource fetches the freshest extended-hours trade from one upstream.
type TradeSource interface {
	Name() string
	FetchExtendedTrade(ctx context.Context, symbol string) (ExtendedTrade, error)
}

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=provider_test -destination=mock_http_client_test.go . HTTPClient
//go:generate mockgen -package=resolver -destination=../resolver/mock_sources_test.go . QuoteSource,TradeSource
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
