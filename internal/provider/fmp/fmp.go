// Package fmp adapts the Financial Modeling Prep quote and after-market
// trade endpoints.
package fmp

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/guttosm/quotepulse/internal/provider"
)

// DefaultBaseURL is the FMP "stable" API root.
const DefaultBaseURL = "https://financialmodelingprep.com/stable"

const name = "fmp"

// quoteFields covers both the current and the legacy FMP schema; the
// percentage field was renamed between API generations.
var quoteFields = provider.QuoteFields{
	Symbol:        []string{"symbol"},
	Price:         []string{"price"},
	PreviousClose: []string{"previousClose"},
	Change:        []string{"change", "changes"},
	ChangePercent: []string{"changePercentage", "changesPercentage", "changeP"},
	Timestamp:     []string{"timestamp"},
}

var tradeFields = provider.TradeFields{
	Symbol:    []string{"symbol"},
	Price:     []string{"price"},
	Timestamp: []string{"timestamp"},
}

// Client talks to FMP. It implements provider.QuoteSource and provider.TradeSource.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient provider.HTTPClient
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client used for every call.
func WithHTTPClient(httpClient provider.HTTPClient) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout overrides the per-call budget.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates an FMP client authenticated with apiKey.
func New(apiKey string, options ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
		timeout:    provider.CallTimeout,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Client) Name() string { return name }

// FetchQuote returns the regular-session quote. Outside regular hours the
// price field carries the last official close.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (provider.Quote, error) {
	body, err := provider.GetJSON(ctx, c.httpClient, name, c.endpoint("quote", symbol), c.timeout)
	if err != nil {
		return provider.Quote{}, err
	}
	records, err := unwrap(body, symbol)
	if err != nil {
		return provider.Quote{}, err
	}
	return provider.NormalizeQuote(name, symbol, records[0], quoteFields)
}

// FetchExtendedTrade returns the freshest pre-/post-market trade.
func (c *Client) FetchExtendedTrade(ctx context.Context, symbol string) (provider.ExtendedTrade, error) {
	body, err := provider.GetJSON(ctx, c.httpClient, name, c.endpoint("aftermarket-trade", symbol), c.timeout)
	if err != nil {
		return provider.ExtendedTrade{}, err
	}
	records, err := unwrap(body, symbol)
	if err != nil {
		return provider.ExtendedTrade{}, err
	}
	return provider.Freshest(name, symbol, records, tradeFields)
}

func (c *Client) endpoint(path, symbol string) string {
	q := url.Values{}
	q.Set("symbol", symbol)
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	return c.baseURL + "/" + path + "?" + q.Encode()
}

// unwrap unwraps the array FMP answers with. FMP reports errors in a 200
// body as {"Error Message": "..."}; a bare object is treated as one record.
func unwrap(body gjson.Result, symbol string) ([]gjson.Result, error) {
	if msg := body.Get("Error Message"); msg.Exists() {
		return nil, provider.Unavailable(name, "%s: %s", symbol, msg.String())
	}
	var out []gjson.Result
	switch {
	case body.IsArray():
		out = body.Array()
	case body.IsObject():
		out = []gjson.Result{body}
	}
	if len(out) == 0 {
		return nil, provider.NoData(name, "empty result for %s", symbol)
	}
	return out, nil
}
