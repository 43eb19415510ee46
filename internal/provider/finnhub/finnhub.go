// Package finnhub adapts the Finnhub quote endpoint. Finnhub serves the
// quote role only: it has no extended-hours trade feed.
package finnhub

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/quotepulse/internal/provider"
)

// DefaultBaseURL is the Finnhub v1 API root.
const DefaultBaseURL = "https://finnhub.io/api/v1"

const name = "finnhub"

// Finnhub uses one-letter keys: c current, pc previous close, d change,
// dp percent change, t unix seconds.
var quoteFields = provider.QuoteFields{
	Price:         []string{"c"},
	PreviousClose: []string{"pc"},
	Change:        []string{"d"},
	ChangePercent: []string{"dp"},
	Timestamp:     []string{"t"},
}

// Client talks to Finnhub. It implements provider.QuoteSource.
type Client struct {
	baseURL    string
	token      string
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

// New creates a Finnhub client authenticated with token.
func New(token string, options ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: http.DefaultClient,
		timeout:    provider.CallTimeout,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Client) Name() string { return name }

// FetchQuote returns the live quote. The "c" field is the latest price the
// upstream knows, which is the last official close outside regular hours.
// Unknown symbols come back as 200 with every field zero or null; the zero
// price turns that into ErrNoUsableData.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (provider.Quote, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	if c.token != "" {
		q.Set("token", c.token)
	}

	body, err := provider.GetJSON(ctx, c.httpClient, name, c.baseURL+"/quote?"+q.Encode(), c.timeout)
	if err != nil {
		return provider.Quote{}, err
	}
	if msg := body.Get("error"); msg.Exists() {
		return provider.Quote{}, provider.Unavailable(name, "%s: %s", symbol, msg.String())
	}
	return provider.NormalizeQuote(name, symbol, body, quoteFields)
}
