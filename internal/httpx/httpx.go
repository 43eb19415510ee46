package httpx

import (
	"net"
	"net/http"
	"time"
)

// Client is the process-wide HTTP client shared by all provider adapters.
// It carries no request state; per-call budgets come from the request context.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// New builds a Client with pooled connections. timeout is an outer safety
// net; adapters enforce their own per-call budget through the context.
func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		UserAgent: "quotepulse/1.0",
	}
}

// Do sets the User-Agent when the request has none and sends it.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return c.HTTP.Do(req)
}

// Close releases pooled idle connections on shutdown.
func (c *Client) Close() {
	c.HTTP.CloseIdleConnections()
}
