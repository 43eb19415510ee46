package provider

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 4 << 20

// GetJSON issues a GET bounded by timeout and returns the parsed body.
//
// Every failure is reported as ErrProviderUnavailable:
//   - request build or transport error, including the timeout.
//   - non-2xx status code.
//   - a body that is not valid JSON.
func GetJSON(ctx context.Context, client HTTPClient, source, endpoint string, timeout time.Duration) (gjson.Result, error) {
	if timeout <= 0 {
		timeout = CallTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return gjson.Result{}, Unavailable(source, "build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return gjson.Result{}, Unavailable(source, "timeout after %s", timeout)
		}
		return gjson.Result{}, Unavailable(source, "request: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, Unavailable(source, "status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return gjson.Result{}, Unavailable(source, "read body: %v", err)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, Unavailable(source, "malformed body")
	}
	return gjson.ParseBytes(body), nil
}
