package provider

import (
	"errors"
	"fmt"
)

// Soft failures. Adapters wrap one of these so callers can tell "the
// upstream failed" from "the upstream had nothing", although the resolver
// treats both the same way.
var (
	// ErrProviderUnavailable covers transport errors, timeouts, non-2xx
	// statuses and malformed bodies.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrNoUsableData covers well-formed responses with no records or a
	// missing, null or zero price.
	ErrNoUsableData = errors.New("no usable data")
)

// Unavailable builds an ErrProviderUnavailable failure for source.
func Unavailable(source, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", source, ErrProviderUnavailable, fmt.Sprintf(format, args...))
}

// NoData builds an ErrNoUsableData failure for source.
func NoData(source, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", source, ErrNoUsableData, fmt.Sprintf(format, args...))
}

// IsSoft reports whether err is one of the recoverable adapter failures.
func IsSoft(err error) bool {
	return errors.Is(err, ErrProviderUnavailable) || errors.Is(err, ErrNoUsableData)
}
