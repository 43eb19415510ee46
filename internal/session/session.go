package session

import (
	"fmt"
	"time"
	_ "time/tzdata" // embedded zoneinfo for minimal images
)

// Session is the trading-day phase an instrument is evaluated in.
type Session int

const (
	PreMarket Session = iota
	Open
	AfterMarket
	ClosedNight
)

// exchangeZone is the fixed timezone of the listing exchange.
const exchangeZone = "America/New_York"

// Daily boundaries, as offsets from exchange-local midnight.
const (
	preMarketStart = 4 * time.Hour
	regularStart   = 9*time.Hour + 30*time.Minute
	regularEnd     = 16 * time.Hour
	afterMarketEnd = 20 * time.Hour
)

var exchange = mustLoadLocation(exchangeZone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("session: load location %q: %v", name, err))
	}
	return loc
}

// Exchange returns the exchange timezone every classification is made in.
func Exchange() *time.Location {
	return exchange
}

// Classify maps an instant to the session it falls in, using exchange-local
// wall-clock time with fixed daily boundaries and no holiday calendar.
//
// Rules:
//   - Saturday and Sunday: ClosedNight, regardless of time of day.
//   - 04:00 <= t < 09:30: PreMarket.
//   - 09:30 <= t <= 16:00: Open.
//   - 16:00 < t <= 20:00: AfterMarket.
//   - otherwise: ClosedNight.
func Classify(now time.Time) Session {
	t := now.In(exchange)

	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return ClosedNight
	}

	tod := sinceMidnight(t)
	switch {
	case tod < preMarketStart:
		return ClosedNight
	case tod < regularStart:
		return PreMarket
	case tod <= regularEnd:
		return Open
	case tod <= afterMarketEnd:
		return AfterMarket
	default:
		return ClosedNight
	}
}

// sinceMidnight returns the wall-clock offset of t from its own midnight.
// Built from clock fields so DST transition days keep the nominal boundaries.
func sinceMidnight(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

// Extended reports whether the session is served by the extended-hours trade feed.
func (s Session) Extended() bool {
	return s == PreMarket || s == AfterMarket
}

func (s Session) String() string {
	switch s {
	case PreMarket:
		return "pre_market"
	case Open:
		return "open"
	case AfterMarket:
		return "aftermarket"
	case ClosedNight:
		return "closed_night"
	default:
		return fmt.Sprintf("session(%d)", int(s))
	}
}

// MarshalText encodes the session by its name so JSON payloads stay readable.
func (s Session) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (s *Session) UnmarshalText(b []byte) error {
	switch string(b) {
	case "pre_market":
		*s = PreMarket
	case "open":
		*s = Open
	case "aftermarket":
		*s = AfterMarket
	case "closed_night":
		*s = ClosedNight
	default:
		return fmt.Errorf("unknown session %q", string(b))
	}
	return nil
}
