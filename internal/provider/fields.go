package provider

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// QuoteFields lists, per canonical field, the upstream names tried in order.
// The first alias holding a usable value wins.
type QuoteFields struct {
	Symbol        []string
	Price         []string
	PreviousClose []string
	Change        []string
	ChangePercent []string
	Timestamp     []string
}

// TradeFields is the alias list for extended-trade records.
type TradeFields struct {
	Symbol    []string
	Price     []string
	Timestamp []string
}

// Unit thresholds for numeric epoch timestamps. Each unit's values for
// present-day dates sit between its threshold and the next.
const (
	msThreshold = 1e12
	usThreshold = 1e15
	nsThreshold = 1e18
)

// lookup returns the first alias of obj that holds a finite number.
func lookup(obj gjson.Result, aliases []string) (float64, bool) {
	for _, a := range aliases {
		if v, ok := number(obj.Get(a)); ok {
			return v, true
		}
	}
	return 0, false
}

func lookupString(obj gjson.Result, aliases []string) string {
	for _, a := range aliases {
		if r := obj.Get(a); r.Type == gjson.String && strings.TrimSpace(r.Str) != "" {
			return strings.TrimSpace(r.Str)
		}
	}
	return ""
}

func lookupTime(obj gjson.Result, aliases []string) time.Time {
	for _, a := range aliases {
		if ts := timestamp(obj.Get(a)); !ts.IsZero() {
			return ts
		}
	}
	return time.Time{}
}

// number accepts JSON numbers and numeric strings; null, booleans, NaN and
// infinities are absent values.
func number(r gjson.Result) (float64, bool) {
	var v float64
	switch r.Type {
	case gjson.Number:
		v = r.Num
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// timestamp decodes RFC 3339 strings and unix epochs in seconds,
// milliseconds, microseconds or nanoseconds.
func timestamp(r gjson.Result) time.Time {
	if r.Type == gjson.String {
		if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(r.Str)); err == nil {
			return ts.UTC()
		}
	}
	v, ok := number(r)
	if !ok || v <= 0 {
		return time.Time{}
	}
	switch {
	case v >= nsThreshold:
		return time.Unix(0, int64(v)).UTC()
	case v >= usThreshold:
		return time.UnixMicro(int64(v)).UTC()
	case v >= msThreshold:
		return time.UnixMilli(int64(v)).UTC()
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

// DeriveChange computes the session change against previousClose.
// A zero previousClose yields no change rather than a division by zero.
func DeriveChange(price, previousClose float64) (change, percent float64) {
	if previousClose == 0 {
		return 0, 0
	}
	change = price - previousClose
	return change, change / previousClose * 100
}

// NormalizeQuote maps one upstream quote object onto Quote.
//
// Behavior:
//   - price must be present, non-null and non-zero, else ErrNoUsableData.
//   - change and percent come from their aliases when present, and are
//     derived from previousClose otherwise (each independently).
func NormalizeQuote(source, symbol string, obj gjson.Result, f QuoteFields) (Quote, error) {
	if !obj.IsObject() {
		return Quote{}, Unavailable(source, "quote for %s is not an object", symbol)
	}

	price, ok := lookup(obj, f.Price)
	if !ok || price == 0 {
		return Quote{}, NoData(source, "no price for %s", symbol)
	}

	q := Quote{
		Symbol:    symbol,
		Price:     price,
		Timestamp: lookupTime(obj, f.Timestamp),
		Source:    source,
	}
	if s := lookupString(obj, f.Symbol); s != "" {
		q.Symbol = strings.ToUpper(s)
	}
	q.PreviousClose, _ = lookup(obj, f.PreviousClose)

	derivedChange, derivedPercent := DeriveChange(price, q.PreviousClose)
	if v, ok := lookup(obj, f.Change); ok {
		q.Change, q.ChangeReported = v, true
	} else {
		q.Change = derivedChange
	}
	if v, ok := lookup(obj, f.ChangePercent); ok {
		q.ChangePercent, q.PercentReported = v, true
	} else {
		q.ChangePercent = derivedPercent
	}
	return q, nil
}

// NormalizeTrades maps upstream trade records onto ExtendedTrade values,
// freshest first. Records without a timestamp sort last; equal timestamps
// keep their upstream order.
func NormalizeTrades(source, symbol string, records []gjson.Result, f TradeFields) []ExtendedTrade {
	out := make([]ExtendedTrade, 0, len(records))
	for _, rec := range records {
		if !rec.IsObject() {
			continue
		}
		tr := ExtendedTrade{
			Symbol:    symbol,
			Timestamp: lookupTime(rec, f.Timestamp),
			Source:    source,
		}
		tr.Price, _ = lookup(rec, f.Price)
		if s := lookupString(rec, f.Symbol); s != "" {
			tr.Symbol = strings.ToUpper(s)
		}
		out = append(out, tr)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Freshest picks the authoritative trade: the first of NormalizeTrades.
// The freshest record decides; an unusable price there is no data, older
// records are not consulted.
func Freshest(source, symbol string, records []gjson.Result, f TradeFields) (ExtendedTrade, error) {
	trades := NormalizeTrades(source, symbol, records, f)
	if len(trades) == 0 {
		return ExtendedTrade{}, NoData(source, "no extended trades for %s", symbol)
	}
	tr := trades[0]
	if tr.Price == 0 {
		return ExtendedTrade{}, NoData(source, "freshest extended trade for %s has no price", symbol)
	}
	return tr, nil
}
