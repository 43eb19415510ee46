// Package resolver turns a symbol and a point in time into the one price a
// caller should display, choosing per session between the regular quote,
// the freshest extended-hours trade and the last official close.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/provider"
	"github.com/guttosm/quotepulse/internal/session"
)

// noiseThreshold is the smallest absolute change reported as a move.
const noiseThreshold = 0.001

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("quote not found")

// NotFoundError reports that no provider produced a usable price.
type NotFoundError struct {
	Symbol string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no price available for %q", e.Symbol)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Resolver holds the ordered provider chains. The first entry of each chain
// is the primary provider. A Resolver keeps no per-request state and is safe
// for concurrent use.
type Resolver struct {
	quotes []provider.QuoteSource
	trades []provider.TradeSource
}

// New builds a Resolver. quotes feeds the regular quote and the base close,
// trades feeds extended-hours trades.
func New(quotes []provider.QuoteSource, trades []provider.TradeSource) *Resolver {
	return &Resolver{quotes: quotes, trades: trades}
}

// Ready reports whether at least one quote provider is configured.
func (r *Resolver) Ready() bool { return len(r.quotes) > 0 }

// NormalizeSymbol trims and upper-cases a user supplied symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// baseClose is the result of the quote chain. rank is the chain position of
// the provider that answered.
type baseClose struct {
	quote provider.Quote
	rank  int
	ok    bool
}

// Resolve classifies now, queries the providers the session needs and
// merges their answers.
//
// Merge policy:
//   - Open: the quote chain's price and its change.
//   - PreMarket/AfterMarket: the freshest extended trade measured against the
//     base close; without a trade, the base close flagged as fallback.
//   - ClosedNight: the base close flagged as fallback, with the change
//     fields the primary provider reported; derived or secondary figures
//     are not shown.
//
// Provider failures are logged and absorbed. The only error returned is a
// *NotFoundError.
func (r *Resolver) Resolve(ctx context.Context, symbol string, now time.Time) (*models.ResolvedQuote, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, &NotFoundError{Symbol: symbol}
	}
	sess := session.Classify(now)

	log := logger.FromContext(ctx).With().
		Str("symbol", symbol).
		Str("session", sess.String()).
		Logger()

	var (
		base      baseClose
		trade     provider.ExtendedTrade
		haveTrade bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		base = r.fetchBaseClose(gctx, symbol, &log)
		return nil
	})
	if sess.Extended() {
		g.Go(func() error {
			trade, haveTrade = r.fetchExtendedTrade(gctx, symbol, &log)
			return nil
		})
	}
	_ = g.Wait()

	q := merge(symbol, sess, base, trade, haveTrade)
	if q.DisplayPrice == 0 {
		log.Info().Msg("no provider produced a price")
		return nil, &NotFoundError{Symbol: symbol}
	}

	log.Debug().
		Float64("price", q.DisplayPrice).
		Float64("change", q.ChangeAmount).
		Bool("fallback", q.IsFallback).
		Str("source", q.Source).
		Msg("quote resolved")
	return q, nil
}

func merge(symbol string, sess session.Session, base baseClose, trade provider.ExtendedTrade, haveTrade bool) *models.ResolvedQuote {
	q := &models.ResolvedQuote{Symbol: symbol, Session: sess}

	switch sess {
	case session.Open:
		if base.ok {
			q.DisplayPrice = base.quote.Price
			q.ChangeAmount = base.quote.Change
			q.ChangePercent = base.quote.ChangePercent
			q.Source = base.quote.Source
		}

	case session.PreMarket, session.AfterMarket:
		switch {
		case haveTrade:
			q.DisplayPrice = trade.Price
			q.Source = trade.Source
			if base.ok {
				q.ChangeAmount, q.ChangePercent = provider.DeriveChange(trade.Price, base.quote.Price)
			}
		case base.ok:
			q.DisplayPrice = base.quote.Price
			q.Source = base.quote.Source
			q.IsFallback = true
		}

	default:
		if base.ok {
			q.DisplayPrice = base.quote.Price
			q.Source = base.quote.Source
			q.IsFallback = true
			if base.rank == 0 {
				q.ChangeAmount, q.ChangePercent = reportedChange(base.quote)
			}
		}
	}

	if math.Abs(q.ChangeAmount) < noiseThreshold {
		q.ChangeAmount = 0
		q.ChangePercent = 0
	}
	return q
}

// reportedChange returns the change fields the upstream sent, 0 for any
// it left out.
func reportedChange(q provider.Quote) (change, percent float64) {
	if q.ChangeReported {
		change = q.Change
	}
	if q.PercentReported {
		percent = q.ChangePercent
	}
	return change, percent
}

// fetchBaseClose walks the quote chain and keeps the first usable quote.
func (r *Resolver) fetchBaseClose(ctx context.Context, symbol string, log *zerolog.Logger) baseClose {
	for rank, src := range r.quotes {
		if ctx.Err() != nil {
			break
		}
		q, err := src.FetchQuote(ctx, symbol)
		if err != nil {
			logFailure(log, "quote", src.Name(), err)
			continue
		}
		if q.Price == 0 {
			continue
		}
		return baseClose{quote: q, rank: rank, ok: true}
	}
	return baseClose{}
}

// fetchExtendedTrade walks the trade chain and keeps the first usable trade.
func (r *Resolver) fetchExtendedTrade(ctx context.Context, symbol string, log *zerolog.Logger) (provider.ExtendedTrade, bool) {
	for _, src := range r.trades {
		if ctx.Err() != nil {
			break
		}
		tr, err := src.FetchExtendedTrade(ctx, symbol)
		if err != nil {
			logFailure(log, "extended_trade", src.Name(), err)
			continue
		}
		if tr.Price == 0 {
			continue
		}
		return tr, true
	}
	return provider.ExtendedTrade{}, false
}

func logFailure(log *zerolog.Logger, role, name string, err error) {
	ev := log.Warn()
	if !provider.IsSoft(err) {
		ev = log.Error()
	}
	ev.Err(err).Str("provider", name).Str("role", role).Msg("provider call failed")
}
