package service

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/resolver"
)

// ErrInvalidSymbol is returned when the requested symbol is empty after trimming.
var ErrInvalidSymbol = errors.New("symbol is required")

// QuoteService defines business logic for resolving the displayable quote of a symbol.
type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) (*models.ResolvedQuote, error)
}

// Resolver is the engine the service delegates to.
type Resolver interface {
	Resolve(ctx context.Context, symbol string, now time.Time) (*models.ResolvedQuote, error)
}

type quoteService struct {
	resolver Resolver
	now      func() time.Time
}

// Option configures the quote service.
type Option func(*quoteService)

// WithClock replaces the wall clock used to classify the session.
func WithClock(now func() time.Time) Option {
	return func(s *quoteService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewQuoteService(r Resolver, opts ...Option) QuoteService {
	s := &quoteService{resolver: r, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *quoteService) GetQuote(ctx context.Context, symbol string) (*models.ResolvedQuote, error) {
	symbol = resolver.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}
	return s.resolver.Resolve(ctx, symbol, s.now())
}
