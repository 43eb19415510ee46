package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/resolver"
)

type stubResolver struct {
	q       *models.ResolvedQuote
	err     error
	calls   int
	gotSym  string
	gotTime time.Time
}

func (s *stubResolver) Resolve(_ context.Context, symbol string, now time.Time) (*models.ResolvedQuote, error) {
	s.calls++
	s.gotSym = symbol
	s.gotTime = now
	return s.q, s.err
}

func TestQuoteService_TableDriven(t *testing.T) {
	fixed := time.Date(2025, 9, 22, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		symbol    string
		stub      *stubResolver
		wantErr   error
		wantCalls int
	}{
		{
			name:      "success",
			symbol:    " tsla ",
			stub:      &stubResolver{q: &models.ResolvedQuote{Symbol: "TSLA", DisplayPrice: 1}},
			wantCalls: 1,
		},
		{
			name:      "empty symbol",
			symbol:    "  ",
			stub:      &stubResolver{},
			wantErr:   ErrInvalidSymbol,
			wantCalls: 0,
		},
		{
			name:      "not found",
			symbol:    "ZZZZ",
			stub:      &stubResolver{err: &resolver.NotFoundError{Symbol: "ZZZZ"}},
			wantErr:   resolver.ErrNotFound,
			wantCalls: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewQuoteService(tc.stub, WithClock(func() time.Time { return fixed }))
			out, err := svc.GetQuote(context.Background(), tc.symbol)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) || out != nil {
					t.Fatalf("expected %v, got out=%+v err=%v", tc.wantErr, out, err)
				}
			} else if err != nil || out == nil {
				t.Fatalf("unexpected: out=%+v err=%v", out, err)
			}
			if tc.stub.calls != tc.wantCalls {
				t.Fatalf("resolver calls %d, want %d", tc.stub.calls, tc.wantCalls)
			}
			if tc.wantCalls > 0 {
				if tc.stub.gotSym != "TSLA" && tc.stub.gotSym != "ZZZZ" {
					t.Fatalf("symbol not normalized: %q", tc.stub.gotSym)
				}
				if !tc.stub.gotTime.Equal(fixed) {
					t.Fatalf("clock not injected: %v", tc.stub.gotTime)
				}
			}
		})
	}
}

func TestQuoteService_DefaultClock(t *testing.T) {
	stub := &stubResolver{q: &models.ResolvedQuote{}}
	svc := NewQuoteService(stub, WithClock(nil))
	if _, err := svc.GetQuote(context.Background(), "AAPL"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if time.Since(stub.gotTime) > time.Minute {
		t.Fatalf("wall clock not used: %v", stub.gotTime)
	}
}
