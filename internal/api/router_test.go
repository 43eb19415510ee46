package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/provider"
	"github.com/guttosm/quotepulse/internal/provider/finnhub"
	"github.com/guttosm/quotepulse/internal/provider/fmp"
	"github.com/guttosm/quotepulse/internal/resolver"
	"github.com/guttosm/quotepulse/internal/service"
	"github.com/guttosm/quotepulse/internal/session"
)

// deadlineService records the deadline the router put on the request context.
type deadlineService struct {
	deadline time.Time
	hasDL    bool
}

func (d *deadlineService) GetQuote(ctx context.Context, symbol string) (*models.ResolvedQuote, error) {
	d.deadline, d.hasDL = ctx.Deadline()
	return &models.ResolvedQuote{Symbol: symbol, Session: session.Open, DisplayPrice: 12.3, ChangeAmount: 0.3, Source: "fmp"}, nil
}

var _ service.QuoteService = (*deadlineService)(nil)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &deadlineService{}
	r := NewRouter(NewHandler(svc), RouterOptions{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quote?symbol=TSLA", nil)
	w := httptest.NewRecorder()
	start := time.Now()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if !svc.hasDL || svc.deadline.Sub(start) > RequestTimeout || svc.deadline.Sub(start) < RequestTimeout-time.Second {
		t.Fatalf("request timeout not applied: %v", svc.deadline)
	}

	var out dto.QuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Symbol != "TSLA" || out.Price != 12.3 || out.Session != "open" || out.Direction != dto.DirectionUp {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&deadlineService{}), RouterOptions{RateLimit: 1, RateWindow: time.Minute})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quote?symbol=TSLA", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes %v", codes)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&deadlineService{}), RouterOptions{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quotes", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestNewRouter_DeadlineCoversFallbackChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const perCall = 200 * time.Millisecond

	// Primary never answers within its budget.
	hung := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer hung.Close()

	// Fallback answers late, but within its own budget.
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		_, _ = w.Write([]byte(`{"c":251,"pc":250,"d":1,"dp":0.4,"t":1758556800}`))
	}))
	defer slow.Close()

	quotes := []provider.QuoteSource{
		fmp.New("k", fmp.WithBaseURL(hung.URL), fmp.WithHTTPClient(hung.Client()), fmp.WithTimeout(perCall)),
		finnhub.New("k", finnhub.WithBaseURL(slow.URL), finnhub.WithHTTPClient(slow.Client()), finnhub.WithTimeout(perCall)),
	}
	openSession := func() time.Time { return time.Date(2025, 9, 22, 11, 0, 0, 0, session.Exchange()) }
	svc := service.NewQuoteService(resolver.New(quotes, nil), service.WithClock(openSession))

	r := NewRouter(NewHandler(svc), RouterOptions{RequestTimeout: RequestBudget(len(quotes), perCall)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quote?symbol=TSLA", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var out dto.QuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Price != 251 || out.Source != "finnhub" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestRequestBudget(t *testing.T) {
	cases := []struct {
		n       int
		perCall time.Duration
		want    time.Duration
	}{
		{2, provider.CallTimeout, 25 * time.Second},
		{1, 3 * time.Second, 8 * time.Second},
		{0, 0, provider.CallTimeout + requestMargin},
	}
	for _, tc := range cases {
		if got := RequestBudget(tc.n, tc.perCall); got != tc.want {
			t.Fatalf("RequestBudget(%d, %v)=%v, want %v", tc.n, tc.perCall, got, tc.want)
		}
	}
	if RequestTimeout != RequestBudget(2, provider.CallTimeout) {
		t.Fatalf("default deadline %v does not cover two providers", RequestTimeout)
	}
}
