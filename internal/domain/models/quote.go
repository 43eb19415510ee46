package models

import "github.com/guttosm/quotepulse/internal/session"

// ResolvedQuote is the outcome of one resolution request.
//
// Fields:
//   - Symbol: upper-cased instrument symbol (e.g., "TSLA").
//   - Session: the session the request was classified into.
//   - DisplayPrice: the price to show; always > 0.
//   - ChangeAmount / ChangePercent: change against the session reference,
//     zeroed when the absolute change is below the noise threshold.
//   - IsFallback: the displayed price is the last official close because no
//     fresher figure was available.
//   - Source: provider whose price is displayed.
type ResolvedQuote struct {
	Symbol        string          `json:"symbol" example:"TSLA"`
	Session       session.Session `json:"session" example:"aftermarket"`
	DisplayPrice  float64         `json:"price" example:"251.3"`
	ChangeAmount  float64         `json:"change" example:"1.3"`
	ChangePercent float64         `json:"change_percent" example:"0.52"`
	IsFallback    bool            `json:"is_fallback" example:"false"`
	Source        string          `json:"source" example:"fmp"`
}

// DisplaySession is the session a presenter should label the quote with:
// a fallback price is the official close, so it reads as closed.
func (q ResolvedQuote) DisplaySession() session.Session {
	if q.IsFallback {
		return session.ClosedNight
	}
	return q.Session
}
