package dto

import "github.com/guttosm/quotepulse/internal/domain/models"

// Direction values of QuoteResponse.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// QuoteResponse represents the JSON structure returned by the
// GET /api/v1/quote endpoint.
//
// Fields match the API contract and may differ from internal domain models.
// DisplaySession is the label a presenter should show: fallback prices are
// labelled closed even when Session is an extended session.
type QuoteResponse struct {
	Symbol         string  `json:"symbol" example:"TSLA"`
	Session        string  `json:"session" example:"aftermarket"`
	DisplaySession string  `json:"display_session" example:"aftermarket"`
	Price          float64 `json:"price" example:"251.3"`
	Change         float64 `json:"change" example:"1.3"`
	ChangePercent  float64 `json:"change_percent" example:"0.52"`
	IsFallback     bool    `json:"is_fallback" example:"false"`
	Direction      string  `json:"direction" example:"up" enums:"up,down"`
	Source         string  `json:"source" example:"fmp"`
}

// NewQuoteResponse maps a resolved quote onto the API contract.
func NewQuoteResponse(q *models.ResolvedQuote) QuoteResponse {
	direction := DirectionUp
	if q.ChangeAmount < 0 {
		direction = DirectionDown
	}
	return QuoteResponse{
		Symbol:         q.Symbol,
		Session:        q.Session.String(),
		DisplaySession: q.DisplaySession().String(),
		Price:          q.DisplayPrice,
		Change:         q.ChangeAmount,
		ChangePercent:  q.ChangePercent,
		IsFallback:     q.IsFallback,
		Direction:      direction,
		Source:         q.Source,
	}
}
