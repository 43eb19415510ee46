package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/resolver"
	"github.com/guttosm/quotepulse/internal/service"
)

// Handler provides HTTP handlers for quote endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Delegate resolution to the quote service
//   - Translate resolved quotes into response DTOs
//   - Map service errors onto HTTP status codes
type Handler struct {
	svc service.QuoteService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.QuoteService) *Handler {
	return &Handler{svc: svc}
}

// GetQuote handles GET /api/v1/quote requests.
//
// Query Parameters:
//   - symbol (string, required): Instrument symbol, case-insensitive (e.g., "tsla").
//
// Responses:
//   - 200 OK: QuoteResponse for the current session.
//   - 400 Bad Request: Missing or blank symbol.
//   - 404 Not Found: No provider produced a usable price.
//   - 500 Internal Server Error: Anything else.
//
// GetQuote godoc
// @Summary      Get the current quote of a symbol
// @Description  Resolves the displayable price and change of a symbol for the current trading session (pre-market, open, after-market or closed)
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        symbol  query     string  true  "Instrument symbol" example(TSLA)
// @Success      200     {object}  dto.QuoteResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/quote [get]
func (h *Handler) GetQuote(c *gin.Context) {
	q, err := h.svc.GetQuote(c.Request.Context(), c.Query("symbol"))
	switch {
	case errors.Is(err, service.ErrInvalidSymbol):
		fail(c, http.StatusBadRequest, "symbol is required", nil)
		return
	case errors.Is(err, resolver.ErrNotFound):
		fail(c, http.StatusNotFound, "no quote available", err)
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "failed to resolve quote", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}

// fail records the error for middleware.ErrorHandler, which writes the body.
func fail(c *gin.Context, status int, message string, err error) {
	c.Status(status)
	_ = c.Error(dto.NewErrorResponse(message, err))
	c.Abort()
}
