package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON ErrorResponse
// when the handler did not write a response itself.
//
// Handlers report failures by setting the status and attaching a
// dto.ErrorResponse; this middleware logs and writes it.
//
// Behavior:
//   - A dto.ErrorResponse in the chain is written as-is, with the status
//     the handler set (500 when none was set).
//   - Any other error becomes a 500 "Internal server error".
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	l := logger.FromContext(c.Request.Context())
	ev := l.Warn()
	if status >= http.StatusInternalServerError {
		ev = l.Error()
	}
	ev.Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg("request failed")

	var resp dto.ErrorResponse
	if !errors.As(err, &resp) {
		resp = dto.NewErrorResponse("Internal server error", err)
	}
	c.JSON(status, resp)
}

// AbortWithError aborts the chain and writes a standardized error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
