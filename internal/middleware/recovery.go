package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/internal/logger"
)

// RecoveryMiddleware recovers from panics in the handler chain, logs the
// stack through the request logger and answers 500 with an ErrorResponse.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			logger.FromContext(c.Request.Context()).Error().
				Str("panic", fmt.Sprint(r)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			AbortWithError(c, http.StatusInternalServerError, "Internal server error", fmt.Errorf("%v", r))
		}()

		c.Next()
	}
}
