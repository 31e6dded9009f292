package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/callable"
	"bookclub-backend/internal/shared/response"
)

// Recovery converts a panic into the standard error envelope. The panic value
// and stack stay in the log; the caller sees the same opaque message as any
// other internal failure.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("Panic recovered")

				response.Error(c, http.StatusInternalServerError,
					string(callable.KindInternal), "internal error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
