package callable

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/shared/response"
)

// identityKey is the gin context key the identity middleware populates.
const identityKey = "callable.identity"

// SetIdentity stores the caller's identity on the request context.
// Called by the identity middleware when a valid bearer token is present.
func SetIdentity(c *gin.Context, identity *Identity) {
	c.Set(identityKey, identity)
}

// IdentityFrom returns the caller's identity, or nil for anonymous calls.
func IdentityFrom(c *gin.Context) *Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*Identity)
	return identity
}

// Procedure is one remote procedure: it receives the untyped payload and the
// caller's identity and returns the success result or a structured error.
type Procedure func(ctx context.Context, identity *Identity, payload map[string]any) (any, error)

// Handler adapts a Procedure to a gin route. The payload is bound as a raw
// JSON object so the schema validator sees exactly what the caller sent.
func Handler(proc Procedure) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := map[string]any{}
		if c.Request.Body != nil && c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&payload); err != nil {
				response.Error(c, http.StatusBadRequest, string(KindInvalidArgument), "request body is not a JSON object")
				return
			}
		}

		result, err := proc(c.Request.Context(), IdentityFrom(c), payload)
		if err != nil {
			if KindOf(err) == KindInternal {
				log.Error().
					Err(err).
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Msg("Procedure failed")
			}
			response.Error(c, ToHTTPStatus(err), string(KindOf(err)), messageOf(err))
			return
		}

		response.Success(c, http.StatusOK, result)
	}
}

// messageOf picks the caller-visible message. Collaborator failures stay
// server-side; the caller gets a generic message.
func messageOf(err error) string {
	var ce *Error
	if errors.As(err, &ce) && ce.Kind != KindInternal {
		return ce.Message
	}
	return "internal error"
}
