package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

const ContextActor = "actor"

type TokenParser interface {
	Parse(token string) (identity.Actor, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "expected bearer token")
			return
		}

		actor, err := tokens.Parse(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "invalid or expired token")
			return
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			httperr.Unauthorized(c, "invalid_token", "missing identity")
			return
		}
		if actor.Role != role {
			httperr.Forbidden(c, httperr.CodeForbidden, "route requires role "+string(role))
			return
		}
		c.Next()
	}
}

func ActorFrom(c *gin.Context) (identity.Actor, bool) {
	v, ok := c.Get(ContextActor)
	if !ok {
		return identity.Actor{}, false
	}
	actor, ok := v.(identity.Actor)
	return actor, ok
}
