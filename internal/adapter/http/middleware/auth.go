package middleware

import (
	"net/http"
	"strings"

	"temporada_ferias/internal/infrastructure/auth"
	"temporada_ferias/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActorKey is the gin context key holding the authenticated admin email.
const ActorKey = "admin_email"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid admin token", http.StatusUnauthorized)

type TokenParser interface {
	Parse(raw string) (auth.Claims, error)
}

// RequireAdmin rejects requests without a valid "Authorization: Bearer" token
// and stores the admin email under ActorKey.
func RequireAdmin(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := parser.Parse(strings.TrimSpace(raw))
		if err != nil {
			zap.L().Warn("[auth][middleware] token rejected", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ActorKey, claims.Email)
		c.Next()
	}
}

// Actor returns the admin email set by RequireAdmin.
func Actor(c *gin.Context) string {
	return c.GetString(ActorKey)
}
