package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/shared/response"
	"library-backend/pkg/jwt"
)

// ContextUsername is the gin context key holding the authenticated username.
const ContextUsername = "username"

// AccessTokenValidator is satisfied by *jwt.Manager.
type AccessTokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware rejects requests without a valid bearer access token with 403.
func AuthMiddleware(tokens AccessTokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			response.Forbidden(c, "Access denied")
			return
		}

		claims, err := tokens.ValidateAccessToken(token)
		if err != nil {
			log.Debug().
				Err(err).
				Str("request_id", c.GetString(ContextRequestID)).
				Msg("Rejected access token")
			response.Forbidden(c, "Invalid or expired token")
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
