package middleware

import (
	"errors"
	"strings"

	"stickynotes/services"
	"stickynotes/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by AuthMiddleware.
const (
	UserIDKey = "user_id"
	ClaimsKey = "claims"
)

// AuthMiddleware requires a valid, unrevoked access token. blacklist may be nil.
func AuthMiddleware(tokens *services.TokenService, blacklist services.TokenBlacklist, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			utils.TrackError("auth", "missing_token")
			utils.Unauthorized(c, "Authentication credentials were not provided.")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(tokenString), services.AccessToken)
		if err != nil {
			utils.TrackError("auth", tokenErrorReason(err))
			utils.Unauthorized(c, "Given token not valid for any token type")
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Error("token blacklist lookup failed", zap.Error(err))
				utils.ServiceUnavailable(c, "Token blacklist unavailable")
				return
			}
			if revoked {
				utils.TrackError("auth", "revoked")
				utils.Unauthorized(c, "Token is blacklisted")
				return
			}
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func tokenErrorReason(err error) string {
	switch {
	case errors.Is(err, services.ErrTokenExpired):
		return "expired"
	case errors.Is(err, services.ErrWrongTokenType):
		return "wrong_type"
	default:
		return "invalid"
	}
}

// CurrentUser returns the user id stored by AuthMiddleware.
func CurrentUser(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
