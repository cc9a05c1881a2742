package middleware

import (
	"errors"
	"net/http"
	"strings"

	"watchparty_backend/internal/auth"
	"watchparty_backend/internal/logger"
	"watchparty_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and exposes the caller's
// account and member ids on the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header is missing")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Authorization header must be a bearer token")
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("memberID", claims.MemberID)

		ctx := logger.WithMemberID(c.Request.Context(), claims.MemberID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": apperrors.NewUnauthorizedError(message),
	})
}
