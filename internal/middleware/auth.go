package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	userdomain "github.com/BruksfildServices01/home-listing/internal/domain/user"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserName = "userName"
	ContextUserType = "userType"
)

// AuthMiddleware accepts "Authorization: Bearer <token>" and stores the
// token's user id and name on the context.
func AuthMiddleware(tokens *userdomain.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "You are not logged in")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Use a Bearer token")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.ID)
		c.Set(ContextUserName, claims.Name)

		c.Next()
	}
}

// UserID returns the authenticated user id, or 0 outside AuthMiddleware.
func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

func UserName(c *gin.Context) string {
	return c.GetString(ContextUserName)
}

// UserType returns the type loaded by RequireUserType, or "" before it ran.
func UserType(c *gin.Context) models.UserType {
	v, _ := c.Get(ContextUserType)
	t, _ := v.(models.UserType)
	return t
}
