package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userdomain "github.com/BruksfildServices01/home-listing/internal/domain/user"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

// RequireUserType reads the caller's current user type from the database on
// every request, so a changed role applies without a new token. It must run
// after AuthMiddleware.
func RequireUserType(
	users userdomain.Repository,
	allowed ...models.UserType,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)
		if userID == 0 {
			httperr.Unauthorized(c, "unauthorized", "You are not logged in")
			return
		}

		u, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			logrus.WithError(err).WithField("user_id", userID).Error("load user for guard")
			httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Something went wrong.")
			return
		}
		if u == nil {
			httperr.Unauthorized(c, "user_not_found", "The user of this token no longer exists")
			return
		}

		if !slices.Contains(allowed, u.UserType) {
			httperr.Abort(c, http.StatusForbidden, "forbidden", "You are not allowed to perform this action")
			return
		}

		c.Set(ContextUserType, u.UserType)
		c.Next()
	}
}
