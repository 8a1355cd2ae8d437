package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiwidjaja/bistro-orders/models"
	"github.com/adiwidjaja/bistro-orders/utils"
)

// RequireAdmin gates a route group on the central authorization policy.
func RequireAdmin(action models.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if err := models.Authorize(session, action); err != nil {
			if errors.Is(err, models.ErrAuthRequired) {
				utils.RespondError(c, http.StatusUnauthorized, err)
			} else {
				utils.RespondError(c, http.StatusForbidden, err)
			}
			c.Abort()
			return
		}
		c.Next()
	}
}
