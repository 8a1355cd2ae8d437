package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adiwidjaja/bistro-orders/models"
	"github.com/adiwidjaja/bistro-orders/utils"
)

const sessionKey = "session"

// AuthMiddleware validates the bearer token and stores an explicit
// models.Session in the request context. Controllers pass that session
// into the services; nothing downstream reads the token again.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid token format"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid user ID in token"))
			c.Abort()
			return
		}

		c.Set(sessionKey, &models.Session{
			UserID: claims.UserID,
			Admin:  claims.Admin,
		})
		c.Next()
	}
}

// SessionFromContext returns the session set by AuthMiddleware, or nil on
// routes that did not pass through it.
func SessionFromContext(c *gin.Context) *models.Session {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	session, ok := v.(*models.Session)
	if !ok {
		return nil
	}
	return session
}
