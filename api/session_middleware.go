package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/santiagoprado21/southpark-club-backend/auth"
)

type AuthSessions interface {
	GetSession(token string) (auth.User, error)
}

// SessionAuth resolves the bearer token into a user and stores it in the
// request context under "user".
func SessionAuth(sessions AuthSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		if len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		user, err := sessions.GetSession(token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("accessToken", token)
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(auth.User)

		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return strings.TrimSpace(token)
	}

	return strings.TrimSpace(header)
}
