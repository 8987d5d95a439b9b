package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chemstock/models"
	"chemstock/session"
)

const SessionCookie = "chem_session"

// AuthRequired resolves the session cookie and puts username/fullName/role
// into the request context for downstream handlers.
func AuthRequired(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(SessionCookie)
		if err != nil || ck.Value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		sess, err := sessions.Get(c.Request.Context(), ck.Value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid session"})
			return
		}
		c.Set("username", sess.Username)
		c.Set("fullName", sess.FullName)
		c.Set("role", sess.Role)
		c.Next()
	}
}

// RoleRequired gates a group on the roles declared at login.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("role")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		role, _ := v.(models.Role)
		for _, want := range roles {
			if role == want {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
	}
}

// Username reads the identity set by AuthRequired.
func Username(c *gin.Context) string {
	v, _ := c.Get("username")
	u, _ := v.(string)
	return u
}

// RoleOf reads the role set by AuthRequired.
func RoleOf(c *gin.Context) models.Role {
	v, _ := c.Get("role")
	r, _ := v.(models.Role)
	return r
}
