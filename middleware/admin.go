package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/knsalim/paanshop-api/auth"
)

// RequireAdmin gates the admin surface on the profile role claim. A
// non-admin gets a 403 and never reaches a handler; the profile role (set in
// users/{uid}) is the sole authorization signal.
func RequireAdmin(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		c.Abort()
		return
	}
	if !p.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
