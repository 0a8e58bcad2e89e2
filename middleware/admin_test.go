package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/knsalim/paanshop-api/auth"
)

func adminRouter(principal *auth.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if principal != nil {
			auth.SetPrincipal(c, *principal)
		}
	})
	r.GET("/admin/ping", RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func TestRequireAdminNoPrincipal(t *testing.T) {
	rec := httptest.NewRecorder()
	adminRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminNonAdmin(t *testing.T) {
	rec := httptest.NewRecorder()
	adminRouter(&auth.Principal{ID: "u1"}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminAdmin(t *testing.T) {
	rec := httptest.NewRecorder()
	adminRouter(&auth.Principal{ID: "u1", Role: "admin"}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
