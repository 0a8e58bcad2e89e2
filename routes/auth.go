package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/knsalim/paanshop-api/auth"
	menuControllers "github.com/knsalim/paanshop-api/controllers/menu"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(d.Store, d.Verifier, d.Cfg, d.Log))
	}
}

// SetupMenuRoutes registers the public menu browsing endpoints.
func SetupMenuRoutes(r *gin.Engine, d Deps) {
	menuGroup := r.Group("/menu")
	{
		menuGroup.GET("/:category", menuControllers.GetMenuItems(d.Store))
		menuGroup.GET("/:category/:itemID", menuControllers.GetMenuItemByID(d.Store))
	}
}
