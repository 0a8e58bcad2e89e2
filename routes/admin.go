package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/knsalim/paanshop-api/controllers/admin"
	menuControllers "github.com/knsalim/paanshop-api/controllers/menu"
	orderControllers "github.com/knsalim/paanshop-api/controllers/order"
	"github.com/knsalim/paanshop-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a valid JWT
// whose role claim is "admin".
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", adminController.GetAllUsers(d.Store))

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminController.GetAllOrdersHandler(d.Store, d.Log))
			orderAdmin.GET("/export-excel", adminController.ExportOrdersToExcel(d.Store, d.Log))
			orderAdmin.PUT("/:userID/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.Store))
			orderAdmin.PUT("/:userID/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(d.Store))
		}

		// ─────────── Pending Queue ───────────
		pendingAdmin := adminGroup.Group("/pending")
		{
			pendingAdmin.GET("", adminController.GetPendingOrders(d.Pending))
			pendingAdmin.GET("/ws", adminController.PendingFeedHandler(d.Hub))
			pendingAdmin.POST("/:pendingID/accept", adminController.AcceptOrderHandler(d.Store, d.Log))
			pendingAdmin.POST("/:pendingID/decline", adminController.DeclineOrderHandler(d.Store, d.Log))
		}

		// ─────────── Dashboard ───────────
		adminGroup.GET("/stats", adminController.GetDashboardStatsHandler(d.Store, d.Log))

		// ─────────── Menu Management ───────────
		menuAdmin := adminGroup.Group("/menu")
		{
			menuAdmin.POST("/:category", menuControllers.CreateMenuItem(d.Store))
			menuAdmin.PUT("/:category/:itemID", menuControllers.UpdateMenuItem(d.Store))
			menuAdmin.DELETE("/:category/:itemID", menuControllers.DeleteMenuItem(d.Store))
		}
	}
}
