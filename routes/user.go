package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/knsalim/paanshop-api/controllers/cart"
	orderControllers "github.com/knsalim/paanshop-api/controllers/order"
	userControllers "github.com/knsalim/paanshop-api/controllers/user"
	"github.com/knsalim/paanshop-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(d.Store))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(d.Store)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(d.Store))                             // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(d.Store))                            // POST /user/cart
			cartGroup.PUT("/:itemID/quantity", cartControllers.UpdateCartItemQuantity(d.Store))  // PUT /user/cart/:itemID/quantity
			cartGroup.DELETE("/:itemID", cartControllers.DeleteCartItem(d.Store))                // DELETE /user/cart/:itemID
			cartGroup.DELETE("/", cartControllers.ClearUserCart(d.Store, d.Log))                 // DELETE /user/cart
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/place", orderControllers.PlaceOrderHandler(d.Store, d.Log))        // POST /user/orders/place
			orderGroup.GET("/", orderControllers.GetUserOrdersHandler(d.Store))                  // GET /user/orders
			orderGroup.GET("/active", orderControllers.GetActiveOrderHandler(d.Store))           // GET /user/orders/active
			orderGroup.GET("/active/ws", orderControllers.ActiveOrderFeedHandler(d.Store, d.Log))// GET /user/orders/active/ws
			orderGroup.GET("/:orderID", orderControllers.GetOrderHandler(d.Store))               // GET /user/orders/:orderID
		}
	}
}
