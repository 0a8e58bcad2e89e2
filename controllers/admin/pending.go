package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	orderControllers "github.com/knsalim/paanshop-api/controllers/order"
	"github.com/knsalim/paanshop-api/realtime"
	"github.com/knsalim/paanshop-api/store"
)

// GET /admin/pending — the queue as the watcher last saw it, for the
// console's initial render before its websocket catches up.
func GetPendingOrders(watcher *realtime.PendingWatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, watcher.Snapshot())
	}
}

// GET /admin/pending/ws — live queue feed plus tone start/stop events.
func PendingFeedHandler(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	}
}

// POST /admin/pending/:pendingID/accept
func AcceptOrderHandler(st store.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := orderControllers.AcceptOrder(c.Request.Context(), st, log, c.Param("pendingID")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept order. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order accepted"})
	}
}

// POST /admin/pending/:pendingID/decline
func DeclineOrderHandler(st store.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := orderControllers.DeclineOrder(c.Request.Context(), st, log, c.Param("pendingID")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decline order. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order declined"})
	}
}
