package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/knsalim/paanshop-api/auth"
	"github.com/knsalim/paanshop-api/realtime"
	"github.com/knsalim/paanshop-api/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /user/orders/active
func GetActiveOrderHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		active, err := realtime.ActiveOrder(c.Request.Context(), st, p.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"activeOrder": active})
	}
}

// GET /user/orders/active/ws streams the active-order derivation to the
// customer's home screen. The subscription lives exactly as long as the
// websocket: it is cancelled when the peer disconnects, whichever way that
// happens.
func ActiveOrderFeedHandler(st store.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		watcher, err := realtime.NewActiveOrderWatcher(c.Request.Context(), st, log, p.ID)
		if err != nil {
			log.WithError(err).Error("failed to watch user orders")
			return
		}
		defer watcher.Close()

		// Reader only notices the peer going away.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case active, ok := <-watcher.Updates():
				if !ok {
					return
				}
				if err := conn.WriteJSON(gin.H{"activeOrder": active}); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
