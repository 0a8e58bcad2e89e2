package adminController

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

// AdminOrder is an order annotated with the owning user, for the console's
// cross-user views.
type AdminOrder struct {
	models.Order
	UserID string `json:"userId"`
}

// listAllOrders walks every user's orders sub-collection. The store has no
// cross-collection query, so this mirrors how the console reads today:
// users first, then each orders collection.
func listAllOrders(ctx context.Context, st store.Store) ([]AdminOrder, error) {
	users, err := st.List(ctx, "users")
	if err != nil {
		return nil, err
	}

	var orders []AdminOrder
	for _, u := range users {
		profile := models.UserFromDoc(u.ID, u.Data)
		docs, err := st.List(ctx, store.OrdersPath(u.ID))
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			order := models.OrderFromDoc(d.ID, d.Data)
			if order.OrderName == "" {
				order.OrderName = profile.Name
			}
			orders = append(orders, AdminOrder{Order: order, UserID: u.ID})
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// GET /admin/orders
func GetAllOrdersHandler(st store.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := listAllOrders(c.Request.Context(), st)
		if err != nil {
			log.WithError(err).Error("failed to fetch orders")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/stats
func GetDashboardStatsHandler(st store.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := listAllOrders(c.Request.Context(), st)
		if err != nil {
			log.WithError(err).Error("failed to fetch orders for stats")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		var totalRevenue float64
		var pendingOrders, paidOrders int
		for _, o := range orders {
			totalRevenue += o.GrandTotal
			if o.DeliveryStatus != models.StatusDelivered {
				pendingOrders++
			}
			if strings.EqualFold(string(o.PaymentStatus), string(models.PaymentPaid)) {
				paidOrders++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"totalOrders":   len(orders),
			"totalRevenue":  totalRevenue,
			"pendingOrders": pendingOrders,
			"paidOrders":    paidOrders,
		})
	}
}

// GET /admin/users
func GetAllUsers(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := st.List(c.Request.Context(), "users")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		users := make([]models.User, 0, len(docs))
		for _, d := range docs {
			users = append(users, models.UserFromDoc(d.ID, d.Data))
		}
		sort.Slice(users, func(i, j int) bool {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		})
		c.JSON(http.StatusOK, users)
	}
}
