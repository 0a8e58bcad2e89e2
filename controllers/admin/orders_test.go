package adminController

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func doRequest(t *testing.T, handler gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	handler(c)
	return rec
}

func seedOrders(t *testing.T, st store.Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, store.UserPath("u1"), models.User{Name: "Asha", CreatedAt: time.Now()}.Doc()))
	require.NoError(t, st.Set(ctx, store.UserPath("u2"), models.User{Name: "Ravi", CreatedAt: time.Now()}.Doc()))

	_, err := st.Create(ctx, store.OrdersPath("u1"), models.Order{
		DeliveryStatus: models.StatusDelivered,
		PaymentStatus:  models.PaymentPaid,
		GrandTotal:     180,
		OrderName:      "Asha",
		CreatedAt:      time.Now().Add(-2 * time.Hour),
	}.Doc())
	require.NoError(t, err)

	_, err = st.Create(ctx, store.OrdersPath("u2"), models.Order{
		DeliveryStatus: models.StatusProcessing,
		PaymentStatus:  models.PaymentPending,
		GrandTotal:     50,
		CreatedAt:      time.Now().Add(-time.Hour),
	}.Doc())
	require.NoError(t, err)

	_, err = st.Create(ctx, store.OrdersPath("u2"), models.Order{
		DeliveryStatus: models.StatusOrderPlaced,
		PaymentStatus:  models.PaymentPaid,
		GrandTotal:     120,
		OrderName:      "Ravi",
		CreatedAt:      time.Now(),
	}.Doc())
	require.NoError(t, err)
}

func TestGetAllOrdersHandler(t *testing.T) {
	st := store.NewMemory()
	seedOrders(t, st)

	rec := doRequest(t, GetAllOrdersHandler(st, testLogger()), "/admin/orders")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []AdminOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 3)

	// newest first, across users
	assert.Equal(t, "u2", orders[0].UserID)
	assert.Equal(t, models.StatusOrderPlaced, orders[0].DeliveryStatus)
	assert.Equal(t, "u1", orders[2].UserID)

	// orders written without a contact name are backfilled from the profile
	assert.Equal(t, "Ravi", orders[1].OrderName)
}

func TestGetAllOrdersHandlerEmptyStore(t *testing.T) {
	rec := doRequest(t, GetAllOrdersHandler(store.NewMemory(), testLogger()), "/admin/orders")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDashboardStatsHandler(t *testing.T) {
	st := store.NewMemory()
	seedOrders(t, st)

	rec := doRequest(t, GetDashboardStatsHandler(st, testLogger()), "/admin/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		TotalOrders   int     `json:"totalOrders"`
		TotalRevenue  float64 `json:"totalRevenue"`
		PendingOrders int     `json:"pendingOrders"`
		PaidOrders    int     `json:"paidOrders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 350.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 2, stats.PaidOrders)
}

func TestGetAllUsers(t *testing.T) {
	st := store.NewMemory()
	seedOrders(t, st)

	rec := doRequest(t, GetAllUsers(st), "/admin/users")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}
