package orderControllers

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	cartControllers "github.com/knsalim/paanshop-api/controllers/cart"
	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

var (
	ErrNoDeliveryMethod  = errors.New("please select a delivery method (pickup or dineout)")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("order status cannot move backwards or leave a terminal state")
	ErrDineoutNoStaging  = errors.New("staged status updates are not available for dineout orders")
)

type PlaceOrderRequest struct {
	DeliveryMethod string `json:"deliveryMethod"`
	ArrivalTime    string `json:"arrivalTime"`
}

type PlaceOrderResult struct {
	OrderID   string `json:"orderId"`
	PendingID string `json:"pendingId"`
}

// PlaceOrder runs the checkout protocol: snapshot the cart into a new order
// under the user, mirror it into the shared pendingorders queue, then clear
// the cart. The steps are sequential with no rollback; if the mirror write
// fails after the order write, the order exists without a queue entry and
// will never reach the admin console. That gap is inherited from the
// storefront and deliberately not papered over here.
func PlaceOrder(ctx context.Context, st store.Store, log *logrus.Logger, userID string, req PlaceOrderRequest) (PlaceOrderResult, error) {
	if req.DeliveryMethod != "pickup" && req.DeliveryMethod != "dineout" {
		return PlaceOrderResult{}, ErrNoDeliveryMethod
	}

	items, err := cartControllers.GetCart(ctx, st, userID)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if len(items) == 0 {
		return PlaceOrderResult{}, ErrEmptyCart
	}

	// The grand total is the plain sum of line totals. The client shows a
	// bill breakdown with taxes on top, but nothing beyond the line totals is
	// ever persisted.
	var grandTotal float64
	for _, item := range items {
		grandTotal += item.Total
	}

	var profile models.User
	if data, err := st.Get(ctx, store.UserPath(userID)); err == nil {
		profile = models.UserFromDoc(userID, data)
	} else {
		log.WithError(err).WithField("user_id", userID).Warn("could not load profile for order contact fields")
	}

	order := models.Order{
		CartItems:         items,
		DeliveryMethod:    req.DeliveryMethod,
		DeliveryStatus:    models.StatusAwaitingAcceptance,
		PaymentStatus:     models.PaymentPending,
		GrandTotal:        grandTotal,
		CreatedAt:         time.Now(),
		OrderName:         profile.Name,
		OrderMobileNumber: profile.Mobile,
		ArrivalTime:       req.ArrivalTime,
		OrderAccepted:     false,
	}

	orderID, err := st.Create(ctx, store.OrdersPath(userID), order.Doc())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	pending := models.PendingOrder{
		Order:   order,
		UserID:  userID,
		OrderID: orderID,
	}
	pendingID, err := st.Create(ctx, store.PendingOrdersPath, pending.Doc())
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"order_id": orderID,
		}).Error("order created but pending mirror failed; order will not reach the admin queue")
		return PlaceOrderResult{}, err
	}

	// Cart clearing is best effort; the order is already placed either way.
	if err := cartControllers.ClearCart(ctx, st, log, userID); err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to clear cart after checkout")
	}

	return PlaceOrderResult{OrderID: orderID, PendingID: pendingID}, nil
}

// AcceptOrder resolves a pending order in the customer's favor: the mirrored
// order moves to "Order Placed" and the mirror leaves the queue. The update
// runs before the delete so an interruption in between leaves a mirror that
// will simply be re-actioned; the update is idempotent and the delete no-ops
// on a missing document, so at-least-once resolution is harmless.
func AcceptOrder(ctx context.Context, st store.Store, log *logrus.Logger, pendingID string) error {
	return resolvePending(ctx, st, log, pendingID, map[string]interface{}{
		"deliveryStatus": string(models.StatusOrderPlaced),
		"orderAccepted":  true,
	})
}

// DeclineOrder resolves a pending order by cancelling it.
func DeclineOrder(ctx context.Context, st store.Store, log *logrus.Logger, pendingID string) error {
	return resolvePending(ctx, st, log, pendingID, map[string]interface{}{
		"deliveryStatus": string(models.StatusCancelled),
		"orderAccepted":  false,
	})
}

func resolvePending(ctx context.Context, st store.Store, log *logrus.Logger, pendingID string, update map[string]interface{}) error {
	data, err := st.Get(ctx, store.PendingOrderPath(pendingID))
	if err == store.ErrNotFound {
		// Another admin already resolved it. Nothing to do.
		log.WithField("pending_id", pendingID).Info("pending order already resolved")
		return nil
	}
	if err != nil {
		return err
	}

	pending := models.PendingOrderFromDoc(pendingID, data)
	if pending.UserID == "" || pending.OrderID == "" {
		// A mirror without back-references cannot be resolved. Known silent
		// failure mode: logged, never surfaced to the admin.
		log.WithField("pending_id", pendingID).Error("pending order is missing userId/orderId back-references")
		return nil
	}

	if err := st.Update(ctx, store.OrderPath(pending.UserID, pending.OrderID), update); err != nil {
		return err
	}
	return st.Delete(ctx, store.PendingOrderPath(pendingID))
}

// AdvanceStatus applies an admin's status change to a pickup order. The
// workflow only moves forward and terminal states absorb; dineout orders
// have no staged cooking workflow, so for them only a direct Delivered or
// Cancelled is admitted.
func AdvanceStatus(ctx context.Context, st store.Store, userID, orderID string, rawStatus string) error {
	newStatus, err := models.ParseDeliveryStatus(rawStatus)
	if err != nil {
		return err
	}

	data, err := st.Get(ctx, store.OrderPath(userID, orderID))
	if err != nil {
		return err
	}
	order := models.OrderFromDoc(orderID, data)

	if order.DeliveryMethod == "dineout" && newStatus != models.StatusCancelled && newStatus != models.StatusDelivered {
		return ErrDineoutNoStaging
	}
	if !models.CanTransition(order.DeliveryStatus, newStatus) {
		return ErrInvalidTransition
	}

	return st.Update(ctx, store.OrderPath(userID, orderID), map[string]interface{}{
		"deliveryStatus": string(newStatus),
	})
}

// SetPaymentStatus overwrites the payment status independently of the
// delivery workflow. A cancelled order can still be marked paid; the
// operator owns that call.
func SetPaymentStatus(ctx context.Context, st store.Store, userID, orderID string, rawStatus string) error {
	status, err := models.ParsePaymentStatus(rawStatus)
	if err != nil {
		return err
	}
	return st.Update(ctx, store.OrderPath(userID, orderID), map[string]interface{}{
		"paymentStatus": string(status),
	})
}

// GetUserOrders lists a user's order history, newest first.
func GetUserOrders(ctx context.Context, st store.Store, userID string) ([]models.Order, error) {
	docs, err := st.List(ctx, store.OrdersPath(userID))
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, models.OrderFromDoc(d.ID, d.Data))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func GetOrder(ctx context.Context, st store.Store, userID, orderID string) (models.Order, error) {
	data, err := st.Get(ctx, store.OrderPath(userID, orderID))
	if err != nil {
		return models.Order{}, err
	}
	return models.OrderFromDoc(orderID, data), nil
}
