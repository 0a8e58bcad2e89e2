package models

import (
	"errors"
	"strings"
)

type DeliveryStatus string
type PaymentStatus string

const (
	// Delivery statuses, in the order an order moves through them.
	StatusAwaitingAcceptance DeliveryStatus = "Waiting for your order to accept"
	StatusOrderPlaced        DeliveryStatus = "Order Placed"
	StatusProcessing         DeliveryStatus = "Processing Your Order"
	StatusReady              DeliveryStatus = "Your Order is Ready"
	StatusDelivered          DeliveryStatus = "Delivered"
	StatusCancelled          DeliveryStatus = "Cancelled"

	// Payment statuses
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

var (
	ErrInvalidDeliveryStatus = errors.New("invalid delivery status")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
)

// statusRank orders the forward path of the delivery workflow. Cancelled is
// not ranked: it is reachable from any non-terminal status.
var statusRank = map[DeliveryStatus]int{
	StatusAwaitingAcceptance: 0,
	StatusOrderPlaced:        1,
	StatusProcessing:         2,
	StatusReady:              3,
	StatusDelivered:          4,
}

// ParseDeliveryStatus maps a raw stored string to the canonical status.
// Earlier revisions of the mobile client wrote "Order Ready" and
// "Ready for Pickup" for the ready stage; both are folded into
// StatusReady here so nothing downstream compares raw strings.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "waiting for your order to accept":
		return StatusAwaitingAcceptance, nil
	case "order placed":
		return StatusOrderPlaced, nil
	case "processing your order":
		return StatusProcessing, nil
	case "your order is ready", "order ready", "ready for pickup":
		return StatusReady, nil
	case "delivered":
		return StatusDelivered, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return "", ErrInvalidDeliveryStatus
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return PaymentPending, nil
	case "paid":
		return PaymentPaid, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

// Terminal reports whether no further transition is permitted.
func (s DeliveryStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// InFlight reports whether the order should surface on the customer's home
// screen as currently being worked on.
func (s DeliveryStatus) InFlight() bool {
	return s == StatusProcessing || s == StatusReady
}

// CanTransition reports whether an admin may move an order from one delivery
// status to another. The workflow only moves forward; Cancelled is reachable
// from any non-terminal status; re-applying the current status is a no-op
// that is always allowed, so a redundant admin action never errors.
func CanTransition(from, to DeliveryStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}
