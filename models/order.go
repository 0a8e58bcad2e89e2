package models

import "time"

// Order is a user's permanent order record under users/{uid}/orders. The
// cart items are a snapshot taken at checkout, not a live reference, and
// GrandTotal is fixed at creation time and never recomputed.
type Order struct {
	ID                string         `json:"id"`
	CartItems         []CartItem     `json:"cartItems"`
	DeliveryMethod    string         `json:"deliveryMethod"`
	DeliveryStatus    DeliveryStatus `json:"deliveryStatus"`
	PaymentStatus     PaymentStatus  `json:"paymentStatus"`
	GrandTotal        float64        `json:"grandTotal"`
	CreatedAt         time.Time      `json:"createdAt"`
	OrderName         string         `json:"orderName"`
	OrderMobileNumber string         `json:"orderMobileNumber"`
	ArrivalTime       string         `json:"arrivalTime"`
	OrderAccepted     bool           `json:"orderAccepted"`
}

func (o Order) Doc() map[string]interface{} {
	items := make([]interface{}, 0, len(o.CartItems))
	for _, it := range o.CartItems {
		items = append(items, it.Doc())
	}
	return map[string]interface{}{
		"cartItems":         items,
		"deliveryMethod":    o.DeliveryMethod,
		"deliveryStatus":    string(o.DeliveryStatus),
		"paymentStatus":     string(o.PaymentStatus),
		"grandTotal":        o.GrandTotal,
		"createdAt":         o.CreatedAt,
		"orderName":         o.OrderName,
		"orderMobileNumber": o.OrderMobileNumber,
		"arrivalTime":       o.ArrivalTime,
		"orderAccepted":     o.OrderAccepted,
	}
}

// OrderFromDoc decodes a stored order. The delivery status is normalized
// through ParseDeliveryStatus so historical synonym strings collapse to the
// canonical value; an unrecognized status is kept verbatim rather than
// dropped, so nothing silently disappears from an order history listing.
func OrderFromDoc(id string, data map[string]interface{}) Order {
	o := Order{
		ID:                id,
		DeliveryMethod:    docString(data["deliveryMethod"]),
		GrandTotal:        docFloat(data["grandTotal"]),
		CreatedAt:         docTime(data["createdAt"]),
		OrderName:         docString(data["orderName"]),
		OrderMobileNumber: docString(data["orderMobileNumber"]),
		ArrivalTime:       docString(data["arrivalTime"]),
		OrderAccepted:     docBool(data["orderAccepted"]),
	}

	if st, err := ParseDeliveryStatus(docString(data["deliveryStatus"])); err == nil {
		o.DeliveryStatus = st
	} else {
		o.DeliveryStatus = DeliveryStatus(docString(data["deliveryStatus"]))
	}
	if ps, err := ParsePaymentStatus(docString(data["paymentStatus"])); err == nil {
		o.PaymentStatus = ps
	} else {
		o.PaymentStatus = PaymentStatus(docString(data["paymentStatus"]))
	}

	if raw, ok := data["cartItems"].([]interface{}); ok {
		for _, el := range raw {
			if m, ok := el.(map[string]interface{}); ok {
				o.CartItems = append(o.CartItems, CartItemFromDoc("", m))
			}
		}
	}
	return o
}
