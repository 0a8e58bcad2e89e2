package models

// PendingOrder mirrors an Order into the shared pendingorders collection
// while it awaits first admin action. UserID and OrderID point back at the
// owning user and the mirrored order document; the mirror is deleted the
// moment an admin accepts or declines it.
type PendingOrder struct {
	ID string `json:"id"`
	Order
	UserID  string `json:"userId"`
	OrderID string `json:"orderId"`
}

func (p PendingOrder) Doc() map[string]interface{} {
	d := p.Order.Doc()
	d["userId"] = p.UserID
	d["orderId"] = p.OrderID
	return d
}

func PendingOrderFromDoc(id string, data map[string]interface{}) PendingOrder {
	return PendingOrder{
		ID:      id,
		Order:   OrderFromDoc("", data),
		UserID:  docString(data["userId"]),
		OrderID: docString(data["orderId"]),
	}
}
