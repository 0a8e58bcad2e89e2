package models

import "time"

// CartItem is one named product entry in a user's cart. Name is the
// de-duplication key: re-adding an item with the same name merges quantities
// instead of creating a second line.
type CartItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	Total        float64   `json:"total"`
	Instructions string    `json:"instructions"`
	Image        string    `json:"image"`
	IsVeg        bool      `json:"isVeg"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Doc renders the item in the stored field layout. The document id is only
// included when known, so a freshly created item round-trips cleanly.
func (i CartItem) Doc() map[string]interface{} {
	d := map[string]interface{}{
		"name":         i.Name,
		"quantity":     i.Quantity,
		"price":        i.Price,
		"total":        i.Total,
		"instructions": i.Instructions,
		"image":        i.Image,
		"isVeg":        i.IsVeg,
		"createdAt":    i.CreatedAt,
	}
	if i.ID != "" {
		d["id"] = i.ID
	}
	return d
}

func CartItemFromDoc(id string, data map[string]interface{}) CartItem {
	if id == "" {
		id = docString(data["id"])
	}
	return CartItem{
		ID:           id,
		Name:         docString(data["name"]),
		Quantity:     docInt(data["quantity"]),
		Price:        docFloat(data["price"]),
		Total:        docFloat(data["total"]),
		Instructions: docString(data["instructions"]),
		Image:        docString(data["image"]),
		IsVeg:        docBool(data["isVeg"]),
		CreatedAt:    docTime(data["createdAt"]),
	}
}
