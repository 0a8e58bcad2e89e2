package cartControllers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

type AddItemInput struct {
	Name         string  `json:"name" binding:"required"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Instructions string  `json:"instructions"`
	Image        string  `json:"image"`
	IsVeg        bool    `json:"isVeg"`
}

// AddItem adds a line item to the user's cart, merging by name: an existing
// item with the same name has its quantity incremented and its total
// recomputed against the incoming price, and the incoming instructions
// replace the stored ones. Zero or negative incoming quantities are not
// guarded against; the storefront never sends them.
func AddItem(ctx context.Context, st store.Store, userID string, in AddItemInput) (models.CartItem, error) {
	docs, err := st.List(ctx, store.CartPath(userID))
	if err != nil {
		return models.CartItem{}, err
	}

	for _, d := range docs {
		existing := models.CartItemFromDoc(d.ID, d.Data)
		if existing.Name != in.Name {
			continue
		}

		existing.Quantity += in.Quantity
		existing.Total = float64(existing.Quantity) * in.Price
		existing.Instructions = in.Instructions
		existing.CreatedAt = time.Now()

		err := st.Update(ctx, store.CartItemPath(userID, existing.ID), map[string]interface{}{
			"quantity":     existing.Quantity,
			"total":        existing.Total,
			"instructions": existing.Instructions,
			"createdAt":    existing.CreatedAt,
		})
		if err != nil {
			return models.CartItem{}, err
		}
		return existing, nil
	}

	item := models.CartItem{
		Name:         in.Name,
		Quantity:     in.Quantity,
		Price:        in.Price,
		Total:        float64(in.Quantity) * in.Price,
		Instructions: in.Instructions,
		Image:        in.Image,
		IsVeg:        in.IsVeg,
		CreatedAt:    time.Now(),
	}
	id, err := st.Create(ctx, store.CartPath(userID), item.Doc())
	if err != nil {
		return models.CartItem{}, err
	}
	item.ID = id
	return item, nil
}

// UpdateQuantity sets a line item's quantity and recomputes its total. A
// quantity below one removes the item instead.
func UpdateQuantity(ctx context.Context, st store.Store, userID, itemID string, quantity int) error {
	if quantity < 1 {
		return RemoveItem(ctx, st, userID, itemID)
	}

	data, err := st.Get(ctx, store.CartItemPath(userID, itemID))
	if err != nil {
		return err
	}
	item := models.CartItemFromDoc(itemID, data)

	return st.Update(ctx, store.CartItemPath(userID, itemID), map[string]interface{}{
		"quantity": quantity,
		"total":    float64(quantity) * item.Price,
	})
}

func RemoveItem(ctx context.Context, st store.Store, userID, itemID string) error {
	return st.Delete(ctx, store.CartItemPath(userID, itemID))
}

// ClearCart deletes every line item for the user. Best effort, no
// transaction: a failed delete does not undo the ones that already
// succeeded. Used after checkout.
func ClearCart(ctx context.Context, st store.Store, log *logrus.Logger, userID string) error {
	docs, err := st.List(ctx, store.CartPath(userID))
	if err != nil {
		return err
	}

	var firstErr error
	for _, d := range docs {
		if err := st.Delete(ctx, store.CartItemPath(userID, d.ID)); err != nil {
			log.WithError(err).WithField("item_id", d.ID).Error("failed to delete cart item")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// GetCart lists the user's cart in snapshot order.
func GetCart(ctx context.Context, st store.Store, userID string) ([]models.CartItem, error) {
	docs, err := st.List(ctx, store.CartPath(userID))
	if err != nil {
		return nil, err
	}
	items := make([]models.CartItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, models.CartItemFromDoc(d.ID, d.Data))
	}
	return items, nil
}
