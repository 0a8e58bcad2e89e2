package realtime

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

// ActiveOrderWatcher follows one user's orders collection and derives the
// single "currently active" order the home screen banners: the first order
// in snapshot order whose status is in flight (processing or ready,
// including the historical synonym strings). If several orders are in flight
// at once only the first is surfaced.
type ActiveOrderWatcher struct {
	sub     *store.Subscription
	updates chan *models.Order
}

func NewActiveOrderWatcher(ctx context.Context, st store.Store, log *logrus.Logger, userID string) (*ActiveOrderWatcher, error) {
	sub, err := st.Subscribe(ctx, store.OrdersPath(userID))
	if err != nil {
		return nil, err
	}

	w := &ActiveOrderWatcher{
		sub:     sub,
		updates: make(chan *models.Order, 16),
	}

	go func() {
		defer close(w.updates)
		for docs := range sub.Snapshots() {
			active := findActive(docs)
			select {
			case w.updates <- active:
			default:
				// Drop the stale state; only the latest derivation matters.
				select {
				case <-w.updates:
				default:
				}
				w.updates <- active
			}
		}
	}()

	return w, nil
}

// Updates delivers the derived active order after every snapshot; nil means
// no order is in flight. Closed when the watcher is closed.
func (w *ActiveOrderWatcher) Updates() <-chan *models.Order {
	return w.updates
}

func (w *ActiveOrderWatcher) Close() {
	w.sub.Cancel()
}

func findActive(docs []store.Document) *models.Order {
	for _, d := range docs {
		order := models.OrderFromDoc(d.ID, d.Data)
		if order.DeliveryStatus.InFlight() {
			return &order
		}
	}
	return nil
}

// ActiveOrder is the one-shot form of the same derivation, for the plain
// GET endpoint.
func ActiveOrder(ctx context.Context, st store.Store, userID string) (*models.Order, error) {
	docs, err := st.List(ctx, store.OrdersPath(userID))
	if err != nil {
		return nil, err
	}
	return findActive(docs), nil
}
