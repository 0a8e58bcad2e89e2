package realtime

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

// PendingWatcher owns the service's live view of the shared pendingorders
// queue. It holds the latest full snapshot, rebroadcasts every change to the
// admin feed, and runs the alert tone: start when the queue becomes
// non-empty, stop and release when it drains. Start and stop are idempotent;
// a non-empty snapshot replacing another non-empty snapshot never restarts
// the tone.
type PendingWatcher struct {
	st      store.Store
	alerter ToneAlerter
	hub     *Hub
	log     *logrus.Logger

	mu       sync.Mutex
	snapshot []models.PendingOrder
	tone     ToneHandle

	sub  *store.Subscription
	done chan struct{}
}

func NewPendingWatcher(st store.Store, alerter ToneAlerter, hub *Hub, log *logrus.Logger) *PendingWatcher {
	return &PendingWatcher{
		st:      st,
		alerter: alerter,
		hub:     hub,
		log:     log,
		done:    make(chan struct{}),
	}
}

// Start subscribes to the queue and consumes snapshots until Close or ctx
// cancellation.
func (w *PendingWatcher) Start(ctx context.Context) error {
	sub, err := w.st.Subscribe(ctx, store.PendingOrdersPath)
	if err != nil {
		return err
	}
	w.sub = sub

	go func() {
		defer close(w.done)
		for docs := range sub.Snapshots() {
			orders := make([]models.PendingOrder, 0, len(docs))
			for _, d := range docs {
				orders = append(orders, models.PendingOrderFromDoc(d.ID, d.Data))
			}
			w.apply(orders)
		}
	}()
	return nil
}

func (w *PendingWatcher) apply(orders []models.PendingOrder) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.snapshot = orders

	if len(orders) > 0 && w.tone == nil {
		handle, err := w.alerter.PlayLooping()
		if err != nil {
			w.log.WithError(err).Error("failed to start alert tone")
		} else {
			w.tone = handle
		}
	} else if len(orders) == 0 && w.tone != nil {
		w.releaseToneLocked()
	}

	if w.hub != nil {
		w.hub.Broadcast("pendingorders", orders)
	}
	w.log.WithField("pending", len(orders)).Debug("pending orders snapshot applied")
}

func (w *PendingWatcher) releaseToneLocked() {
	if err := w.tone.Stop(); err != nil {
		w.log.WithError(err).Error("failed to stop alert tone")
	}
	if err := w.tone.Release(); err != nil {
		w.log.WithError(err).Error("failed to release alert tone")
	}
	w.tone = nil
}

// Snapshot returns a copy of the last observed queue state.
func (w *PendingWatcher) Snapshot() []models.PendingOrder {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.PendingOrder, len(w.snapshot))
	copy(out, w.snapshot)
	return out
}

// TonePlaying reports whether the alert tone handle is currently held.
func (w *PendingWatcher) TonePlaying() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tone != nil
}

// Close cancels the subscription and releases the tone if still held. The
// watcher always tears both down no matter how shutdown happens.
func (w *PendingWatcher) Close() {
	if w.sub != nil {
		w.sub.Cancel()
		<-w.done
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.tone != nil {
		w.releaseToneLocked()
	}
}
