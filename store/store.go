package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when no document exists at the path.
var ErrNotFound = errors.New("store: document not found")

// Document is one stored document plus its id.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Store is the document database the whole service runs against. Paths are
// slash-separated Firestore-style paths: an odd number of components names a
// collection ("users/u1/cart"), an even number names a document
// ("users/u1/cart/i1").
//
// Delete is idempotent: deleting a missing document is not an error. That is
// load-bearing for the pending-order workflow, where two admins may race to
// resolve the same order and the loser's delete must no-op.
type Store interface {
	// Create adds a document with a store-generated id and returns the id.
	Create(ctx context.Context, collectionPath string, data map[string]interface{}) (string, error)
	// Set writes a document at a caller-chosen path, replacing any existing one.
	Set(ctx context.Context, docPath string, data map[string]interface{}) error
	// Get reads one document, or ErrNotFound.
	Get(ctx context.Context, docPath string) (map[string]interface{}, error)
	// List reads every document in a collection.
	List(ctx context.Context, collectionPath string) ([]Document, error)
	// Update merges partial data into an existing document.
	Update(ctx context.Context, docPath string, partial map[string]interface{}) error
	// Delete removes a document; missing documents are a no-op.
	Delete(ctx context.Context, docPath string) error
	// Subscribe opens a change stream over a collection. Every change delivers
	// the full current snapshot, not a diff, starting with the state at
	// subscription time. The stream ends when ctx is done or Cancel is called.
	Subscribe(ctx context.Context, collectionPath string) (*Subscription, error)
}

// Subscription is a cancelable full-snapshot change stream. Callers own the
// subscription for exactly as long as their view or watcher lives and must
// call Cancel on teardown.
type Subscription struct {
	snapshots chan []Document
	cancel    func()
	once      sync.Once
}

func newSubscription(buffer int, cancel func()) *Subscription {
	return &Subscription{
		snapshots: make(chan []Document, buffer),
		cancel:    cancel,
	}
}

// Snapshots delivers full collection snapshots in server write order. The
// channel is closed once the subscription ends.
func (s *Subscription) Snapshots() <-chan []Document {
	return s.snapshots
}

// Cancel tears the subscription down. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// publish hands a snapshot to the subscriber without ever blocking the
// writer: if the subscriber is behind, the oldest queued snapshot is dropped
// in favor of the newer one. Consumers only ever care about the latest state.
func (s *Subscription) publish(snap []Document) {
	for {
		select {
		case s.snapshots <- snap:
			return
		default:
			select {
			case <-s.snapshots:
			default:
			}
		}
	}
}
