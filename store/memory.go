package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store with the same contract as the Firestore
// implementation: generated ids, merge updates, idempotent deletes, and
// ordered full-snapshot subscriptions. It backs every test and lets the
// service run locally without credentials.
type Memory struct {
	mu    sync.Mutex
	colls map[string]map[string]map[string]interface{}
	order map[string][]string
	subs  map[string][]*Subscription
}

func NewMemory() *Memory {
	return &Memory{
		colls: make(map[string]map[string]map[string]interface{}),
		order: make(map[string][]string),
		subs:  make(map[string][]*Subscription),
	}
}

func (m *Memory) Create(ctx context.Context, collectionPath string, data map[string]interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	coll := m.colls[collectionPath]
	if coll == nil {
		coll = make(map[string]map[string]interface{})
		m.colls[collectionPath] = coll
	}
	coll[id] = copyDoc(data)
	m.order[collectionPath] = append(m.order[collectionPath], id)
	m.notify(collectionPath)
	return id, nil
}

func (m *Memory) Set(ctx context.Context, docPath string, data map[string]interface{}) error {
	collectionPath, id := splitDocPath(docPath)

	m.mu.Lock()
	defer m.mu.Unlock()

	coll := m.colls[collectionPath]
	if coll == nil {
		coll = make(map[string]map[string]interface{})
		m.colls[collectionPath] = coll
	}
	if _, exists := coll[id]; !exists {
		m.order[collectionPath] = append(m.order[collectionPath], id)
	}
	coll[id] = copyDoc(data)
	m.notify(collectionPath)
	return nil
}

func (m *Memory) Get(ctx context.Context, docPath string) (map[string]interface{}, error) {
	collectionPath, id := splitDocPath(docPath)

	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.colls[collectionPath][id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDoc(doc), nil
}

func (m *Memory) List(ctx context.Context, collectionPath string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(collectionPath), nil
}

func (m *Memory) Update(ctx context.Context, docPath string, partial map[string]interface{}) error {
	collectionPath, id := splitDocPath(docPath)

	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.colls[collectionPath][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range copyDoc(partial) {
		doc[k] = v
	}
	m.notify(collectionPath)
	return nil
}

func (m *Memory) Delete(ctx context.Context, docPath string) error {
	collectionPath, id := splitDocPath(docPath)

	m.mu.Lock()
	defer m.mu.Unlock()

	coll := m.colls[collectionPath]
	if _, ok := coll[id]; !ok {
		return nil
	}
	delete(coll, id)
	ids := m.order[collectionPath]
	for i, existing := range ids {
		if existing == id {
			m.order[collectionPath] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	m.notify(collectionPath)
	return nil
}

func (m *Memory) Subscribe(ctx context.Context, collectionPath string) (*Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sub *Subscription
	sub = newSubscription(64, func() {
		m.unsubscribe(collectionPath, sub)
	})
	m.subs[collectionPath] = append(m.subs[collectionPath], sub)

	// Deliver the state at subscription time before any change, mirroring the
	// remote store's onSnapshot behavior.
	sub.publish(m.snapshotLocked(collectionPath))

	if ctx != nil && ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			sub.Cancel()
		}()
	}
	return sub, nil
}

func (m *Memory) unsubscribe(collectionPath string, sub *Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := m.subs[collectionPath]
	for i, existing := range subs {
		if existing == sub {
			m.subs[collectionPath] = append(subs[:i], subs[i+1:]...)
			close(sub.snapshots)
			return
		}
	}
}

// notify publishes the current snapshot to every subscriber of the
// collection. Caller holds mu, so delivery order matches write order for
// each subscriber.
func (m *Memory) notify(collectionPath string) {
	if len(m.subs[collectionPath]) == 0 {
		return
	}
	snap := m.snapshotLocked(collectionPath)
	for _, sub := range m.subs[collectionPath] {
		sub.publish(snap)
	}
}

func (m *Memory) snapshotLocked(collectionPath string) []Document {
	ids := m.order[collectionPath]
	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, Document{ID: id, Data: copyDoc(m.colls[collectionPath][id])})
	}
	return docs
}

// copyDoc copies a document one container level deep, enough to keep callers
// from mutating stored state through returned maps (order documents nest
// cart item maps inside a slice).
func copyDoc(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case map[string]interface{}:
			inner := make(map[string]interface{}, len(val))
			for ik, iv := range val {
				inner[ik] = iv
			}
			out[k] = inner
		case []interface{}:
			list := make([]interface{}, len(val))
			for i, el := range val {
				if em, ok := el.(map[string]interface{}); ok {
					inner := make(map[string]interface{}, len(em))
					for ik, iv := range em {
						inner[ik] = iv
					}
					list[i] = inner
				} else {
					list[i] = el
				}
			}
			out[k] = list
		default:
			out[k] = v
		}
	}
	return out
}
