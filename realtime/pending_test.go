package realtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type fakeTone struct {
	mu       sync.Mutex
	stopped  bool
	released bool
}

func (f *fakeTone) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	return nil
}

func (f *fakeTone) Release() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = true
	return nil
}

func (f *fakeTone) done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped && f.released
}

type fakeAlerter struct {
	mu      sync.Mutex
	handles []*fakeTone
}

func (f *fakeAlerter) PlayLooping() (ToneHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := &fakeTone{}
	f.handles = append(f.handles, h)
	return h, nil
}

func (f *fakeAlerter) plays() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handles)
}

func (f *fakeAlerter) handle(i int) *fakeTone {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handles[i]
}

func pendingDoc(userID, orderID string) map[string]interface{} {
	return models.PendingOrder{
		Order:   models.Order{DeliveryStatus: models.StatusAwaitingAcceptance, CreatedAt: time.Now()},
		UserID:  userID,
		OrderID: orderID,
	}.Doc()
}

func TestPendingWatcherToneLifecycle(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	alerter := &fakeAlerter{}

	w := NewPendingWatcher(st, alerter, nil, testLogger())
	require.NoError(t, w.Start(ctx))
	defer w.Close()

	// empty queue at startup: silence
	assert.False(t, w.TonePlaying())
	assert.Equal(t, 0, alerter.plays())

	// first arrival starts the tone
	id1, err := st.Create(ctx, store.PendingOrdersPath, pendingDoc("u1", "o1"))
	require.NoError(t, err)
	require.Eventually(t, w.TonePlaying, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, alerter.plays())

	// a second arrival does not restart it
	id2, err := st.Create(ctx, store.PendingOrdersPath, pendingDoc("u2", "o2"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(w.Snapshot()) == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, alerter.plays())
	assert.True(t, w.TonePlaying())

	// removing one of two keeps it playing
	require.NoError(t, st.Delete(ctx, store.PendingOrderPath(id1)))
	require.Eventually(t, func() bool { return len(w.Snapshot()) == 1 }, time.Second, 10*time.Millisecond)
	assert.True(t, w.TonePlaying())
	assert.False(t, alerter.handle(0).done())

	// draining the queue stops and releases
	require.NoError(t, st.Delete(ctx, store.PendingOrderPath(id2)))
	require.Eventually(t, func() bool { return !w.TonePlaying() }, time.Second, 10*time.Millisecond)
	assert.True(t, alerter.handle(0).done())

	// the next arrival starts a fresh handle
	_, err = st.Create(ctx, store.PendingOrdersPath, pendingDoc("u3", "o3"))
	require.NoError(t, err)
	require.Eventually(t, w.TonePlaying, time.Second, 10*time.Millisecond)
	assert.Equal(t, 2, alerter.plays())
}

func TestPendingWatcherSnapshot(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	_, err := st.Create(ctx, store.PendingOrdersPath, pendingDoc("u1", "o1"))
	require.NoError(t, err)

	w := NewPendingWatcher(st, &fakeAlerter{}, nil, testLogger())
	require.NoError(t, w.Start(ctx))
	defer w.Close()

	require.Eventually(t, func() bool { return len(w.Snapshot()) == 1 }, time.Second, 10*time.Millisecond)
	snap := w.Snapshot()
	assert.Equal(t, "u1", snap[0].UserID)
	assert.Equal(t, "o1", snap[0].OrderID)
}

func TestPendingWatcherCloseReleasesTone(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	alerter := &fakeAlerter{}

	_, err := st.Create(ctx, store.PendingOrdersPath, pendingDoc("u1", "o1"))
	require.NoError(t, err)

	w := NewPendingWatcher(st, alerter, nil, testLogger())
	require.NoError(t, w.Start(ctx))
	require.Eventually(t, w.TonePlaying, time.Second, 10*time.Millisecond)

	w.Close()
	assert.False(t, w.TonePlaying())
	assert.True(t, alerter.handle(0).done())
}

func TestPendingWatcherBroadcastsToHub(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	hub := NewHub(testLogger())

	w := NewPendingWatcher(st, &fakeAlerter{}, hub, testLogger())
	require.NoError(t, w.Start(ctx))
	defer w.Close()

	// no connected clients; broadcasting must still be safe
	_, err := st.Create(ctx, store.PendingOrdersPath, pendingDoc("u1", "o1"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(w.Snapshot()) == 1 }, time.Second, 10*time.Millisecond)
}
