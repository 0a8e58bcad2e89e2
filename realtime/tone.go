package realtime

// ToneAlerter abstracts the looping alert tone the admin console plays while
// unresolved orders sit in the queue. The watcher acquires a handle when the
// queue becomes non-empty and releases it when the queue drains; it never
// holds more than one handle at a time.
type ToneAlerter interface {
	PlayLooping() (ToneHandle, error)
}

type ToneHandle interface {
	Stop() error
	Release() error
}

// HubAlerter implements the tone over the admin websocket feed: the backend
// tells every connected console when to start and stop its local alert
// sound. The handle maps one "start" to exactly one eventual "stop".
type HubAlerter struct {
	hub *Hub
}

func NewHubAlerter(hub *Hub) *HubAlerter {
	return &HubAlerter{hub: hub}
}

func (a *HubAlerter) PlayLooping() (ToneHandle, error) {
	a.hub.Broadcast("tone", "start")
	return &hubToneHandle{hub: a.hub}, nil
}

type hubToneHandle struct {
	hub *Hub
}

func (h *hubToneHandle) Stop() error {
	h.hub.Broadcast("tone", "stop")
	return nil
}

func (h *hubToneHandle) Release() error {
	return nil
}
