// Package events is the in-process change feed behind live subscriptions.
//
// The hub carries no payload: a signal only says "this collection changed",
// and subscribers re-read the store to get the latest committed state.
package events

import (
	"sync"

	"fenceworks/internal/usecase/interfaces"
)

type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]chan struct{}
}

var _ interfaces.IChangeNotifier = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[uint64]chan struct{})}
}

// Notify wakes every subscriber of collection. It never blocks: a subscriber
// that already has a pending signal keeps just that one.
func (h *Hub) Notify(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[collection] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe registers a listener. cancel removes it and closes the channel;
// calling cancel more than once is safe.
func (h *Hub) Subscribe(collection string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan struct{}, 1)
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[uint64]chan struct{})
	}
	h.subs[collection][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[collection], id)
			if len(h.subs[collection]) == 0 {
				delete(h.subs, collection)
			}
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers reports how many listeners a collection has.
func (h *Hub) Subscribers(collection string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[collection])
}
