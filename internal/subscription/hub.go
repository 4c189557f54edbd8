package subscription

import (
	"sync"

	"courtbooker/internal/models"
)

// Filter scopes a subscription to one date or one phone number, mirroring
// the two live queries the booking screens run.
type Filter struct {
	Date  string
	Phone string
}

func (f Filter) matches(b models.Booking) bool {
	if f.Date != "" && f.Date == b.Date {
		return true
	}
	if f.Phone != "" && f.Phone == b.Phone {
		return true
	}
	return false
}

type subscriber struct {
	filter Filter
	ch     chan struct{}
}

// Hub fans out change notifications to watchers. A notification only says
// "something matching your filter changed"; watchers re-query the store for a
// fresh snapshot, so the calculator stays a pure function over snapshots.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]subscriber
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[int]subscriber),
	}
}

// Subscribe registers a watcher for bookings matching the filter. The
// returned cancel func releases the subscription and must be called on view
// teardown. Pending notifications are coalesced: the channel holds at most
// one.
func (h *Hub) Subscribe(f Filter) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	sub := subscriber{
		filter: f,
		ch:     make(chan struct{}, 1),
	}
	h.subs[id] = sub

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}

	return sub.ch, cancel
}

// Notify wakes every subscriber whose filter matches the created or deleted
// booking. Never blocks.
func (h *Hub) Notify(b models.Booking) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		if !sub.filter.matches(b) {
			continue
		}
		select {
		case sub.ch <- struct{}{}:
		default:
		}
	}
}
