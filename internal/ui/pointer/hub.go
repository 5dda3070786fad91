// Package pointer dispatches pointer presses to scoped click-away subscriptions.
package pointer

import (
	"weathergrip/internal/domain"
)

// RegionFunc reports the current bounds of a widget. ok is false while the
// widget has not been laid out yet.
type RegionFunc func() (region domain.Region, ok bool)

type subscription struct {
	id        uint64
	region    RegionFunc
	onOutside func()
}

// Hub delivers presses to subscribers whose region does not contain them.
// It is used from the UI update loop only and is not safe for concurrent use.
type Hub struct {
	nextID uint64
	subs   []subscription
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers onOutside to run for every press outside region.
// The returned release function removes the subscription; extra calls are no-ops.
func (h *Hub) Subscribe(region RegionFunc, onOutside func()) (release func()) {
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, region: region, onOutside: onOutside})

	return func() {
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

// Press dispatches a press at cell (x, y)
func (h *Hub) Press(x, y int) {
	// Callbacks may release their own subscription
	subs := make([]subscription, len(h.subs))
	copy(subs, h.subs)

	for _, s := range subs {
		r, ok := s.region()
		if ok && r.Contains(x, y) {
			continue
		}
		s.onOutside()
	}
}

// Len returns the number of live subscriptions
func (h *Hub) Len() int {
	return len(h.subs)
}
