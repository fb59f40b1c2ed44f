// Package realtime fans out per-party change signals to in-process
// subscribers.
//
// Signals carry no payload. A subscriber that sees one re-reads the party
// from the store; several publishes before it reads collapse into one
// pending signal. Delivery is at-most-once and unordered across parties.
// A Hub only sees publishes from its own process.
package realtime

import (
	"sync"

	"github.com/mmynk/gymparty/internal/metrics"
)

// Hub routes Publish calls to the subscriptions of the same party.
type Hub struct {
	mu      sync.Mutex
	parties map[string]map[*Subscription]struct{}
	metrics *metrics.Metrics
}

// NewHub creates an empty hub. m may be nil.
func NewHub(m *metrics.Metrics) *Hub {
	return &Hub{
		parties: make(map[string]map[*Subscription]struct{}),
		metrics: m,
	}
}

// Publish signals every subscription of partyID. It never blocks: a
// subscriber that already has a pending signal is skipped.
func (h *Hub) Publish(partyID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.parties[partyID] {
		select {
		case sub.ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe opens a subscription to partyID. The caller must Close it.
func (h *Hub) Subscribe(partyID string) *Subscription {
	sub := &Subscription{
		hub:     h,
		partyID: partyID,
		ch:      make(chan struct{}, 1),
	}

	h.mu.Lock()
	subs, ok := h.parties[partyID]
	if !ok {
		subs = make(map[*Subscription]struct{})
		h.parties[partyID] = subs
	}
	subs[sub] = struct{}{}
	h.mu.Unlock()

	h.metrics.SubscriberOpened()
	return sub
}

// Subscribers reports the number of open subscriptions of partyID.
func (h *Hub) Subscribers(partyID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.parties[partyID])
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	subs := h.parties[sub.partyID]
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.parties, sub.partyID)
	}
	h.mu.Unlock()

	h.metrics.SubscriberClosed()
}

// Subscription is one consumer's view of a party's change signals.
type Subscription struct {
	hub     *Hub
	partyID string
	ch      chan struct{}
	once    sync.Once
}

// C receives a value whenever the party may have changed since the last
// receive. It is never closed.
func (s *Subscription) C() <-chan struct{} {
	return s.ch
}

// PartyID is the party this subscription follows.
func (s *Subscription) PartyID() string {
	return s.partyID
}

// Close removes the subscription from its hub. It is safe to call more
// than once.
func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.remove(s) })
}
