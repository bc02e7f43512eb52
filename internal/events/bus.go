package events

import "sync"

// Topic names used across the storefront.
const (
	TopicProfileUpdated    = "profile.updated"
	TopicOrderStatusChange = "order.status_changed"
)

// ProfileUpdated is published after the user profile is written, so readers
// holding a copy (delivery-address default, checkout) can refresh.
type ProfileUpdated struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// OrderStatusChanged is published on every order status transition.
type OrderStatusChanged struct {
	OrderID string
	Status  string
}

// Bus is a minimal typed observer registry with synchronous fan-out:
// Publish invokes listeners in registration order on the caller's goroutine,
// so delivery ordering is deterministic.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(payload any)
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[string][]func(payload any))}
}

func (b *Bus) Subscribe(topic string, fn func(payload any)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[topic] = append(b.listeners[topic], fn)
}

func (b *Bus) Publish(topic string, payload any) {
	b.mu.RLock()
	fns := make([]func(payload any), len(b.listeners[topic]))
	copy(fns, b.listeners[topic])
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(payload)
	}
}
