package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_FanOutInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.Subscribe(TopicProfileUpdated, func(payload any) {
		got = append(got, "first")
	})
	bus.Subscribe(TopicProfileUpdated, func(payload any) {
		got = append(got, "second")
	})

	bus.Publish(TopicProfileUpdated, ProfileUpdated{Name: "Demo"})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestBus_PayloadDelivered(t *testing.T) {
	bus := NewBus()
	var got ProfileUpdated

	bus.Subscribe(TopicProfileUpdated, func(payload any) {
		got = payload.(ProfileUpdated)
	})

	bus.Publish(TopicProfileUpdated, ProfileUpdated{Name: "Demo", Address: "1 Test St"})

	assert.Equal(t, "Demo", got.Name)
	assert.Equal(t, "1 Test St", got.Address)
}

func TestBus_TopicsAreIndependent(t *testing.T) {
	bus := NewBus()
	calls := 0

	bus.Subscribe(TopicOrderStatusChange, func(payload any) { calls++ })

	bus.Publish(TopicProfileUpdated, ProfileUpdated{})
	assert.Equal(t, 0, calls)

	bus.Publish(TopicOrderStatusChange, OrderStatusChanged{OrderID: "1", Status: "preparing"})
	assert.Equal(t, 1, calls)
}

func TestBus_PublishWithoutListenersIsNoop(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.Publish(TopicOrderStatusChange, OrderStatusChanged{})
	})
}
