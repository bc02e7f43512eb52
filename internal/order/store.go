package order

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"tastebite-be/internal/delivery"
	"tastebite-be/internal/events"
	"tastebite-be/internal/geo"
	"tastebite-be/internal/kvstore"
	"tastebite-be/internal/logger"

	"go.uber.org/zap"
)

// Store owns the order collection. Mutations are read-modify-write over the
// whole list with the serialized result persisted under a single key, which
// is consistent with the scale (tens of orders, one storefront).
type Store struct {
	mu         sync.RWMutex
	orders     []Order
	kv         kvstore.Store
	gateway    *geo.Gateway
	scheduler  *Scheduler
	bus        *events.Bus
	restaurant string
	now        func() time.Time
}

func NewStore(kv kvstore.Store, gateway *geo.Gateway, scheduler *Scheduler, bus *events.Bus, restaurantAddress string) (*Store, error) {
	s := &Store{
		kv:         kv,
		gateway:    gateway,
		scheduler:  scheduler,
		bus:        bus,
		restaurant: restaurantAddress,
		now:        time.Now,
	}

	if err := s.load(context.Background()); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, kvstore.KeyOrders)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	if !ok {
		return nil
	}

	if err := json.Unmarshal([]byte(raw), &s.orders); err != nil {
		return fmt.Errorf("decode stored orders: %w", err)
	}

	// Timers do not survive a restart: restored orders stay at the status
	// that was last written and stop progressing.
	return nil
}

func (s *Store) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.orders)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to encode orders", zap.Error(err))
		return
	}

	if err := s.kv.Set(ctx, kvstore.KeyOrders, string(raw)); err != nil {
		logger.FromCtx(ctx).Error("failed to persist orders", zap.Error(err))
	}
}

// Create places an order: it resolves the delivery distance (never failing,
// see geo.Gateway), computes the estimate, persists the new collection and
// arms the lifecycle timers. Most recent orders come first.
func (s *Store) Create(ctx context.Context, draft Draft) (*Order, error) {
	if len(draft.Items) == 0 {
		return nil, ErrEmptyDraft
	}

	now := s.now()
	distanceKm := s.gateway.DistanceBetween(ctx, s.restaurant, draft.DeliveryAddress)
	totalMinutes := delivery.EstimateMinutes(distanceKm)

	o := Order{
		ID:                strconv.FormatInt(now.UnixMilli(), 10),
		Items:             draft.Items,
		Total:             draft.ItemsTotal + draft.DeliveryCharge,
		PlacedAt:          now,
		Status:            StatusPending,
		EstimatedDelivery: now.Add(time.Duration(totalMinutes) * time.Minute),
		DeliveryCharge:    draft.DeliveryCharge,
		DeliveryAddress:   draft.DeliveryAddress,
	}

	s.mu.Lock()
	s.orders = append([]Order{o}, s.orders...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.scheduler.Schedule(o.ID, totalMinutes, func(orderID string, status Status) {
		s.UpdateStatus(context.Background(), orderID, status)
	})

	logger.FromCtx(ctx).Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int("total", o.Total),
		zap.Float64("distance_km", distanceKm),
		zap.Int("estimate_minutes", totalMinutes),
	)

	return &o, nil
}

// RestaurantAddress is the fixed origin every delivery is measured from.
func (s *Store) RestaurantAddress() string {
	return s.restaurant
}

// UpdateStatus replaces the status of the given order and persists. An
// unknown order id is a no-op.
func (s *Store) UpdateStatus(ctx context.Context, orderID string, status Status) {
	s.mu.Lock()
	updated := false
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			updated = true
			break
		}
	}
	if updated {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if updated {
		s.bus.Publish(events.TopicOrderStatusChange, events.OrderStatusChanged{
			OrderID: orderID,
			Status:  string(status),
		})
	}
}

// UpdateRating records a 1-5 rating. The store allows re-rating; limiting a
// delivered order to one rating is a presentation-layer policy.
func (s *Store) UpdateRating(ctx context.Context, orderID string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			r := rating
			s.orders[i].Rating = &r
			s.persistLocked(ctx)
			return nil
		}
	}

	return ErrOrderNotFound
}

// Clear empties the collection and its persisted state, and cancels every
// in-flight lifecycle timer so stale transitions cannot fire against the
// emptied store.
func (s *Store) Clear(ctx context.Context) error {
	s.scheduler.CancelAll()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = nil
	if err := s.kv.Remove(ctx, kvstore.KeyOrders); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	return nil
}

// Get returns a copy of one order.
func (s *Store) Get(orderID string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return Order{}, ErrOrderNotFound
}

// List returns a copy of the collection, most recent first.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}
