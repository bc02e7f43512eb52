package order

import (
	"sync"
	"time"

	"tastebite-be/internal/delivery"
	"tastebite-be/internal/logger"

	"go.uber.org/zap"
)

// UpdateFunc applies a status transition to a stored order.
type UpdateFunc func(orderID string, status Status)

// Handle cancels the pending transitions of one scheduled order.
type Handle struct {
	once   sync.Once
	timers []*time.Timer
}

func (h *Handle) Cancel() {
	h.once.Do(func() {
		for _, t := range h.timers {
			t.Stop()
		}
	})
}

// Scheduler simulates the delivery lifecycle. For each order it arms three
// timers at cumulative offsets derived from the stage split of the total
// estimate, each firing the next monotonic transition. It owns every handle
// it hands out, so bulk-clearing orders can cancel all in-flight timers.
type Scheduler struct {
	mu        sync.Mutex
	perMinute time.Duration
	handles   map[string]*Handle
}

// NewScheduler builds a scheduler that converts estimate minutes using
// perMinute (time.Minute in production; tests pass something much smaller).
func NewScheduler(perMinute time.Duration) *Scheduler {
	return &Scheduler{
		perMinute: perMinute,
		handles:   make(map[string]*Handle),
	}
}

// Schedule arms the pending->preparing->out-for-delivery->delivered
// transitions for an order. Offsets are cumulative: d1, d1+d2, d1+d2+d3.
// The stage split floors each share, so the delivered transition can fire
// slightly before totalMinutes; displayed estimates are unaffected.
func (s *Scheduler) Schedule(orderID string, totalMinutes int, update UpdateFunc) *Handle {
	stages := delivery.Stages(totalMinutes)

	d1 := time.Duration(stages.Pending) * s.perMinute
	d2 := time.Duration(stages.Preparing) * s.perMinute
	d3 := time.Duration(stages.OutForDelivery) * s.perMinute

	handle := &Handle{}
	steps := []struct {
		at     time.Duration
		status Status
	}{
		{d1, StatusPreparing},
		{d1 + d2, StatusOutForDelivery},
		{d1 + d2 + d3, StatusDelivered},
	}

	for _, step := range steps {
		status := step.status
		handle.timers = append(handle.timers, time.AfterFunc(step.at, func() {
			update(orderID, status)
		}))
	}

	s.mu.Lock()
	s.handles[orderID] = handle
	s.mu.Unlock()

	logger.L().Debug("order lifecycle scheduled",
		zap.String("order_id", orderID),
		zap.Int("total_minutes", totalMinutes),
		zap.Int("pending", stages.Pending),
		zap.Int("preparing", stages.Preparing),
		zap.Int("out_for_delivery", stages.OutForDelivery),
	)

	return handle
}

// Cancel stops the pending transitions of one order, if any.
func (s *Scheduler) Cancel(orderID string) {
	s.mu.Lock()
	handle, ok := s.handles[orderID]
	delete(s.handles, orderID)
	s.mu.Unlock()

	if ok {
		handle.Cancel()
	}
}

// CancelAll stops every pending transition. Invoked when the order
// collection is cleared, so stale callbacks cannot fire against an empty
// store.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	handles := s.handles
	s.handles = make(map[string]*Handle)
	s.mu.Unlock()

	for _, h := range handles {
		h.Cancel()
	}
}
