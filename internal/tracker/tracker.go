package tracker

import (
	"math"
	"sync"
	"time"

	"kirana-connect/internal/data/entity"

	"go.uber.org/zap"
)

// Snapshot is the read model the UI renders from
type Snapshot struct {
	OrderID         string
	Status          entity.OrderStatus
	Progress        float64
	TimeLeftSeconds int
	RatingDue       bool
}

// Tracker follows a single order through its delivery. It keeps a countdown
// seeded from the order's estimated minutes and a progress percentage that is
// re-baselined on every status change. While the order is Out for Delivery the
// progress creeps by 0.1 per tick, capped below 98, so the bar approaches but
// never reaches the end on its own. The only automatic status transition is
// Out for Delivery -> Delivered, fired when the countdown hits zero.
type Tracker struct {
	mu        sync.Mutex
	orderID   string
	status    entity.OrderStatus
	progress  float64
	countdown int // whole seconds, floored at 0
	ratingDue bool
	fired     bool

	onDelivered func(orderID string)

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	log      *zap.Logger
}

func newTracker(order *entity.Order, interval time.Duration, onDelivered func(orderID string), log *zap.Logger) *Tracker {
	countdown := int(math.Round(order.EstimatedMinutes * 60))
	if countdown < 0 {
		countdown = 0
	}

	t := &Tracker{
		orderID:     order.ID,
		status:      order.Status,
		progress:    order.Status.BaselineProgress(),
		countdown:   countdown,
		onDelivered: onDelivered,
		stop:        make(chan struct{}),
		log:         log,
	}

	// Already delivered: no ticking, go straight to the terminal view
	if order.Status.IsTerminal() {
		t.countdown = 0
		t.progress = 100
		t.ratingDue = !order.Rated
		return t
	}

	t.wg.Add(1)
	go t.tickLoop(interval)

	return t
}

func (t *Tracker) tickLoop(interval time.Duration) {
	defer t.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.tick()
		case <-t.stop:
			return
		}
	}
}

// tick advances the countdown and progress once. The delivered callback runs
// outside the tracker lock, it calls back into SetStatus.
func (t *Tracker) tick() {
	t.mu.Lock()

	if t.status.IsTerminal() {
		t.mu.Unlock()
		return
	}

	if t.countdown > 0 {
		t.countdown--
	}

	if t.status == entity.OrderStatusOutForDelivery && t.progress < 98 {
		t.progress += 0.1
	}

	fire := t.countdown == 0 &&
		t.status == entity.OrderStatusOutForDelivery &&
		!t.fired
	if fire {
		t.fired = true
	}

	t.mu.Unlock()

	if fire && t.onDelivered != nil {
		t.log.Info("Delivery countdown finished", zap.String("order_id", t.orderID))
		t.onDelivered(t.orderID)
	}
}

// SetStatus re-baselines progress for an externally driven transition.
// Delivered is terminal: it pins progress at 100, opens the rating prompt
// and stops the ticker.
func (t *Tracker) SetStatus(status entity.OrderStatus) {
	t.mu.Lock()

	if t.status == status {
		t.mu.Unlock()
		return
	}

	t.status = status
	t.progress = status.BaselineProgress()

	delivered := status.IsTerminal()
	if delivered {
		t.countdown = 0
		t.ratingDue = true
	}

	t.mu.Unlock()

	if delivered {
		t.stopTicking()
	}
}

// MarkRated closes the rating prompt after a submission
func (t *Tracker) MarkRated() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ratingDue = false
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{
		OrderID:         t.orderID,
		Status:          t.status,
		Progress:        t.progress,
		TimeLeftSeconds: t.countdown,
		RatingDue:       t.ratingDue,
	}
}

func (t *Tracker) stopTicking() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
}

// Close releases the ticker and waits for the loop to exit. A tracker that is
// detached without Close leaks a running interval, so every detach path ends
// here.
func (t *Tracker) Close() {
	t.stopTicking()
	t.wg.Wait()
}
