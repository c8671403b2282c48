package tracker

import (
	"sync"
	"time"

	"kirana-connect/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TickInterval is one wall-clock second per tick
const TickInterval = time.Second

// Manager owns every live tracker and enforces the one-active-order-per-user
// invariant: attaching a new order for a user closes whatever that user was
// tracking before.
type Manager struct {
	mu       sync.Mutex
	trackers map[string]*Tracker  // orderID -> tracker
	active   map[uuid.UUID]string // userID -> active orderID
	interval time.Duration
	log      *zap.Logger
}

func NewManager(log *zap.Logger) *Manager {
	return &Manager{
		trackers: make(map[string]*Tracker),
		active:   make(map[uuid.UUID]string),
		interval: TickInterval,
		log:      log,
	}
}

// Attach starts tracking the order for its user. onDelivered is invoked once,
// from the tick goroutine, when the countdown expires while the order is Out
// for Delivery.
func (m *Manager) Attach(order *entity.Order, onDelivered func(orderID string)) {
	m.mu.Lock()

	var previous *Tracker
	if prevID, ok := m.active[order.UserID]; ok && prevID != order.ID {
		previous = m.trackers[prevID]
		delete(m.trackers, prevID)
	}

	t := newTracker(order, m.interval, onDelivered, m.log)
	m.trackers[order.ID] = t
	m.active[order.UserID] = order.ID

	m.mu.Unlock()

	// Close outside the lock, Close waits for the tick goroutine
	if previous != nil {
		previous.Close()
		m.log.Info("Previous tracker replaced",
			zap.String("order_id", previous.orderID),
			zap.String("user_id", order.UserID.String()),
		)
	}
}

// Detach stops and removes the order's tracker. Unknown ids are a no-op.
func (m *Manager) Detach(orderID string) {
	m.mu.Lock()

	t, exists := m.trackers[orderID]
	delete(m.trackers, orderID)
	for userID, activeID := range m.active {
		if activeID == orderID {
			delete(m.active, userID)
		}
	}

	m.mu.Unlock()

	if exists {
		t.Close()
		m.log.Info("Tracker detached", zap.String("order_id", orderID))
	}
}

// SetStatus forwards an externally driven status change to the live tracker,
// if any, so progress re-baselines
func (m *Manager) SetStatus(orderID string, status entity.OrderStatus) {
	m.mu.Lock()
	t := m.trackers[orderID]
	m.mu.Unlock()

	if t != nil {
		t.SetStatus(status)
	}
}

// MarkRated closes the rating prompt on the live tracker
func (m *Manager) MarkRated(orderID string) {
	m.mu.Lock()
	t := m.trackers[orderID]
	m.mu.Unlock()

	if t != nil {
		t.MarkRated()
	}
}

// Snapshot returns the current read model for the order, if tracked
func (m *Manager) Snapshot(orderID string) (Snapshot, bool) {
	m.mu.Lock()
	t := m.trackers[orderID]
	m.mu.Unlock()

	if t == nil {
		return Snapshot{}, false
	}
	return t.Snapshot(), true
}

// ActiveOrder returns the id of the order the user is currently tracking
func (m *Manager) ActiveOrder(userID uuid.UUID) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.active[userID]
	return id, ok
}

// Close shuts down every live tracker
func (m *Manager) Close() {
	m.mu.Lock()
	trackers := make([]*Tracker, 0, len(m.trackers))
	for _, t := range m.trackers {
		trackers = append(trackers, t)
	}
	m.trackers = make(map[string]*Tracker)
	m.active = make(map[uuid.UUID]string)
	m.mu.Unlock()

	for _, t := range trackers {
		t.Close()
	}
}
