package tracker

import (
	"sync/atomic"
	"testing"
	"time"

	"kirana-connect/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFastManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(zap.NewNop())
	m.interval = 2 * time.Millisecond
	t.Cleanup(m.Close)
	return m
}

func trackedOrder(status entity.OrderStatus, estimatedMinutes float64) *entity.Order {
	return &entity.Order{
		ID:               "KC-1234",
		UserID:           uuid.New(),
		Status:           status,
		EstimatedMinutes: estimatedMinutes,
	}
}

func TestAutoDeliversWhenCountdownExpires(t *testing.T) {
	m := newFastManager(t)
	order := trackedOrder(entity.OrderStatusOutForDelivery, 0.05) // 3 second countdown

	var delivered atomic.Bool
	m.Attach(order, func(orderID string) {
		assert.Equal(t, "KC-1234", orderID)
		m.SetStatus(orderID, entity.OrderStatusDelivered)
		delivered.Store(true)
	})

	require.Eventually(t, delivered.Load, time.Second, time.Millisecond)

	snap, ok := m.Snapshot("KC-1234")
	require.True(t, ok)
	assert.Equal(t, entity.OrderStatusDelivered, snap.Status)
	assert.Equal(t, float64(100), snap.Progress)
	assert.Equal(t, 0, snap.TimeLeftSeconds)
	assert.True(t, snap.RatingDue)
}

func TestNoAutoDeliveryBeforeOutForDelivery(t *testing.T) {
	m := newFastManager(t)
	order := trackedOrder(entity.OrderStatusPending, 0.05)

	var fired atomic.Int32
	m.Attach(order, func(string) { fired.Add(1) })

	// Let the countdown run out while the order is still Pending
	require.Eventually(t, func() bool {
		snap, ok := m.Snapshot("KC-1234")
		return ok && snap.TimeLeftSeconds == 0
	}, time.Second, time.Millisecond)
	assert.EqualValues(t, 0, fired.Load())

	snap, ok := m.Snapshot("KC-1234")
	require.True(t, ok)
	assert.Equal(t, entity.OrderStatusPending, snap.Status)

	// Reaching Out for Delivery with an expired countdown fires immediately
	m.SetStatus("KC-1234", entity.OrderStatusOutForDelivery)
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)

	// And exactly once
	time.Sleep(20 * time.Millisecond)
	assert.EqualValues(t, 1, fired.Load())
}

func TestNegativeEstimateClampsToZero(t *testing.T) {
	m := newFastManager(t)
	order := trackedOrder(entity.OrderStatusOutForDelivery, -2)

	var fired atomic.Bool
	m.Attach(order, func(string) { fired.Store(true) })

	snap, ok := m.Snapshot("KC-1234")
	require.True(t, ok)
	assert.Equal(t, 0, snap.TimeLeftSeconds)

	require.Eventually(t, fired.Load, time.Second, time.Millisecond)
}

func TestAlreadyDeliveredAttachSkipsCountdown(t *testing.T) {
	m := newFastManager(t)
	order := trackedOrder(entity.OrderStatusDelivered, 0.5)

	m.Attach(order, func(string) {
		t.Fatal("terminal attach must never fire the callback")
	})

	snap, ok := m.Snapshot("KC-1234")
	require.True(t, ok)
	assert.Equal(t, entity.OrderStatusDelivered, snap.Status)
	assert.Equal(t, float64(100), snap.Progress)
	assert.Equal(t, 0, snap.TimeLeftSeconds)
	assert.True(t, snap.RatingDue)
}

func TestAlreadyRatedDeliveredAttach(t *testing.T) {
	m := newFastManager(t)
	order := trackedOrder(entity.OrderStatusDelivered, 0)
	order.Rated = true

	m.Attach(order, nil)

	snap, ok := m.Snapshot("KC-1234")
	require.True(t, ok)
	assert.False(t, snap.RatingDue)
}

func TestProgressCreepsWhileOutForDelivery(t *testing.T) {
	m := newFastManager(t)
	order := trackedOrder(entity.OrderStatusOutForDelivery, 10) // long countdown

	m.Attach(order, nil)

	require.Eventually(t, func() bool {
		snap, ok := m.Snapshot("KC-1234")
		return ok && snap.Progress > 70
	}, time.Second, time.Millisecond)

	snap, _ := m.Snapshot("KC-1234")
	assert.Less(t, snap.Progress, 98.2)
}

func TestExternalStatusChangeRebaselines(t *testing.T) {
	m := newFastManager(t)
	m.Attach(trackedOrder(entity.OrderStatusPending, 10), nil)

	snap, ok := m.Snapshot("KC-1234")
	require.True(t, ok)
	assert.Equal(t, float64(5), snap.Progress)

	m.SetStatus("KC-1234", entity.OrderStatusAccepted)
	snap, _ = m.Snapshot("KC-1234")
	assert.Equal(t, entity.OrderStatusAccepted, snap.Status)
	assert.Equal(t, float64(25), snap.Progress)
}

func TestMarkRatedClosesPrompt(t *testing.T) {
	m := newFastManager(t)
	m.Attach(trackedOrder(entity.OrderStatusDelivered, 0), nil)

	m.MarkRated("KC-1234")

	snap, ok := m.Snapshot("KC-1234")
	require.True(t, ok)
	assert.False(t, snap.RatingDue)
}

func TestDetachStopsTracking(t *testing.T) {
	m := newFastManager(t)
	order := trackedOrder(entity.OrderStatusOutForDelivery, 10)

	var fired atomic.Bool
	m.Attach(order, func(string) { fired.Store(true) })
	m.Detach("KC-1234")

	_, ok := m.Snapshot("KC-1234")
	assert.False(t, ok)

	time.Sleep(20 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestSecondAttachReplacesUsersActiveOrder(t *testing.T) {
	m := newFastManager(t)
	userID := uuid.New()

	first := trackedOrder(entity.OrderStatusPending, 10)
	first.UserID = userID
	m.Attach(first, nil)

	second := trackedOrder(entity.OrderStatusPending, 10)
	second.ID = "KC-5678"
	second.UserID = userID
	m.Attach(second, nil)

	_, ok := m.Snapshot("KC-1234")
	assert.False(t, ok, "previous order should no longer be tracked")

	activeID, ok := m.ActiveOrder(userID)
	require.True(t, ok)
	assert.Equal(t, "KC-5678", activeID)
}

func TestManagerCloseDropsAllTrackers(t *testing.T) {
	m := NewManager(zap.NewNop())
	m.interval = 2 * time.Millisecond

	m.Attach(trackedOrder(entity.OrderStatusPending, 10), nil)
	m.Close()

	_, ok := m.Snapshot("KC-1234")
	assert.False(t, ok)
}
