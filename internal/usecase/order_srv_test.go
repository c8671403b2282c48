package usecase

import (
	"strings"
	"testing"

	"kirana-connect/internal/data/entity"
	"kirana-connect/internal/dto/request"
	"kirana-connect/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillCart puts 1x atta and 2x paneer in the cart, totalling 530
func fillCart(t *testing.T, env *testEnv, userID uuid.UUID) {
	t.Helper()

	_, err := env.cart.AddItem(t.Context(), userID, &request.AddCartItemRequest{ProductID: "p1"})
	require.NoError(t, err)
	_, err = env.cart.AddItem(t.Context(), userID, &request.AddCartItemRequest{ProductID: "p4"})
	require.NoError(t, err)
	_, err = env.cart.AddItem(t.Context(), userID, &request.AddCartItemRequest{ProductID: "p4"})
	require.NoError(t, err)
}

func checkout(t *testing.T, env *testEnv, userID uuid.UUID) *response.OrderResponse {
	t.Helper()

	fillCart(t, env, userID)
	order, err := env.order.Checkout(t.Context(), userID)
	require.NoError(t, err)
	return order
}

func TestCheckoutSnapshotsTheCart(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()

	order := checkout(t, env, userID)

	assert.True(t, strings.HasPrefix(order.ID, "KC-"))
	assert.Len(t, order.ID, 7)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "530", order.Total.String())
	assert.Equal(t, "s1", order.StoreID)
	assert.Equal(t, "Gupta's Family Kirana", order.StoreName)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 0.5, order.EstimatedMinutes, 1e-9)

	// Checkout empties the cart
	cart, err := env.cart.Items(t.Context(), userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// And the order is the user's active tracked order
	activeID, ok := env.trackers.ActiveOrder(userID)
	require.True(t, ok)
	assert.Equal(t, order.ID, activeID)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.order.Checkout(t.Context(), uuid.New())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrdersAreMostRecentFirst(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()

	first := checkout(t, env, userID)
	second := checkout(t, env, userID)

	orders, err := env.order.Orders(t.Context(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestGetOrderHidesOtherUsers(t *testing.T) {
	env := newTestEnv(t)
	owner := uuid.New()

	order := checkout(t, env, owner)

	_, err := env.order.GetOrder(t.Context(), uuid.New(), order.ID)
	require.ErrorIs(t, err, ErrNotFound)

	got, err := env.order.GetOrder(t.Context(), owner, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestUpdateStatusWalksForwardOnly(t *testing.T) {
	env := newTestEnv(t)
	order := checkout(t, env, uuid.New())

	resp, err := env.order.UpdateStatus(t.Context(), order.ID, statusReq("Accepted"))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, resp.Status)

	// Skipping a step is rejected
	var transitionErr *IllegalTransitionError
	_, err = env.order.UpdateStatus(t.Context(), order.ID, statusReq("Delivered"))
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, entity.OrderStatusAccepted, transitionErr.From)

	// So is moving backward
	_, err = env.order.UpdateStatus(t.Context(), order.ID, statusReq("Pending"))
	require.ErrorAs(t, err, &transitionErr)

	// And an unknown status
	_, err = env.order.UpdateStatus(t.Context(), order.ID, statusReq("Lost"))
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeliveredIsTerminal(t *testing.T) {
	env := newTestEnv(t)
	order := checkout(t, env, uuid.New())

	env.advanceTo(t, order.ID, "Delivered")

	var transitionErr *IllegalTransitionError
	_, err := env.order.UpdateStatus(t.Context(), order.ID, statusReq("Pending"))
	require.ErrorAs(t, err, &transitionErr)

	_, err = env.order.UpdateStatus(t.Context(), order.ID, statusReq("Delivered"))
	require.ErrorAs(t, err, &transitionErr)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.order.UpdateStatus(t.Context(), "KC-0000", statusReq("Accepted"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTrackingSnapshot(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()
	order := checkout(t, env, userID)

	snap, err := env.order.Tracking(t.Context(), userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, snap.OrderID)
	assert.Equal(t, entity.OrderStatusPending, snap.Status)
	assert.Equal(t, float64(5), snap.Progress)
	// 0.5 minutes seeds a 30 second countdown
	assert.LessOrEqual(t, snap.TimeLeftSeconds, 30)
	assert.GreaterOrEqual(t, snap.TimeLeftSeconds, 29)
	assert.False(t, snap.RatingDue)
}

func TestTrackingReattachesAfterClose(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()
	order := checkout(t, env, userID)

	require.NoError(t, env.order.CloseTracking(t.Context(), userID, order.ID))
	_, ok := env.trackers.Snapshot(order.ID)
	assert.False(t, ok)

	snap, err := env.order.Tracking(t.Context(), userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, snap.OrderID)
}

func TestRateOrderFoldsIntoStoreAverage(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()
	order := checkout(t, env, userID) // store s1: rating 4.8 over 342 reviews

	env.advanceTo(t, order.ID, "Delivered")

	store, err := env.order.RateOrder(t.Context(), userID, order.ID, &request.RateOrderRequest{
		Rating:      5,
		ItemRatings: map[string]int{"p1": 5},
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.8, store.Rating, 1e-9)
	assert.Equal(t, 343, store.ReviewCount)

	got, err := env.order.GetOrder(t.Context(), userID, order.ID)
	require.NoError(t, err)
	assert.True(t, got.Rated)
}

func TestRateOrderOncePerOrder(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()
	order := checkout(t, env, userID)

	env.advanceTo(t, order.ID, "Delivered")

	_, err := env.order.RateOrder(t.Context(), userID, order.ID, &request.RateOrderRequest{Rating: 4})
	require.NoError(t, err)

	_, err = env.order.RateOrder(t.Context(), userID, order.ID, &request.RateOrderRequest{Rating: 5})
	require.ErrorIs(t, err, ErrAlreadyRated)
}

func TestRateOrderRequiresDelivery(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()
	order := checkout(t, env, userID)

	_, err := env.order.RateOrder(t.Context(), userID, order.ID, &request.RateOrderRequest{Rating: 5})
	require.ErrorIs(t, err, ErrNotDelivered)
}

func TestRateOrderBounds(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()
	order := checkout(t, env, userID)

	env.advanceTo(t, order.ID, "Delivered")

	_, err := env.order.RateOrder(t.Context(), userID, order.ID, &request.RateOrderRequest{Rating: 6})
	require.ErrorIs(t, err, ErrValidation)
}
