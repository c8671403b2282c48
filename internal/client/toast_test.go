package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastShowAndMessage(t *testing.T) {
	toast := NewToast()
	defer toast.Dismiss()

	toast.Show("Subscribed to Milk (Daily)")
	assert.Equal(t, "Subscribed to Milk (Daily)", toast.Message())
}

func TestToastAutoDismisses(t *testing.T) {
	toast := &Toast{ttl: 10 * time.Millisecond}

	toast.Show("Subscribed to Milk (Daily)")
	require.Eventually(t, func() bool {
		return toast.Message() == ""
	}, time.Second, time.Millisecond)
}

func TestToastDismissCancelsTimer(t *testing.T) {
	toast := &Toast{ttl: 50 * time.Millisecond}

	toast.Show("Subscribed to Paneer (Weekly)")
	toast.Dismiss()
	assert.Empty(t, toast.Message())

	// A new toast shown after dismissal is not clobbered by the old timer
	toast.Show("Subscribed to Milk (Daily)")
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, "Subscribed to Milk (Daily)", toast.Message())
}

func TestToastReplaceRearmsTimer(t *testing.T) {
	toast := &Toast{ttl: 30 * time.Millisecond}

	toast.Show("first")
	time.Sleep(20 * time.Millisecond)
	toast.Show("second")

	// The first timer was stopped, so the second message outlives it
	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, "second", toast.Message())

	require.Eventually(t, func() bool {
		return toast.Message() == ""
	}, time.Second, time.Millisecond)
}
