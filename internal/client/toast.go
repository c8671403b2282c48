package client

import (
	"sync"
	"time"
)

// toastDuration is how long a confirmation toast stays visible
const toastDuration = 3 * time.Second

// Toast is a one-shot confirmation message that dismisses itself. Showing a
// new toast replaces the current one and releases its timer, so at most one
// timer is live.
type Toast struct {
	mu      sync.Mutex
	message string
	timer   *time.Timer
	ttl     time.Duration
}

func NewToast() *Toast {
	return &Toast{ttl: toastDuration}
}

// Show displays the message and arms the auto-dismiss timer
func (t *Toast) Show(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}

	t.message = message
	t.timer = time.AfterFunc(t.ttl, t.expire)
}

// Dismiss hides the toast and cancels the pending timer
func (t *Toast) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.message = ""
}

// Message returns the visible message, empty when nothing is showing
func (t *Toast) Message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message
}

func (t *Toast) expire() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.message = ""
	t.timer = nil
}
