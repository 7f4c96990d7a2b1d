package jobs

import (
	"sync"
	"time"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/conversation"
)

// Timers runs the one-shot deferred follow-ups the conversation flows
// schedule. Every pending timer is tracked so Stop can cancel them all on
// shutdown instead of letting callbacks fire into a torn-down runtime.
type Timers struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]*time.Timer
	stopped bool
}

// NewTimers creates an empty timer set.
func NewTimers() *Timers {
	return &Timers{
		pending: make(map[int]*time.Timer),
	}
}

// AfterFunc schedules fn to run once after d. After Stop the call is a no-op.
func (t *Timers) AfterFunc(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}

	id := t.nextID
	t.nextID++

	t.pending[id] = time.AfterFunc(d, func() {
		t.mu.Lock()
		delete(t.pending, id)
		stopped := t.stopped
		t.mu.Unlock()

		if !stopped {
			fn()
		}
	})
}

// Stop cancels every pending timer and rejects new ones.
func (t *Timers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	for id, timer := range t.pending {
		timer.Stop()
		delete(t.pending, id)
	}
}

var _ conversation.Scheduler = (*Timers)(nil)
