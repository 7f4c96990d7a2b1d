package jobs

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Timers_RunsScheduledFunction(t *testing.T) {
	timers := NewTimers()
	defer timers.Stop()

	done := make(chan struct{})
	timers.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled function never ran")
	}
}

func Test_Timers_StopCancelsPendingWork(t *testing.T) {
	timers := NewTimers()

	var mu sync.Mutex
	fired := false
	timers.AfterFunc(50*time.Millisecond, func() {
		mu.Lock()
		fired = true
		mu.Unlock()
	})

	timers.Stop()
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, fired)
}

func Test_Timers_AfterStopSchedulesNothing(t *testing.T) {
	timers := NewTimers()
	timers.Stop()

	fired := make(chan struct{}, 1)
	timers.AfterFunc(time.Millisecond, func() { fired <- struct{}{} })

	select {
	case <-fired:
		t.Fatal("timer fired after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}
