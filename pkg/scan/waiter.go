package scan

import (
	"sync/atomic"
	"time"

	wifirefresh "github.com/dogeorg/wifirefresh/pkg"
)

// waiter is the handoff between the session's event goroutine and the
// coordinator's adapter loop. At most one adapter is awaited at a time:
// Arm resets the slot for a new adapter, Notify fills it if the event
// matches, Wait drains it or times out. Single producer, single consumer.
type waiter struct {
	awaited atomic.Pointer[string]
	done    chan struct{}
}

func newWaiter() *waiter {
	return &waiter{done: make(chan struct{}, 1)}
}

// Arm marks id as the adapter currently being awaited and discards any
// stale signal left over from a previous adapter. Must be called before
// the scan request is issued.
func (w *waiter) Arm(id string) {
	w.awaited.Store(&id)

	select {
	case <-w.done:
	default:
	}
}

// Notify is the session callback. Events for adapters other than the one
// currently awaited are dropped, so a late event from a previous scan can
// never be misread as completion of the current one. A scan-aborted event
// also wakes the wait: the subsequent fetch just returns whatever the OS
// has cached, same as a timeout.
func (w *waiter) Notify(id string, kind wifirefresh.EventKind) {
	switch kind {
	case wifirefresh.EventScanComplete, wifirefresh.EventScanAborted:
	default:
		return
	}

	awaited := w.awaited.Load()
	if awaited == nil || *awaited != id {
		return
	}

	select {
	case w.done <- struct{}{}:
	default:
	}
}

// Wait blocks until a matching event arrives or timeout elapses. It
// reports whether the wake came from an event.
func (w *waiter) Wait(timeout time.Duration) bool {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case <-w.done:
		return true
	case <-t.C:
		return false
	}
}
