/*
wifirefresh internal architecture:

 The scan Coordinator owns one management Session per run. It enumerates
 wireless adapters, requests a scan on each in turn, and waits (bounded)
 for the OS to deliver a scan-completion event before optionally fetching
 and printing the visible networks.

 Completion events arrive on an OS-owned goroutine and are handed to the
 Coordinator through a single-slot waiter, so only the event for the
 adapter currently being awaited can wake the wait loop early.

              ┌───────────────┐
              │  Coordinator  │
              │               │
   Session ◄──┤ adapter loop  │──► stdout (SSIDs, --list only)
   (wlan)     │               │
              │   waiter ◄────┼─── Subscribe callback (scan events)
              └───────────────┘
*/

package wifirefresh

// An Adapter is one wireless interface reported by the management session.
// ID is stable for the lifetime of the session and is the key scan events
// are correlated against.
type Adapter struct {
	ID   string
	Name string
}

// A Network is a single entry from an adapter's visible-network list.
// Connected marks the network the adapter is currently associated with.
type Network struct {
	SSID      string
	Connected bool
}

type EventKind int

const (
	EventScanComplete EventKind = iota
	EventScanAborted
)

// NotifyFunc receives scan events. It is invoked on a goroutine owned by
// the session implementation, concurrently with the caller.
type NotifyFunc func(adapterID string, kind EventKind)

// Session is an open connection to the host's wireless management layer.
// Exactly one is created per run and it must be closed on every exit path.
type Session interface {
	// Adapters enumerates the wireless adapters present on the host,
	// in a stable order.
	Adapters() ([]Adapter, error)

	// Subscribe registers fn for scan events across the whole session.
	// Subscription is best effort: callers should treat a failure as a
	// degraded mode, not a fatal one.
	Subscribe(fn NotifyFunc) error

	// RequestScan asks the OS to refresh the given adapter's view of
	// nearby networks. Completion is signalled asynchronously via the
	// subscribed callback.
	RequestScan(a Adapter) error

	// VisibleNetworks returns whatever the OS currently has cached for
	// the adapter, in OS order.
	VisibleNetworks(a Adapter) ([]Network, error)

	Close() error
}
