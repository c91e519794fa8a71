package scan

import (
	"fmt"
	"io"
	"time"

	wifirefresh "github.com/dogeorg/wifirefresh/pkg"
	"github.com/sirupsen/logrus"
)

// DefaultScanTimeout is how long we wait per adapter for a completion
// event. Drivers are expected to finish a scan within four seconds, so
// anything past that means the event was lost and the cached results are
// as good as they are going to get.
const DefaultScanTimeout = 4 * time.Second

type Options struct {
	// ListNetworks enables fetching and printing each adapter's visible
	// networks after its scan settles.
	ListNetworks bool

	// IncludeConnected also prints networks the adapter is currently
	// associated with. Normally these are suppressed.
	IncludeConnected bool

	// ScanTimeout bounds the per-adapter completion wait. Zero means
	// DefaultScanTimeout.
	ScanTimeout time.Duration
}

// OpenFunc opens the management session a run will use.
type OpenFunc func() (wifirefresh.Session, error)

// Coordinator drives one scan run: open a session, enumerate adapters,
// scan each in turn, and aggregate the per-adapter outcomes.
type Coordinator struct {
	open OpenFunc
	out  io.Writer
	log  *logrus.Logger
	wait *waiter
}

func NewCoordinator(open OpenFunc, out io.Writer, log *logrus.Logger) *Coordinator {
	return &Coordinator{
		open: open,
		out:  out,
		log:  log,
		wait: newWaiter(),
	}
}

// Run executes the whole scan sequence and reports the aggregate outcome.
// Adapters are handled strictly one at a time: the waiter holds a single
// awaited-adapter slot, so concurrent scans would race on correlation.
func (c *Coordinator) Run(opts Options) Result {
	timeout := opts.ScanTimeout
	if timeout <= 0 {
		timeout = DefaultScanTimeout
	}

	session, err := c.open()
	if err != nil {
		c.log.Errorf("Could not open wireless management session: %v", err)
		return fatal(ReasonSessionOpenFailed)
	}
	defer session.Close()

	// Best effort. Without the subscription every wait below simply
	// runs to its full timeout, which is slower but still correct.
	if err := session.Subscribe(c.wait.Notify); err != nil {
		c.log.Warnf("Scan event subscription failed, waits will run to the full timeout: %v", err)
	}

	adapters, err := session.Adapters()
	if err != nil {
		c.log.Errorf("Could not enumerate wireless adapters: %v", err)
		return fatal(ReasonEnumerateFailed)
	}

	if len(adapters) == 0 {
		c.log.Error("No wireless adapters present")
		return fatal(ReasonNoAdapters)
	}

	fetchFailures := 0

	for _, adapter := range adapters {
		c.wait.Arm(adapter.ID)

		if err := session.RequestScan(adapter); err != nil {
			// No scan was started, so there is nothing to wait
			// for. The fetch below just sees older cached data.
			c.log.Warnf("Scan request failed on %s: %v", adapter.Name, err)
		} else if !c.wait.Wait(timeout) {
			c.log.Debugf("Scan on %s timed out after %s", adapter.Name, timeout)
		}

		if !opts.ListNetworks {
			continue
		}

		networks, err := session.VisibleNetworks(adapter)
		if err != nil {
			c.log.Warnf("Could not fetch networks on %s: %v", adapter.Name, err)
			fetchFailures++
			continue
		}

		for _, network := range networks {
			if network.Connected && !opts.IncludeConnected {
				continue
			}
			fmt.Fprintln(c.out, network.SSID)
		}
	}

	if fetchFailures > 0 {
		if fetchFailures == len(adapters) {
			return fatal(ReasonAllFetchesFailed)
		}
		return Result{Severity: Warning, Reason: ReasonPartialFetchFailure}
	}

	return resultOK
}
