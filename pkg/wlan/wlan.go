package wlan

import (
	"bufio"
	"os/exec"
	"sync"

	wifirefresh "github.com/dogeorg/wifirefresh/pkg"
	"github.com/mdlayher/wifi"
	"github.com/sirupsen/logrus"
)

var _ wifirefresh.Session = &session{}

// session implements the management session on Linux: adapter enumeration
// over nl80211, scan control and event delivery through iw(8).
type session struct {
	client *wifi.Client
	log    *logrus.Logger

	mu     sync.Mutex
	events *exec.Cmd
}

func Open(log *logrus.Logger) (wifirefresh.Session, error) {
	client, err := wifi.New()
	if err != nil {
		return nil, err
	}

	return &session{client: client, log: log}, nil
}

func (s *session) Adapters() ([]wifirefresh.Adapter, error) {
	ifaces, err := s.client.Interfaces()
	if err != nil {
		return nil, err
	}

	adapters := []wifirefresh.Adapter{}

	for _, ifi := range ifaces {
		// P2P devices show up here without a netdev name. iw can't
		// address those, so skip them.
		if ifi.Name == "" {
			continue
		}

		adapters = append(adapters, wifirefresh.Adapter{
			ID:   ifi.Name,
			Name: ifi.Name,
		})
	}

	return adapters, nil
}

// Subscribe starts a long-running `iw event` child and forwards its scan
// lines to fn. The child is stopped by Close.
func (s *session) Subscribe(fn wifirefresh.NotifyFunc) error {
	cmd := exec.Command("iw", "event")

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	s.mu.Lock()
	s.events = cmd
	s.mu.Unlock()

	go func() {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			id, kind, ok := parseEvent(scanner.Text())
			if !ok {
				continue
			}
			fn(id, kind)
		}
		cmd.Wait()
	}()

	return nil
}

func (s *session) RequestScan(a wifirefresh.Adapter) error {
	_, err := iwOutput("dev", a.ID, "scan", "trigger")
	return err
}

func (s *session) VisibleNetworks(a wifirefresh.Adapter) ([]wifirefresh.Network, error) {
	out, err := iwOutput("dev", a.ID, "scan", "dump")
	if err != nil {
		return nil, err
	}

	return parseScanDump(out), nil
}

func (s *session) Close() error {
	s.mu.Lock()
	events := s.events
	s.events = nil
	s.mu.Unlock()

	if events != nil && events.Process != nil {
		if err := events.Process.Kill(); err != nil {
			s.log.Warnf("Could not stop iw event listener: %v", err)
		}
	}

	return s.client.Close()
}
