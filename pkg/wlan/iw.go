package wlan

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	wifirefresh "github.com/dogeorg/wifirefresh/pkg"
)

func iwOutput(args ...string) (string, error) {
	cmd := exec.Command("iw", args...)
	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	if err != nil {
		detail := strings.TrimSpace(errOut.String())
		if detail != "" {
			return "", fmt.Errorf("iw %s: %v: %s", strings.Join(args, " "), err, detail)
		}
		return "", fmt.Errorf("iw %s: %w", strings.Join(args, " "), err)
	}

	return out.String(), nil
}

var (
	ssidRegex  = regexp.MustCompile(`(?m)^\s*SSID: (.*)$`)
	eventRegex = regexp.MustCompile(`^(\S+?)(?: \(phy #\d+\))?: scan (finished|aborted)`)
)

// parseScanDump extracts the network entries from `iw dev <if> scan dump`
// output. Each entry starts with a "BSS xx:xx:..." header line; the entry
// for the currently associated network carries an "-- associated" marker
// on that line.
func parseScanDump(output string) []wifirefresh.Network {
	var networks []wifirefresh.Network

	cells := strings.Split("\n"+output, "\nBSS ")

	for _, cell := range cells[1:] {
		header, _, _ := strings.Cut(cell, "\n")

		ssid := ssidRegex.FindStringSubmatch(cell)
		if ssid == nil {
			continue
		}

		networks = append(networks, wifirefresh.Network{
			SSID:      ssid[1],
			Connected: strings.Contains(header, "-- associated"),
		})
	}

	return networks
}

// parseEvent matches the `iw event` lines we care about, e.g.
//
//	wlan0 (phy #0): scan finished: 2412 2437 2462, ""
//	wlan0 (phy #0): scan aborted: 2412, ""
//
// Everything else (connect, disconnect, regulatory changes) is skipped.
func parseEvent(line string) (string, wifirefresh.EventKind, bool) {
	m := eventRegex.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}

	kind := wifirefresh.EventScanComplete
	if m[2] == "aborted" {
		kind = wifirefresh.EventScanAborted
	}

	return m[1], kind, true
}
