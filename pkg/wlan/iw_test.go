package wlan

import (
	"testing"

	wifirefresh "github.com/dogeorg/wifirefresh/pkg"
)

const scanDumpFixture = `BSS aa:bb:cc:dd:ee:01(on wlan0) -- associated
	TSF: 4698988003 usec (0d, 01:18:18)
	freq: 2412
	beacon interval: 100 TUs
	capability: ESS Privacy ShortSlotTime (0x0411)
	signal: -44.00 dBm
	last seen: 180 ms ago
	SSID: home
	RSN:	 * Version: 1
		 * Group cipher: CCMP
BSS aa:bb:cc:dd:ee:02(on wlan0)
	freq: 2437
	signal: -67.00 dBm
	last seen: 320 ms ago
	SSID: coffeeshop
BSS aa:bb:cc:dd:ee:03(on wlan0)
	freq: 5180
	signal: -71.00 dBm
	last seen: 1240 ms ago
	SSID:
`

// TestParseScanDump verifies the BSS cells parse in OS order with the
// associated marker mapped to Connected.
func TestParseScanDump(t *testing.T) {
	networks := parseScanDump(scanDumpFixture)

	want := []wifirefresh.Network{
		{SSID: "home", Connected: true},
		{SSID: "coffeeshop"},
		{SSID: ""},
	}

	if len(networks) != len(want) {
		t.Fatalf("got %d networks, want %d: %+v", len(networks), len(want), networks)
	}
	for i, n := range want {
		if networks[i] != n {
			t.Errorf("network %d = %+v, want %+v", i, networks[i], n)
		}
	}
}

// TestParseScanDumpEmpty verifies empty dump output yields no entries.
func TestParseScanDumpEmpty(t *testing.T) {
	if networks := parseScanDump(""); len(networks) != 0 {
		t.Errorf("got %d networks from empty output", len(networks))
	}
}

// TestParseEvent covers the iw event lines we react to and a sample of
// the ones we don't.
func TestParseEvent(t *testing.T) {
	tests := []struct {
		line     string
		wantID   string
		wantKind wifirefresh.EventKind
		wantOK   bool
	}{
		{
			line:     `wlan0 (phy #0): scan finished: 2412 2437 2462, ""`,
			wantID:   "wlan0",
			wantKind: wifirefresh.EventScanComplete,
			wantOK:   true,
		},
		{
			line:     `wlan1 (phy #1): scan aborted: 2412, ""`,
			wantID:   "wlan1",
			wantKind: wifirefresh.EventScanAborted,
			wantOK:   true,
		},
		{
			line:     `wlan0: scan finished: 5180, ""`,
			wantID:   "wlan0",
			wantKind: wifirefresh.EventScanComplete,
			wantOK:   true,
		},
		{
			line:   `wlan0 (phy #0): scan started`,
			wantOK: false,
		},
		{
			line:   `wlan0 (phy #0): connected to aa:bb:cc:dd:ee:01`,
			wantOK: false,
		},
		{
			line:   `regulatory domain change: set to DE`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			id, kind, ok := parseEvent(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ok = %t, want %t", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if id != tt.wantID || kind != tt.wantKind {
				t.Errorf("got (%q, %v), want (%q, %v)", id, kind, tt.wantID, tt.wantKind)
			}
		})
	}
}
