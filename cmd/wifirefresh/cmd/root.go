package cmd

import (
	"os"
	"time"

	wifirefresh "github.com/dogeorg/wifirefresh/pkg"
	"github.com/dogeorg/wifirefresh/pkg/scan"
	"github.com/dogeorg/wifirefresh/pkg/wlan"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	listNetworks     bool
	includeConnected bool
	scanTimeout      time.Duration
)

// exitStatus is set by the root Run and carried out through Execute, so
// the command itself never calls os.Exit.
var exitStatus int

var rootCmd = &cobra.Command{
	Use:   "wifirefresh",
	Short: "Request an immediate refresh of available wifi networks",
	Long: `Request an immediate refresh of available wifi networks.

Triggers a scan on every wireless adapter, waits for each scan to settle,
and optionally prints the visible network names one per line.

Exit codes (positive codes are non-critical warnings):

   0  success
   1  some (but not all) adapters' network fetch failed
  -1  could not open the wireless management session
  -2  adapter enumeration failed
  -3  no wireless adapters present
  -4  every adapter's network fetch failed`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logrus.New()
		log.SetOutput(cmd.ErrOrStderr())

		coordinator := scan.NewCoordinator(func() (wifirefresh.Session, error) {
			return wlan.Open(log)
		}, cmd.OutOrStdout(), log)

		result := coordinator.Run(scan.Options{
			ListNetworks:     listNetworks,
			IncludeConnected: includeConnected,
			ScanTimeout:      scanTimeout,
		})

		exitStatus = exitCode(result)
	},
}

// exitCode is the only place the result taxonomy turns into the numbers a
// shell sees.
func exitCode(r scan.Result) int {
	switch r.Reason {
	case scan.ReasonPartialFetchFailure:
		return 1
	case scan.ReasonSessionOpenFailed:
		return -1
	case scan.ReasonEnumerateFailed:
		return -2
	case scan.ReasonNoAdapters:
		return -3
	case scan.ReasonAllFetchesFailed:
		return -4
	}
	return 0
}

func Execute() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// The original tool accepted -? for help, keep that working.
	for i, arg := range args {
		if arg == "-?" {
			args[i] = "--help"
		}
	}

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return exitStatus
}

func init() {
	rootCmd.Flags().BoolVarP(&listNetworks, "list", "l", false, "Output the list of available networks to stdout")
	rootCmd.Flags().BoolVarP(&includeConnected, "include-connected", "i", false, "Include currently connected networks")
	rootCmd.Flags().DurationVar(&scanTimeout, "timeout", scan.DefaultScanTimeout, "How long to wait per adapter for scan completion")
}
