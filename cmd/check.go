package cmd

import (
	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/operations"
	"github.com/dashlaunch/dashlaunch/pretty"
	"github.com/spf13/cobra"
)

var checkFlags operations.LaunchFlags

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"diagnostics", "diag"},
	Short:   "Probe the environment without installing or launching anything.",
	Long: `Check runs every launch precondition concurrently and reports the
results: Python, pip, the Streamlit runner, the application file,
launcher home, PyPI reachability and dashboard port availability.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Check lasted").Report()
		}
		config := operations.LoadLaunchManifest(&checkFlags)
		diagnostics, healthy := operations.RunDiagnostics(config)
		operations.PrintDiagnostics(diagnostics)
		pretty.Guard(healthy, common.ExitPrecondition, "Error: some critical launch preconditions failed, see above.")
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkFlags.ManifestFile, "manifest", "m", "", "Path to a launcher manifest (default: ./launcher.yaml when present).")
	checkCmd.Flags().IntVarP(&checkFlags.Port, "port", "p", 0, "Override the dashboard server port.")
}
