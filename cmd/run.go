package cmd

import (
	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/operations"
	"github.com/spf13/cobra"
)

var (
	runFlags       operations.LaunchFlags
	runCaptureFlag bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Verify the environment and launch the dashboard application.",
	Long: `Run performs the whole launch pipeline: check Python, check pip,
install the application's dependencies, verify the application file
exists, and launch it through the Streamlit runner. The command blocks
until the application exits.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Launch lasted").Report()
		}
		runFlags.HeadlessSet = cmd.Flags().Changed("headless")
		common.NoOutputCapture = !runCaptureFlag
		operations.RunLaunchPipeline(&runFlags)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runFlags.ManifestFile, "manifest", "m", "", "Path to a launcher manifest (default: ./launcher.yaml when present).")
	runCmd.Flags().IntVarP(&runFlags.Port, "port", "p", 0, "Override the dashboard server port.")
	runCmd.Flags().BoolVar(&runFlags.Headless, "headless", false, "Override headless mode (do not auto-open a browser).")
	runCmd.Flags().BoolVarP(&runFlags.Force, "force", "f", false, "Reinstall dependencies even when the package set is unchanged.")
	runCmd.Flags().BoolVar(&runFlags.NoInstall, "no-install", false, "Skip the dependency install phase entirely.")
	runCmd.Flags().BoolVar(&runCaptureFlag, "capture", false, "Also copy the application's output into the launcher logs directory.")
}
