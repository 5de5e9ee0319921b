package cmd

import (
	"os"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pretty"
	"github.com/dashlaunch/dashlaunch/xviper"
	"github.com/spf13/cobra"
)

var (
	debugFlag     bool
	traceFlag     bool
	silentFlag    bool
	timelineFlag  bool
	colorlessFlag bool
	forcedHome    string
)

var rootCmd = &cobra.Command{
	Use:   "dashlaunch",
	Short: "dashlaunch is a launcher for Streamlit dashboard applications.",
	Long: `dashlaunch verifies a Python toolchain, installs the application's
dependencies through pip, and runs the application through the
Streamlit runner. Every step gates on the previous one; any failed
precondition stops the launch with a diagnostic and exit status 1.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		common.TimelineEnabled = timelineFlag
		if len(forcedHome) > 0 {
			common.Product.ForceHome(forcedHome)
			xviper.ResetRuntime()
		}
		pretty.Colorless = pretty.Colorless || colorlessFlag
		pretty.Setup()
		common.Timeline("command %q", cmd.Name())
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		common.WaitLogs()
		os.Exit(common.ExitPrecondition)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "to get debug output where available (not for production use)")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "to get trace output where available (not for production use)")
	rootCmd.PersistentFlags().BoolVar(&silentFlag, "silent", false, "be less verbose on output")
	rootCmd.PersistentFlags().BoolVar(&timelineFlag, "timeline", false, "print timeline of the run at the end")
	rootCmd.PersistentFlags().BoolVar(&colorlessFlag, "colorless", false, "do not use colors in CLI output")
	rootCmd.PersistentFlags().StringVar(&forcedHome, "home", "", "overwrite the location of the launcher home directory")
}
