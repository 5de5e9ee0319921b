package cmd

import (
	"fmt"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/operations"
	"github.com/dashlaunch/dashlaunch/pathlib"
	"github.com/dashlaunch/dashlaunch/pretty"
	"github.com/dashlaunch/dashlaunch/wizard"
	"github.com/spf13/cobra"
)

var (
	installFlags   operations.LaunchFlags
	installYesFlag bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the application's Python dependencies without launching.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if common.DebugFlag() {
			defer common.Stopwatch("Install lasted").Report()
		}
		config := operations.LoadLaunchManifest(&installFlags)
		confirmed, err := wizard.Confirm(fmt.Sprintf("Install %v with pip?", config.PackageList()), installYesFlag)
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
		searchPath := pathlib.TargetPath()
		_, pip := operations.ProbeToolchain(searchPath)
		operations.EnsurePackages(pip, config, installFlags.Force)
		pretty.Ok()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
	wizard.AddYesFlag(installCmd, &installYesFlag)
	installCmd.Flags().StringVarP(&installFlags.ManifestFile, "manifest", "m", "", "Path to a launcher manifest (default: ./launcher.yaml when present).")
	installCmd.Flags().BoolVarP(&installFlags.Force, "force", "f", false, "Reinstall dependencies even when the package set is unchanged.")
}
