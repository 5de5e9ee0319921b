package pyenv

import (
	"fmt"
	"io"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pretty"
	"github.com/dashlaunch/dashlaunch/settings"
	"github.com/dashlaunch/dashlaunch/shell"
	"github.com/dashlaunch/dashlaunch/xviper"
)

const installedFingerprintKey = `installed.fingerprint`

// InstallNeeded tells whether the pip install phase can be skipped
// because the previous successful install covered the same package set.
func InstallNeeded(fingerprint string, force bool) bool {
	if force {
		return true
	}
	previous := xviper.GetString(installedFingerprintKey)
	if previous == fingerprint {
		common.Debug("Install fingerprint %q unchanged, skipping pip install.", fingerprint)
		return false
	}
	return true
}

func MarkInstalled(fingerprint string) {
	xviper.Set(installedFingerprintKey, fingerprint)
}

func DropInstallMark() {
	xviper.Set(installedFingerprintKey, "")
}

// InstallPackages runs one pip install for the whole package list. The
// call is atomic pass/fail on pip's exit code; there is no partial
// install detection beyond what pip itself reports.
func InstallPackages(pip *Tool, packages []string, planWriter io.Writer) error {
	if !pip.Available() {
		return fmt.Errorf("no pip available for installing packages")
	}
	command := common.NewCommander(pip.CLI("install")...)
	command.Extra(packages...)
	command.Option("--index-url", settings.Global.PypiURL())
	command.ConditionalFlag(common.DebugFlag(), "--verbose")
	command.ConditionalFlag(!pretty.Interactive, "--no-color", "--progress-bar", "off")

	common.Debug("===  pip install phase ===")
	fmt.Fprintf(planWriter, "---  pip install plan  ---\n")
	fmt.Fprintf(planWriter, "command: %v\n\n", command.CLI())

	environment := LaunchEnvironment()
	code, err := shell.New(environment, ".", command.CLI()...).Tracked(planWriter, false)
	if err != nil || code != 0 {
		common.Timeline("pip install fail.")
		return fmt.Errorf("pip install failed [%d/%x]: %w", code, code, orPipError(err, code))
	}
	common.Timeline("pip install done.")
	return nil
}

func orPipError(err error, code int) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("pip exited with status %d", code)
}
