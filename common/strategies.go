package common

import (
	"os"
	"path/filepath"
)

const (
	DASHLAUNCH_HOME_VARIABLE = `DASHLAUNCH_HOME`
	DASHLAUNCH_PRODUCT_NAME  = `DASHLAUNCH_PRODUCT_NAME`
	DASHLAUNCH_NAME          = `DASHLAUNCH`
)

type (
	ProductStrategy interface {
		Name() string
		ForceHome(string)
		HomeVariable() string
		Home() string
		SettingsYamlFile() string
		ConfigYamlFile() string
		JournalFile() string
		LogsDirectory() string
	}

	launcherStrategy struct {
		forcedHome string
	}
)

func LauncherMode() ProductStrategy {
	return &launcherStrategy{}
}

func (it *launcherStrategy) Name() string {
	if value := os.Getenv(DASHLAUNCH_PRODUCT_NAME); len(value) > 0 {
		return value
	}
	return DASHLAUNCH_NAME
}

func (it *launcherStrategy) ForceHome(value string) {
	it.forcedHome = value
}

func (it *launcherStrategy) HomeVariable() string {
	return DASHLAUNCH_HOME_VARIABLE
}

func (it *launcherStrategy) Home() string {
	if len(it.forcedHome) > 0 {
		return ExpandPath(it.forcedHome)
	}
	home := os.Getenv(DASHLAUNCH_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func (it *launcherStrategy) SettingsYamlFile() string {
	return filepath.Join(it.Home(), "settings.yaml")
}

func (it *launcherStrategy) ConfigYamlFile() string {
	return filepath.Join(it.Home(), "dashlaunch.yaml")
}

func (it *launcherStrategy) JournalFile() string {
	return filepath.Join(it.Home(), "launch.journal")
}

func (it *launcherStrategy) LogsDirectory() string {
	return filepath.Join(it.Home(), "logs")
}
