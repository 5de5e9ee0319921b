package operations

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dashlaunch/dashlaunch/cloud"
	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/journal"
	"github.com/dashlaunch/dashlaunch/manifest"
	"github.com/dashlaunch/dashlaunch/pathlib"
	"github.com/dashlaunch/dashlaunch/pretty"
	"github.com/dashlaunch/dashlaunch/pyenv"
	"github.com/dashlaunch/dashlaunch/settings"
	"github.com/dashlaunch/dashlaunch/shell"
	"github.com/dashlaunch/dashlaunch/xviper"
	"github.com/joho/godotenv"
)

// LaunchCountKey is where the running total of launches from this home
// is persisted.
const LaunchCountKey = `stats.launches`

type LaunchFlags struct {
	ManifestFile string
	Port         int
	Headless     bool
	HeadlessSet  bool
	Force        bool
	NoInstall    bool
}

// LoadLaunchManifest resolves the manifest for this run and applies
// command line overrides on top of it.
func LoadLaunchManifest(flags *LaunchFlags) *manifest.Manifest {
	var config *manifest.Manifest
	var err error
	if len(flags.ManifestFile) > 0 {
		config, err = manifest.Load(flags.ManifestFile)
	} else {
		config, err = manifest.Detect(".")
	}
	pretty.Guard(err == nil, common.ExitPrecondition, "Error: %v", err)
	ok, err := config.Validate()
	pretty.Guard(ok, common.ExitPrecondition, "Error: %v", err)
	if flags.Port > 0 {
		config.Server.Port = flags.Port
	}
	if flags.HeadlessSet {
		config.Server.Headless = flags.Headless
	}
	return config
}

// ProbeToolchain is the environment prober stage: python first, then
// pip, each failing the run with exit status one and a remediation
// hint. Pip is not probed at all when python is absent.
func ProbeToolchain(searchPath pathlib.PathParts) (*pyenv.Tool, *pyenv.Tool) {
	pretty.Progress(1, "Checking Python installation.")
	python, ok := pyenv.FindPython(searchPath)
	if !ok {
		journal.Post("precondition", "python", "no working python interpreter on PATH")
		pretty.Exit(common.ExitPrecondition, "Error: Python is not installed or not in PATH.\nInstall Python 3 from https://www.python.org/downloads/ and make sure 'Add to PATH' is selected.")
	}
	common.Log("Using %s (%s).", python.Version, python.Command[0])

	pretty.Progress(2, "Checking pip availability.")
	pip, ok := pyenv.FindPip(searchPath, python)
	if !ok {
		journal.Post("precondition", "pip", "pip not available for %s", python.Command[0])
		pretty.Exit(common.ExitPrecondition, "Error: pip is not available.\nReinstall Python with pip included, or run: python -m ensurepip --upgrade")
	}
	common.Log("Using %s.", pip.Version)
	return python, pip
}

// EnsurePackages is the dependency installer stage: one atomic pip
// install over the configured package list, gated on its exit code.
func EnsurePackages(pip *pyenv.Tool, config *manifest.Manifest, force bool) {
	pretty.Progress(3, "Installing dependencies: %v.", config.PackageList())
	fingerprint := config.Fingerprint()
	if !pyenv.InstallNeeded(fingerprint, force) {
		pretty.Note("Dependencies unchanged since last successful install, skipping. Use --force to reinstall.")
		return
	}
	planfile, err := pathlib.Create(filepath.Join(common.Product.LogsDirectory(), "install_plan.log"))
	pretty.Guard(err == nil, common.ExitPrecondition, "Error: could not create install plan file, reason: %v", err)
	defer planfile.Close()

	spinner := pretty.NewSpinner(fmt.Sprintf("pip install %v", config.PackageList()))
	spinner.Start()
	err = pyenv.InstallPackages(pip, config.PackageList(), planfile)
	spinner.Stop(err == nil)
	if err != nil {
		pyenv.DropInstallMark()
		journal.Post("precondition", "install", "%v", err)
		pretty.Exit(common.ExitPrecondition, "Error: dependency installation failed, reason: %v\nSee %q for the full pip output.", err, planfile.Name())
	}
	pyenv.MarkInstalled(fingerprint)
}

// VerifyArtifact is the artifact locator stage: the application file
// must exist in the working directory before anything is launched.
func VerifyArtifact(config *manifest.Manifest) string {
	pretty.Progress(4, "Locating application file %q.", config.AppFile())
	application := config.AppFile()
	if !pathlib.IsFile(application) {
		workdir, _ := os.Getwd()
		journal.Post("precondition", "artifact", "missing %s in %s", application, workdir)
		pretty.Exit(common.ExitPrecondition, "Error: %q not found in %q.\nPlace the application file next to this launcher, or point a manifest at it.", application, workdir)
	}
	return application
}

// RunnerArguments builds the exact Streamlit invocation, e.g.
// "run pump_bot.py --server.headless false --server.port 8501".
func RunnerArguments(config *manifest.Manifest) []string {
	return []string{
		"run", config.AppFile(),
		"--server.headless", strconv.FormatBool(config.Headless()),
		"--server.port", strconv.Itoa(config.Port()),
	}
}

func executeHooks(config *manifest.Manifest, environment []string) {
	hooks := config.PreRunScripts()
	if len(hooks) == 0 {
		return
	}
	common.Timeline("pre run hooks started")
	common.Debug("===  pre run hook phase ===")
	for _, script := range hooks {
		parts, err := shell.Split(script)
		pretty.Guard(err == nil, common.ExitPrecondition, "Error: hook %q parsing failure: %v", script, err)
		pretty.Guard(len(parts) > 0, common.ExitPrecondition, "Error: hook %q is blank", script)
		common.Debug("Running pre run hook %q ...", script)
		_, err = shell.New(environment, ".", parts...).Execute(false)
		pretty.Guard(err == nil, common.ExitPrecondition, "Error: hook %q failure: %v", script, err)
	}
	common.Timeline("pre run hooks done")
}

func launchEnvironment(config *manifest.Manifest) []string {
	extra := []string{}
	if len(config.EnvFile) > 0 {
		values, err := godotenv.Read(config.EnvFile)
		pretty.Guard(err == nil, common.ExitPrecondition, "Error: could not read env file %q, reason: %v", config.EnvFile, err)
		for key, value := range values {
			extra = append(extra, fmt.Sprintf("%s=%s", key, value))
		}
	}
	extra = append(extra, config.AsEnvironment()...)
	return pyenv.LaunchEnvironment(extra...)
}

// LaunchDashboard is the process launcher stage: resolve the Streamlit
// runner, spawn it against the artifact, and block until the child
// exits. The child owns the terminal; there is no output capture, no
// restart and no timeout.
func LaunchDashboard(searchPath pathlib.PathParts, python *pyenv.Tool, config *manifest.Manifest) {
	pretty.Progress(5, "Launching %s.", config.DisplayName())
	runner, ok := pyenv.FindStreamlit(searchPath, python)
	if !ok {
		journal.Post("precondition", "streamlit", "no streamlit runner after install")
		pretty.Exit(common.ExitPrecondition, "Error: streamlit is not available even after installation.\nTry: pip install streamlit")
	}

	environment := launchEnvironment(config)
	executeHooks(config, environment)

	host := settings.Global.DashboardHost()
	go func() {
		if cloud.WaitForDashboard(host, config.Port(), 60*time.Second) {
			pretty.Highlight("%sDashboard is up at %s", pretty.Rocket, cloud.DashboardURL(host, config.Port()))
		}
	}()

	before, beforeErr := Snapshot()
	xviper.Set(LaunchCountKey, xviper.GetInt64(LaunchCountKey)+1)
	journal.Post("launch", config.AppFile(), "started on port %d", config.Port())
	common.Debug("about to run command - %v", runner.CLI(RunnerArguments(config)...))

	exitcode := 0
	var err error
	shell.WithInterrupt(func() {
		task := shell.New(environment, ".", runner.CLI(RunnerArguments(config)...)...)
		if common.NoOutputCapture {
			exitcode, err = task.Execute(true)
		} else {
			exitcode, err = task.Tee(common.Product.LogsDirectory(), true)
		}
	})

	after, afterErr := Snapshot()
	SubprocessWarning(before, after, beforeErr, afterErr)

	journal.Post("launch", config.AppFile(), "exit %d", exitcode)
	if err != nil || exitcode != 0 {
		pretty.Exit(common.ExitChildFailure, "Error: %v (application exit %d)", err, exitcode)
	}
	pretty.Ok()
}

// RunLaunchPipeline is the whole linear flow: probe, install, locate,
// launch. Every stage gates on the previous one.
func RunLaunchPipeline(flags *LaunchFlags) {
	common.TimelineBegin("launch pipeline")
	defer common.TimelineEnd()

	pretty.Progress(0, "reset")
	config := LoadLaunchManifest(flags)
	searchPath := pathlib.TargetPath()

	python, pip := ProbeToolchain(searchPath)
	if flags.NoInstall {
		pretty.Note("Skipping dependency installation on request.")
	} else {
		EnsurePackages(pip, config, flags.Force)
	}
	VerifyArtifact(config)
	LaunchDashboard(searchPath, python, config)
}
