package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pathlib"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultFilename is looked up from the working directory when no
	// manifest is given explicitly.
	DefaultFilename = `launcher.yaml`

	defaultAppFile = `pump_bot.py`
	defaultPort    = 8501
)

var defaultPackages = []string{"streamlit", "requests", "pandas"}

type Server struct {
	Port     int  `yaml:"port"`
	Headless bool `yaml:"headless"`
}

type Manifest struct {
	Name     string            `yaml:"name,omitempty"`
	App      string            `yaml:"app"`
	Packages []string          `yaml:"packages"`
	Server   Server            `yaml:"server"`
	Env      map[string]string `yaml:"env,omitempty"`
	EnvFile  string            `yaml:"envFile,omitempty"`
	PreRun   []string          `yaml:"preRun,omitempty"`

	source string
}

// Default is the manifest used when no launcher.yaml exists: launch
// pump_bot.py through Streamlit on port 8501 with the browser opening.
func Default() *Manifest {
	return &Manifest{
		App:      defaultAppFile,
		Packages: append([]string{}, defaultPackages...),
		Server: Server{
			Port:     defaultPort,
			Headless: false,
		},
	}
}

func FromBytes(blob []byte) (*Manifest, error) {
	result := Default()
	err := yaml.Unmarshal(blob, result)
	if err != nil {
		return nil, fmt.Errorf("could not parse manifest, reason: %w", err)
	}
	return result, nil
}

func Load(filename string) (*Manifest, error) {
	blob, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read manifest %q, reason: %w", filename, err)
	}
	result, err := FromBytes(blob)
	if err != nil {
		return nil, err
	}
	result.source = filename
	common.Debug("Manifest loaded from %q.", filename)
	return result, nil
}

// Detect gives the manifest for a working directory: launcher.yaml when
// present, otherwise the built-in defaults.
func Detect(directory string) (*Manifest, error) {
	candidate := filepath.Join(directory, DefaultFilename)
	if pathlib.IsFile(candidate) {
		return Load(candidate)
	}
	result := Default()
	result.source = directory
	return result, nil
}

func (it *Manifest) Validate() (bool, error) {
	if len(it.App) == 0 {
		return false, fmt.Errorf("manifest is missing the application file ('app:' entry)")
	}
	if len(it.Packages) == 0 {
		return false, fmt.Errorf("manifest has an empty package list")
	}
	for _, name := range it.Packages {
		if len(name) == 0 {
			return false, fmt.Errorf("manifest has a blank package name")
		}
	}
	if it.Server.Port < 1 || it.Server.Port > 65535 {
		return false, fmt.Errorf("manifest server port %d is out of range", it.Server.Port)
	}
	for _, hook := range it.PreRun {
		if len(strings.TrimSpace(hook)) == 0 {
			return false, fmt.Errorf("manifest has a blank pre-run hook")
		}
	}
	return true, nil
}

func (it *Manifest) AppFile() string {
	return it.App
}

func (it *Manifest) PackageList() []string {
	return it.Packages
}

func (it *Manifest) Port() int {
	return it.Server.Port
}

func (it *Manifest) Headless() bool {
	return it.Server.Headless
}

func (it *Manifest) PreRunScripts() []string {
	return it.PreRun
}

func (it *Manifest) Source() string {
	return it.source
}

func (it *Manifest) DisplayName() string {
	if len(it.Name) > 0 {
		return it.Name
	}
	return it.App
}

// AsEnvironment gives the manifest env entries as sorted K=V pairs.
func (it *Manifest) AsEnvironment() []string {
	result := make([]string, 0, len(it.Env))
	for key, value := range it.Env {
		result = append(result, fmt.Sprintf("%s=%s", key, value))
	}
	sort.Strings(result)
	return result
}

// Fingerprint covers everything that affects the installed environment,
// so an unchanged manifest can skip the install phase.
func (it *Manifest) Fingerprint() string {
	content := fmt.Sprintf("packages: %v", it.Packages)
	return common.BlueprintHash([]byte(content))
}
