package settings

import (
	"net/url"
	"os"
	"sync"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pathlib"
	"gopkg.in/yaml.v2"
)

const (
	defaultPypiURL       = `https://pypi.org/simple/`
	defaultPypiHost      = `files.pythonhosted.org`
	defaultDashboardHost = `localhost`
)

type Endpoints struct {
	Pypi        string `yaml:"pypi,omitempty"`
	PypiTrusted string `yaml:"pypi-trusted,omitempty"`
}

type Dashboard struct {
	Host string `yaml:"host,omitempty"`
}

type Network struct {
	HttpProxy  string `yaml:"http-proxy,omitempty"`
	HttpsProxy string `yaml:"https-proxy,omitempty"`
	NoProxy    string `yaml:"no-proxy,omitempty"`
}

type Settings struct {
	Endpoints *Endpoints `yaml:"endpoints,omitempty"`
	Dashboard *Dashboard `yaml:"dashboard,omitempty"`
	Network   *Network   `yaml:"network,omitempty"`
}

func Empty() *Settings {
	return &Settings{
		Endpoints: &Endpoints{},
		Dashboard: &Dashboard{},
		Network:   &Network{},
	}
}

func FromBytes(blob []byte) (*Settings, error) {
	result := Empty()
	err := yaml.Unmarshal(blob, result)
	if err != nil {
		return nil, err
	}
	if result.Endpoints == nil {
		result.Endpoints = &Endpoints{}
	}
	if result.Dashboard == nil {
		result.Dashboard = &Dashboard{}
	}
	if result.Network == nil {
		result.Network = &Network{}
	}
	return result, nil
}

func (it *Settings) AsYaml() ([]byte, error) {
	return yaml.Marshal(it)
}

var (
	chain     *Settings
	summoning sync.Mutex
)

// SummonSettings loads settings.yaml from the product home when present,
// or falls back to built-in defaults. Loaded once per process.
func SummonSettings() (*Settings, error) {
	summoning.Lock()
	defer summoning.Unlock()
	if chain != nil {
		return chain, nil
	}
	source := common.Product.SettingsYamlFile()
	if !pathlib.IsFile(source) {
		chain = Empty()
		return chain, nil
	}
	blob, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	parsed, err := FromBytes(blob)
	if err != nil {
		return nil, err
	}
	common.Debug("Settings loaded from %q.", source)
	chain = parsed
	return chain, nil
}

type gateway bool

// Global is the accessor surface the rest of the codebase uses, so that
// callers never need to care whether a settings file exists.
var Global gateway

func (it gateway) summoned() *Settings {
	result, err := SummonSettings()
	if err != nil {
		common.Uncritical("settings", err)
		return Empty()
	}
	return result
}

func (it gateway) PypiURL() string {
	value := it.summoned().Endpoints.Pypi
	if len(value) > 0 {
		return value
	}
	return defaultPypiURL
}

func (it gateway) PypiTrustedHost() string {
	value := it.summoned().Endpoints.PypiTrusted
	if len(value) > 0 {
		return justHostname(value)
	}
	return defaultPypiHost
}

func (it gateway) DashboardHost() string {
	value := it.summoned().Dashboard.Host
	if len(value) > 0 {
		return value
	}
	return defaultDashboardHost
}

func (it gateway) HttpProxy() string {
	return it.summoned().Network.HttpProxy
}

func (it gateway) HttpsProxy() string {
	return it.summoned().Network.HttpsProxy
}

func (it gateway) NoProxy() string {
	return it.summoned().Network.NoProxy
}

// Hostnames lists the hosts the launcher may need to reach, for
// connectivity diagnostics.
func (it gateway) Hostnames() []string {
	return []string{
		justHostname(it.PypiURL()),
		it.PypiTrustedHost(),
		it.DashboardHost(),
	}
}

func justHostname(entry string) string {
	parsed, err := url.Parse(entry)
	if err != nil || len(parsed.Hostname()) == 0 {
		return entry
	}
	return parsed.Hostname()
}
