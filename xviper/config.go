package xviper

import (
	"sync"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/pathlib"
	"github.com/spf13/viper"
)

// Small wrapper around viper that keeps launcher state (install
// fingerprints, anonymous identity) in one yaml file under the product
// home, written through on every Set.

type config struct {
	sync.Mutex
	filename string
	viper    *viper.Viper
}

var registry = &config{}

func (it *config) summon() *viper.Viper {
	if it.viper != nil {
		return it.viper
	}
	it.filename = common.Product.ConfigYamlFile()
	it.viper = viper.New()
	it.viper.SetConfigFile(it.filename)
	it.viper.SetConfigType("yaml")
	if pathlib.IsFile(it.filename) {
		common.Error("config read", it.viper.ReadInConfig())
	}
	return it.viper
}

func (it *config) save() {
	if it.viper == nil {
		return
	}
	common.Error("ensure config home", pathlib.EnsureDirectoryExists(common.Product.Home()))
	common.Error("config write", it.viper.WriteConfigAs(it.filename))
	common.PlatformSyncDelay()
}

// ResetRuntime drops the cached state so that a forced --home change
// takes effect; next access reloads from the new location.
func ResetRuntime() {
	registry.Lock()
	defer registry.Unlock()
	registry.viper = nil
	registry.filename = ""
}

func Set(key string, value interface{}) {
	registry.Lock()
	defer registry.Unlock()
	registry.summon().Set(key, value)
	registry.save()
}

func Get(key string) interface{} {
	registry.Lock()
	defer registry.Unlock()
	return registry.summon().Get(key)
}

func GetString(key string) string {
	registry.Lock()
	defer registry.Unlock()
	return registry.summon().GetString(key)
}

func GetInt64(key string) int64 {
	registry.Lock()
	defer registry.Unlock()
	return registry.summon().GetInt64(key)
}

func AllKeys() []string {
	registry.Lock()
	defer registry.Unlock()
	return registry.summon().AllKeys()
}
