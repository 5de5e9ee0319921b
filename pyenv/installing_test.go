package pyenv_test

import (
	"testing"

	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/hamlet"
	"github.com/dashlaunch/dashlaunch/pyenv"
	"github.com/dashlaunch/dashlaunch/xviper"
)

func TestInstallFingerprintGating(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	common.Product.ForceHome(t.TempDir())
	xviper.ResetRuntime()
	defer func() {
		common.Product.ForceHome("")
		xviper.ResetRuntime()
	}()

	fingerprint := common.BlueprintHash([]byte("packages: [streamlit requests pandas]"))
	must_be.True(pyenv.InstallNeeded(fingerprint, false))

	pyenv.MarkInstalled(fingerprint)
	wont_be.True(pyenv.InstallNeeded(fingerprint, false))
	must_be.True(pyenv.InstallNeeded(fingerprint, true))
	must_be.True(pyenv.InstallNeeded("somethingelse", false))

	pyenv.DropInstallMark()
	must_be.True(pyenv.InstallNeeded(fingerprint, false))
}

func TestInstallRefusesWithoutPip(t *testing.T) {
	_, wont_be := hamlet.Specifications(t)

	wont_be.Nil(pyenv.InstallPackages(nil, []string{"streamlit"}, &nullWriter{}))
}

type nullWriter struct{}

func (it *nullWriter) Write(blob []byte) (int, error) {
	return len(blob), nil
}
