package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dashlaunch/dashlaunch/hamlet"
	"github.com/dashlaunch/dashlaunch/manifest"
)

func TestDefaultManifestMatchesLaunchContract(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut := manifest.Default()
	must_be.Equal("pump_bot.py", sut.AppFile())
	must_be.Equal([]string{"streamlit", "requests", "pandas"}, sut.PackageList())
	must_be.Equal(8501, sut.Port())
	must_be.Equal(false, sut.Headless())

	ok, err := sut.Validate()
	must_be.True(ok)
	must_be.Nil(err)
}

func TestManifestOverridesDefaults(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	blob := []byte(`
name: Paper Trader
app: paper_bot.py
packages:
  - streamlit
server:
  port: 9000
  headless: true
env:
  PAPER_TRADING: "1"
  API_LEVEL: basic
preRun:
  - python -m compileall paper_bot.py
`)
	sut, err := manifest.FromBytes(blob)
	must_be.Nil(err)
	must_be.Equal("paper_bot.py", sut.AppFile())
	must_be.Equal([]string{"streamlit"}, sut.PackageList())
	must_be.Equal(9000, sut.Port())
	must_be.Equal(true, sut.Headless())
	must_be.Equal("Paper Trader", sut.DisplayName())
	must_be.Equal([]string{"API_LEVEL=basic", "PAPER_TRADING=1"}, sut.AsEnvironment())
	must_be.Equal(1, len(sut.PreRunScripts()))
}

func TestManifestValidation(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	broken := manifest.Default()
	broken.App = ""
	ok, err := broken.Validate()
	wont_be.True(ok)
	wont_be.Nil(err)

	broken = manifest.Default()
	broken.Packages = []string{}
	ok, _ = broken.Validate()
	wont_be.True(ok)

	broken = manifest.Default()
	broken.Server.Port = 70000
	ok, _ = broken.Validate()
	wont_be.True(ok)

	ok, err = manifest.Default().Validate()
	must_be.True(ok)
	must_be.Nil(err)
}

func TestBlankHooksAreRejected(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := manifest.FromBytes([]byte("preRun:\n  - \"\"\n"))
	must_be.Nil(err)
	ok, err := sut.Validate()
	wont_be.True(ok)
	wont_be.Nil(err)

	sut = manifest.Default()
	sut.PreRun = []string{"   "}
	ok, _ = sut.Validate()
	wont_be.True(ok)

	sut = manifest.Default()
	sut.PreRun = []string{"python prepare.py"}
	ok, err = sut.Validate()
	must_be.True(ok)
	must_be.Nil(err)
}

func TestFingerprintFollowsPackageSet(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	left, right := manifest.Default(), manifest.Default()
	must_be.Equal(left.Fingerprint(), right.Fingerprint())

	right.Packages = append(right.Packages, "numpy")
	wont_be.Equal(left.Fingerprint(), right.Fingerprint())
}

func TestDetectFallsBackToDefaults(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	workarea := t.TempDir()
	sut, err := manifest.Detect(workarea)
	must_be.Nil(err)
	must_be.Equal("pump_bot.py", sut.AppFile())

	custom := filepath.Join(workarea, manifest.DefaultFilename)
	must_be.Nil(os.WriteFile(custom, []byte("app: other_bot.py\n"), 0o644))
	sut, err = manifest.Detect(workarea)
	must_be.Nil(err)
	must_be.Equal("other_bot.py", sut.AppFile())
	must_be.Equal(custom, sut.Source())
}
