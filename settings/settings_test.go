package settings_test

import (
	"testing"

	"github.com/dashlaunch/dashlaunch/hamlet"
	"github.com/dashlaunch/dashlaunch/settings"
)

func TestThatDefaultValuesAreVisible(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := settings.SummonSettings()
	must_be.Nil(err)
	wont_be.Nil(sut)

	must_be.Equal("https://pypi.org/simple/", settings.Global.PypiURL())
	must_be.Equal("files.pythonhosted.org", settings.Global.PypiTrustedHost())
	must_be.Equal("localhost", settings.Global.DashboardHost())
	must_be.Equal("", settings.Global.HttpProxy())
	must_be.Equal("", settings.Global.HttpsProxy())
	must_be.Equal("", settings.Global.NoProxy())
	must_be.Equal(3, len(settings.Global.Hostnames()))
	must_be.Equal("pypi.org", settings.Global.Hostnames()[0])
}

func TestSettingsParsing(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	blob := []byte(`
endpoints:
  pypi: https://mirror.example.com/simple/
dashboard:
  host: 127.0.0.1
network:
  https-proxy: http://proxy.example.com:3128
`)
	sut, err := settings.FromBytes(blob)
	must_be.Nil(err)
	must_be.Equal("https://mirror.example.com/simple/", sut.Endpoints.Pypi)
	must_be.Equal("127.0.0.1", sut.Dashboard.Host)
	must_be.Equal("http://proxy.example.com:3128", sut.Network.HttpsProxy)

	recycled, err := sut.AsYaml()
	must_be.Nil(err)
	again, err := settings.FromBytes(recycled)
	must_be.Nil(err)
	must_be.Equal(sut.Endpoints.Pypi, again.Endpoints.Pypi)
}
