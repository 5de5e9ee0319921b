package operations

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dashlaunch/dashlaunch/anywork"
	"github.com/dashlaunch/dashlaunch/cloud"
	"github.com/dashlaunch/dashlaunch/common"
	"github.com/dashlaunch/dashlaunch/manifest"
	"github.com/dashlaunch/dashlaunch/pathlib"
	"github.com/dashlaunch/dashlaunch/pretty"
	"github.com/dashlaunch/dashlaunch/pyenv"
	"github.com/dashlaunch/dashlaunch/settings"
)

type Diagnostic struct {
	Label    string
	Critical bool
	Ok       bool
	Details  string
}

type diagnosticSink struct {
	sync.Mutex
	found []*Diagnostic
}

func (it *diagnosticSink) add(diagnostic *Diagnostic) {
	it.Lock()
	defer it.Unlock()
	it.found = append(it.found, diagnostic)
}

func (it *diagnosticSink) sorted() []*Diagnostic {
	sort.Slice(it.found, func(left, right int) bool {
		return it.found[left].Label < it.found[right].Label
	})
	return it.found
}

// RunDiagnostics probes everything a launch would need, concurrently,
// and reports each result. Nothing is installed or modified.
func RunDiagnostics(config *manifest.Manifest) ([]*Diagnostic, bool) {
	common.TimelineBegin("diagnostics")
	defer common.TimelineEnd()

	sink := &diagnosticSink{}
	searchPath := pathlib.TargetPath()

	anywork.Backlog(func() {
		python, ok := pyenv.FindPython(searchPath)
		detail := "no working python interpreter on PATH"
		if ok {
			detail = fmt.Sprintf("%s at %s", python.Version, python.Command[0])
		}
		sink.add(&Diagnostic{Label: "python", Critical: true, Ok: ok, Details: detail})

		// pip and streamlit resolution depend on which python won,
		// so they stay on this worker behind the python probe.
		pip, ok := pyenv.FindPip(searchPath, python)
		detail = "pip not available"
		if ok {
			detail = pip.Version
		}
		sink.add(&Diagnostic{Label: "pip", Critical: true, Ok: ok, Details: detail})

		runner, ok := pyenv.FindStreamlit(searchPath, python)
		detail = "streamlit not installed yet (install phase will bring it)"
		if ok {
			detail = runner.Version
		}
		sink.add(&Diagnostic{Label: "streamlit", Critical: false, Ok: ok, Details: detail})
	})

	anywork.Backlog(func() {
		ok := pathlib.IsFile(config.AppFile())
		detail := fmt.Sprintf("%q missing from working directory", config.AppFile())
		if ok {
			detail = fmt.Sprintf("%q found", config.AppFile())
		}
		sink.add(&Diagnostic{Label: "artifact", Critical: true, Ok: ok, Details: detail})
	})

	anywork.Backlog(func() {
		err := pathlib.EnsureDirectoryExists(common.Product.Home())
		sink.add(&Diagnostic{
			Label:    "home",
			Critical: false,
			Ok:       err == nil,
			Details:  fmt.Sprintf("%s (%v)", common.Product.Home(), orOk(err)),
		})
	})

	anywork.Backlog(func() {
		endpoint := settings.Global.PypiURL()
		ok := cloud.Reachable(endpoint)
		detail := fmt.Sprintf("%s not reachable; installs will fail without network", endpoint)
		if ok {
			detail = fmt.Sprintf("%s reachable", endpoint)
		}
		sink.add(&Diagnostic{Label: "pypi", Critical: false, Ok: ok, Details: detail})
	})

	anywork.Backlog(func() {
		host := settings.Global.DashboardHost()
		busy := cloud.Reachable(cloud.DashboardURL(host, config.Port()))
		detail := fmt.Sprintf("port %d is free", config.Port())
		if busy {
			detail = fmt.Sprintf("something already answers on port %d; launch will conflict", config.Port())
		}
		sink.add(&Diagnostic{Label: "port", Critical: false, Ok: !busy, Details: detail})
	})

	common.Error("diagnostics", anywork.Sync())

	healthy := true
	for _, diagnostic := range sink.found {
		if diagnostic.Critical && !diagnostic.Ok {
			healthy = false
		}
	}
	return sink.sorted(), healthy
}

// PrintDiagnostics renders one line per check, colored by outcome.
func PrintDiagnostics(diagnostics []*Diagnostic) {
	for _, diagnostic := range diagnostics {
		status, color := "ok  ", pretty.Green
		if !diagnostic.Ok {
			status, color = "fail", pretty.Yellow
			if diagnostic.Critical {
				color = pretty.Red
			}
		}
		common.Stdout("%s%s  %-10s %s%s\n", color, status, diagnostic.Label, diagnostic.Details, pretty.Reset)
	}
}

func orOk(err error) interface{} {
	if err == nil {
		return "writable"
	}
	return err
}
