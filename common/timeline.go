package common

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type timevent struct {
	when  time.Duration
	what  string
	depth int
}

var (
	TimelineEnabled bool

	timelineMutex sync.Mutex
	timelineDepth int
	timeline      []*timevent
	timelineStart = time.Now()
)

func Timeline(form string, details ...interface{}) {
	timelineMutex.Lock()
	defer timelineMutex.Unlock()
	timeline = append(timeline, &timevent{
		when:  time.Since(timelineStart),
		what:  fmt.Sprintf(form, details...),
		depth: timelineDepth,
	})
}

func TimelineBegin(form string, details ...interface{}) {
	Timeline(form, details...)
	timelineMutex.Lock()
	timelineDepth += 1
	timelineMutex.Unlock()
}

func TimelineEnd() {
	timelineMutex.Lock()
	if timelineDepth > 0 {
		timelineDepth -= 1
	}
	timelineMutex.Unlock()
}

func EndOfTimeline() {
	Timeline("The End.")
	if !TimelineEnabled || Silent() {
		return
	}
	timelineMutex.Lock()
	defer timelineMutex.Unlock()
	total := time.Since(timelineStart)
	Log("----  timeline  ----")
	for _, event := range timeline {
		percent := 100.0 * float64(event.when) / float64(total)
		indent := strings.Repeat("  ", event.depth)
		Log("%5.1f%%  %7s  %s%s", percent, Duration(event.when), indent, event.what)
	}
	Log("----  timeline  ----  %s total", Duration(total))
}
