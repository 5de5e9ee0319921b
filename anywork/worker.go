package anywork

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/dashlaunch/dashlaunch/common"
)

// Background worker pool for concurrent probing work. Fire work in with
// Backlog, wait for the backlog to drain with Sync. Failures are
// panics, counted and reported, never fatal to the pool.

type Work func()
type WorkQueue chan Work
type Failures chan string
type Counters chan uint64

var (
	group     sync.WaitGroup
	pipeline  WorkQueue
	failpipe  Failures
	errcount  Counters
	headcount uint64
)

func catcher(title string, identity uint64) {
	catch := recover()
	if catch != nil {
		failpipe <- fmt.Sprintf("Recovering %q #%d: %v", title, identity, catch)
	}
}

func process(fun Work, identity uint64) {
	defer catcher("process", identity)
	fun()
}

func member(identity uint64) {
	defer catcher("member", identity)
	for {
		work, ok := <-pipeline
		if !ok {
			break
		}
		process(work, identity)
		group.Done()
	}
}

func watcher(failures Failures, counters Counters) {
	counter := uint64(0)
	for {
		select {
		case fail := <-failures:
			counter += 1
			fmt.Fprintln(os.Stderr, fail)
		case counters <- counter:
			counter = 0
		}
	}
}

func init() {
	pipeline = make(WorkQueue, 1000)
	failpipe = make(Failures)
	errcount = make(Counters)
	headcount = 0
	AutoScale()
	go watcher(failpipe, errcount)
}

func Scale() uint64 {
	return headcount
}

func AutoScale() {
	limit := uint64(common.OptimalWorkerCount())
	for headcount < limit {
		go member(headcount)
		headcount += 1
	}
}

func Backlog(todo Work) {
	if todo != nil {
		group.Add(1)
		pipeline <- todo
	}
}

func Sync() error {
	trials := int(Scale())
	for retries := 0; retries < trials; retries++ {
		runtime.Gosched()
	}
	group.Wait()
	count := <-errcount
	if count > 0 {
		return fmt.Errorf("there has been %d failures, see messages above", count)
	}
	return nil
}
