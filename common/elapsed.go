package common

import (
	"fmt"
	"time"
)

type Duration time.Duration

func (it Duration) Seconds() float64 {
	return float64(it) / float64(time.Second)
}

func (it Duration) String() string {
	return fmt.Sprintf("%5.3f", it.Seconds())
}

func (it Duration) Truncate(granularity time.Duration) Duration {
	return Duration(time.Duration(it).Truncate(granularity))
}

type stopwatch struct {
	message string
	started time.Time
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	message := fmt.Sprintf(form, details...)
	return &stopwatch{
		message: message,
		started: time.Now(),
	}
}

func (it *stopwatch) String() string {
	return it.Elapsed().String()
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Debug() Duration {
	elapsed := it.Elapsed()
	Debug("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Log() Duration {
	elapsed := it.Elapsed()
	Log("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Report() Duration {
	return it.Log()
}

func (it *stopwatch) Text() string {
	return it.Elapsed().String()
}
