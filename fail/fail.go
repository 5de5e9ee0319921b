package fail

import "fmt"

// Helpers to convert deep error conditions into panics that are caught
// at function boundary with `defer fail.Around(&err)`. Only failures
// raised by this package are converted; other panics keep flying.

type failure struct {
	err error
}

func (it failure) Error() string {
	return it.err.Error()
}

func Around(err *error) {
	caught := recover()
	if caught == nil {
		return
	}
	wrapped, ok := caught.(failure)
	if !ok {
		panic(caught)
	}
	*err = wrapped.err
}

func On(condition bool, form string, details ...interface{}) {
	if condition {
		panic(failure{fmt.Errorf(form, details...)})
	}
}

func Fast(err error) {
	if err != nil {
		panic(failure{err})
	}
}
