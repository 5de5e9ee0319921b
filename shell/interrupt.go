package shell

import (
	"os"
	"os/signal"
)

// WithInterrupt runs todo while interrupt signals are delivered to the
// child process group instead of killing this launcher, so that the
// launcher survives Ctrl-C long enough to report what happened.
func WithInterrupt(todo func()) {
	channel := make(chan os.Signal, 1)
	signal.Notify(channel, os.Interrupt)
	defer func() {
		signal.Stop(channel)
		close(channel)
	}()
	todo()
}
