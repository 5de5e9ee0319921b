package pretty

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dashlaunch/dashlaunch/common"
	"golang.org/x/term"
)

// Spinner shows install/probe activity on interactive terminals. On
// plain pipes it degrades to printing the message once.
type Spinner struct {
	message  string
	frames   []string
	running  bool
	stopChan chan bool
	mu       sync.Mutex
}

func NewSpinner(message string) *Spinner {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	if !Interactive || !Iconic {
		frames = []string{"|", "/", "-", "\\"}
	}
	return &Spinner{
		message:  message,
		frames:   frames,
		stopChan: make(chan bool, 1),
	}
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func (it *Spinner) Start() {
	it.mu.Lock()
	if it.running {
		it.mu.Unlock()
		return
	}
	it.running = true
	it.mu.Unlock()

	if !Interactive {
		common.Stdout("%s\n", it.message)
		return
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		it.cleanup()
		os.Exit(1)
	}()

	common.Stdout("%s", csif("?25l"))
	go it.animate()
}

func (it *Spinner) animate() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	at := 0
	for {
		select {
		case <-it.stopChan:
			return
		case <-ticker.C:
			it.mu.Lock()
			frame := it.frames[at]
			message := it.message
			it.mu.Unlock()
			if limit := terminalWidth() - 4; len(message) > limit && limit > 0 {
				message = message[:limit]
			}
			common.Stdout("\r%s%s %s", csif("0K"), frame, message)
			at = (at + 1) % len(it.frames)
		}
	}
}

func (it *Spinner) Update(message string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.message = message
}

func (it *Spinner) Stop(success bool) {
	it.mu.Lock()
	if !it.running {
		it.mu.Unlock()
		return
	}
	it.running = false
	it.mu.Unlock()

	if !Interactive {
		return
	}

	it.stopChan <- true
	it.cleanup()

	status, color := "[OK]", Green
	if !success {
		status, color = "[FAIL]", Red
	}
	if Iconic {
		if success {
			status = "✓"
		} else {
			status = "✗"
		}
	}
	common.Stdout("\r%s%s%s %s%s\n", csif("0K"), color, status, it.message, Reset)
}

func (it *Spinner) cleanup() {
	common.Stdout("\r%s", csif("0K"))
	common.Stdout("%s", csif("?25h"))
}
