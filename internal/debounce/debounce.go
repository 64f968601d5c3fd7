// Package debounce coalesces bursts of input events into a single delayed
// callback, delivered as a bubbletea message.
package debounce

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Delay is the quiescence window after the last keystroke
const Delay = 225 * time.Millisecond

// Msg is delivered when a scheduled delay elapses. Only a Msg whose token
// belongs to the most recent Schedule is accepted.
type Msg struct {
	token uint64
}

// Debouncer hands out delays where each new schedule supersedes all earlier
// ones.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	token uint64
}

// New creates a debouncer with the standard delay
func New() *Debouncer {
	return NewWithDelay(Delay)
}

// NewWithDelay creates a debouncer with a custom delay
func NewWithDelay(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule supersedes any pending delay and returns a command that emits a
// Msg once the delay has passed.
func (d *Debouncer) Schedule() tea.Cmd {
	d.mu.Lock()
	d.token++
	token := d.token
	d.mu.Unlock()

	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return Msg{token: token}
	})
}

// Cancel supersedes any pending delay without scheduling a new one
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	d.token++
	d.mu.Unlock()
}

// Accept reports whether msg is the latest scheduled delay. It accepts a
// given token at most once.
func (d *Debouncer) Accept(msg Msg) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if msg.token == 0 || msg.token != d.token {
		return false
	}
	// consume so a duplicate delivery cannot run a second pass
	d.token++
	return true
}

// Delay returns the quiescence window
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}
