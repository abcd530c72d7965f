package busqueda

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single trailing-edge
// invocation: each Programar call cancels the pending one, so only the last
// function within the window ever runs. There is exactly one pending timer at
// a time and no suppression of work already started.
type Debouncer struct {
	demora time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(demora time.Duration) *Debouncer {
	return &Debouncer{demora: demora}
}

// Programar schedules fn to run after the debounce window, replacing any
// previously scheduled function that has not fired yet.
func (d *Debouncer) Programar(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.demora, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancelar drops the pending invocation, if any.
func (d *Debouncer) Cancelar() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pendiente reports whether an invocation is scheduled and has not fired.
func (d *Debouncer) Pendiente() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
