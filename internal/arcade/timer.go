package arcade

import "time"

// Interval is a periodic timer advanced explicitly by the game loop.
// It fires once per whole Period of running time, first at Period after
// Start.
type Interval struct {
	Period  time.Duration
	elapsed time.Duration
	running bool
}

// NewInterval creates a stopped timer.
func NewInterval(period time.Duration) Interval {
	return Interval{Period: period}
}

// Start begins counting from zero. Starting a running timer is a no-op.
func (t *Interval) Start() {
	if t.running {
		return
	}
	t.running = true
	t.elapsed = 0
}

// Stop halts the timer. Stopping a stopped timer is a no-op.
func (t *Interval) Stop() {
	t.running = false
}

// Running reports whether the timer is started.
func (t *Interval) Running() bool {
	return t.running
}

// Advance adds dt of running time and returns how many times the timer
// fired. A stopped timer never fires.
func (t *Interval) Advance(dt time.Duration) int {
	if !t.running || t.Period <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := int(t.elapsed / t.Period)
	t.elapsed -= time.Duration(fired) * t.Period
	return fired
}

// Label is a mutable on-screen text at a world position.
type Label struct {
	Text    string
	Pos     Vec2
	Visible bool
}
