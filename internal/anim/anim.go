// Package anim holds the animation clock that advances the surface's
// time factor while playback is running.
package anim

import "time"

// TickInterval is the playback frame period.
const TickInterval = 100 * time.Millisecond

// Step is the time factor increment applied on each tick.
const Step = 0.1

// State is the playback state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "RUNNING"
	}
	return "STOPPED"
}

// Clock tracks playback state and the accumulated time factor. Ticks
// advance the time factor only while running; Start and Stop are
// idempotent.
type Clock struct {
	state State
	time  float64
}

func NewClock() *Clock { return &Clock{} }

func (c *Clock) State() State  { return c.state }
func (c *Clock) Running() bool { return c.state == Running }
func (c *Clock) Time() float64 { return c.time }

func (c *Clock) Start() { c.state = Running }
func (c *Clock) Stop()  { c.state = Stopped }

// Tick advances the time factor by Step when running and returns the
// current time factor. A tick received while stopped is a no-op; the
// frozen time factor is returned unchanged.
func (c *Clock) Tick() float64 {
	if c.state == Running {
		c.time += Step
	}
	return c.time
}

// Reset stops playback and rewinds the time factor to zero.
func (c *Clock) Reset() {
	c.state = Stopped
	c.time = 0
}
