// Package anim provides a frame-driven progress driver: a scalar in [0,1]
// advanced toward 1 or 0 over a duration, one Bubble Tea tick at a time.
package anim

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FPS is the frame rate at which drivers request ticks.
const FPS = 60

// FrameInterval is the delay between two frame ticks.
const FrameInterval = time.Second / FPS

// Status describes where the driver is and where it is heading.
type Status int

const (
	Dismissed Status = iota // settled at 0
	Forward                 // running toward 1
	Reverse                 // running toward 0
	Completed               // settled at 1
)

func (s Status) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// FrameMsg advances the driver identified by ID. Ticks from an earlier run
// (Gen mismatch) are ignored, which is what lets a reversal take over
// without a second tick chain.
type FrameMsg struct {
	ID   int64
	Gen  int
	Time time.Time
}

var lastID atomic.Int64

// Driver is a progress value animated over Duration. It is not safe for
// concurrent use; drive it from a Bubble Tea Update loop.
type Driver struct {
	id       int64
	gen      int
	duration time.Duration

	value    float64
	from     float64
	target   float64
	start    time.Time
	running  bool
	disposed bool

	now func() time.Time
}

// New creates a driver resting at 0. Non-positive durations settle
// instantly.
func New(duration time.Duration) *Driver {
	return &Driver{
		id:       lastID.Add(1),
		duration: duration,
		now:      time.Now,
	}
}

// SetClock replaces the time source used when a run starts.
func (d *Driver) SetClock(now func() time.Time) {
	if now != nil {
		d.now = now
	}
}

// ID identifies the driver's frame messages.
func (d *Driver) ID() int64 { return d.id }

// Value returns the current progress.
func (d *Driver) Value() float64 { return d.value }

// Duration returns the time a full 0→1 run takes.
func (d *Driver) Duration() time.Duration { return d.duration }

// Animating reports whether the driver is running.
func (d *Driver) Animating() bool { return d.running }

// Disposed reports whether Dispose was called.
func (d *Driver) Disposed() bool { return d.disposed }

// Status reports the driver's direction or resting end.
func (d *Driver) Status() Status {
	switch {
	case d.running && d.target == 1:
		return Forward
	case d.running:
		return Reverse
	case d.value >= 1:
		return Completed
	default:
		return Dismissed
	}
}

// SetDuration changes the duration of subsequent runs. A run in flight
// keeps going from its current value at the new rate, or settles at its
// target when duration is not positive.
func (d *Driver) SetDuration(duration time.Duration) {
	if d.disposed || duration == d.duration {
		return
	}
	d.duration = duration
	if !d.running {
		return
	}
	if duration <= 0 {
		d.settle()
		return
	}
	d.from = d.value
	d.start = d.now()
}

func (d *Driver) settle() {
	d.gen++
	d.value = d.target
	d.running = false
}

// Forward runs the driver from its current value toward 1.
func (d *Driver) Forward() tea.Cmd {
	return d.animateTo(1)
}

// Reverse runs the driver from its current value toward 0.
func (d *Driver) Reverse() tea.Cmd {
	return d.animateTo(0)
}

// Set jumps to v without animating and stops any run.
func (d *Driver) Set(v float64) {
	if d.disposed {
		return
	}
	d.gen++
	d.running = false
	d.value = clamp01(v)
}

func (d *Driver) animateTo(target float64) tea.Cmd {
	if d.disposed {
		return nil
	}
	d.gen++
	d.target = target
	if d.value == target || d.duration <= 0 {
		d.value = target
		d.running = false
		return nil
	}
	d.from = d.value
	d.start = d.now()
	d.running = true
	return d.tick()
}

// Update advances the driver on its own frame messages and returns the
// command for the next frame while still running.
func (d *Driver) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || !d.owns(frame) {
		return nil
	}
	d.advance(frame.Time)
	if !d.running {
		return nil
	}
	return d.tick()
}

// Owns reports whether msg is a live frame of this driver.
func (d *Driver) Owns(msg tea.Msg) bool {
	frame, ok := msg.(FrameMsg)
	return ok && d.owns(frame)
}

func (d *Driver) owns(f FrameMsg) bool {
	return !d.disposed && d.running && f.ID == d.id && f.Gen == d.gen
}

// advance moves the value to where it should be at time now. The remaining
// distance takes a proportional share of the full duration.
func (d *Driver) advance(now time.Time) {
	if d.duration <= 0 {
		d.value = d.target
		d.running = false
		return
	}
	elapsed := now.Sub(d.start)
	if elapsed < 0 {
		elapsed = 0
	}
	step := float64(elapsed) / float64(d.duration)
	if d.target > d.from {
		d.value = min(d.from+step, d.target)
	} else {
		d.value = max(d.from-step, d.target)
	}
	if d.value == d.target {
		d.running = false
	}
}

// Frame returns the frame message the current run is waiting for, stamped
// with at. Hosts that schedule their own frames use it instead of the
// driver's tick.
func (d *Driver) Frame(at time.Time) FrameMsg {
	return FrameMsg{ID: d.id, Gen: d.gen, Time: at}
}

func (d *Driver) tick() tea.Cmd {
	id, gen := d.id, d.gen
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen, Time: t}
	})
}

// Dispose stops the driver for good. Pending ticks are dropped and later
// Forward/Reverse calls do nothing. Safe to call more than once.
func (d *Driver) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.running = false
	d.gen++
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
