//go:build !tinygo

// Package sim provides host-side stand-ins for the carrier timer, the keypad
// and the loop delay so the whole transmit path can run without hardware.
package sim

import "github.com/sparques/irladder"

// DefaultPollsPerTick is how many Fired polls make up one simulated cycle.
const DefaultPollsPerTick = 4

// Edge is a gate transition at a tick count.
type Edge struct {
	Tick uint64
	On   bool
}

// Carrier simulates a free-running compare-match timer and the oscillator
// gate. Time only advances while something polls Fired, the way a busy-wait
// loop observes a real timer.
type Carrier struct {
	irladder.FlagWaiter

	PollsPerTick int

	ticks   uint64
	phase   int
	pending bool
	on      bool
	edges   []Edge
}

func New() *Carrier {
	c := &Carrier{PollsPerTick: DefaultPollsPerTick}
	c.Flag = c
	return c
}

// Fired implements irladder.TickFlag.
func (c *Carrier) Fired() bool {
	if c.pending {
		return true
	}
	c.phase++
	if c.phase >= c.pollsPerTick() {
		c.phase = 0
		c.ticks++
		c.pending = true
	}
	return c.pending
}

// Clear implements irladder.TickFlag.
func (c *Carrier) Clear() { c.pending = false }

func (c *Carrier) pollsPerTick() int {
	if c.PollsPerTick < 1 {
		return 1
	}
	return c.PollsPerTick
}

func (c *Carrier) Enable()  { c.set(true) }
func (c *Carrier) Disable() { c.set(false) }

func (c *Carrier) set(on bool) {
	if c.on == on {
		return
	}
	c.on = on
	c.edges = append(c.edges, Edge{Tick: c.ticks, On: on})
}

// On reports whether the carrier is currently gated on.
func (c *Carrier) On() bool { return c.on }

// Ticks returns the number of cycles elapsed since New or Reset.
func (c *Carrier) Ticks() uint64 { return c.ticks }

// Edges returns a copy of the recorded gate transitions.
func (c *Carrier) Edges() []Edge {
	out := make([]Edge, len(c.edges))
	copy(out, c.edges)
	return out
}

// Pairs rebuilds the mark/gap trace from the recorded edges. The gap of the
// last pair runs up to the current tick; it is zero if nothing waited after
// the final mark. Gaps are truncated to irladder.Cycles.
func (c *Carrier) Pairs() []irladder.CyclePair {
	var out []irladder.CyclePair
	for i := 0; i+1 < len(c.edges); i += 2 {
		on, off := c.edges[i], c.edges[i+1]
		if !on.On || off.On {
			continue
		}
		end := c.ticks
		if i+2 < len(c.edges) {
			end = c.edges[i+2].Tick
		}
		out = append(out, irladder.CyclePair{
			irladder.Cycles(off.Tick - on.Tick),
			irladder.Cycles(end - off.Tick),
		})
	}
	return out
}

// Reset clears the trace and the tick counter. The gate state is kept.
func (c *Carrier) Reset() {
	c.ticks = 0
	c.phase = 0
	c.pending = false
	c.edges = c.edges[:0]
}
