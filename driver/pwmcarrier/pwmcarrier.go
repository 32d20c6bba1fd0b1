//go:build tinygo

// Package pwmcarrier gates an IR carrier generated by a PWM slice and times it
// against the monotonic clock.
package pwmcarrier

import (
	. "machine"
	"time"

	"github.com/sparques/irladder"
	"github.com/sparques/pwm"
)

// Carrier implements irladder.Carrier on any PWM-capable pin.
type Carrier struct {
	irladder.FlagWaiter

	pgroup pwm.Group
	ch     uint8
	duty   uint32
	freq   uint64

	start time.Time
	tick  uint64
}

// New configures pin to output freq Hz at 50% duty, initially gated off.
func New(pin Pin, freq uint32) *Carrier {
	pin.Configure(PinConfig{Mode: PinPWM})
	pgroup := pwm.Get(pin)
	pgroup.Configure(PWMConfig{Period: uint64(1e9) / uint64(freq)})
	ch, _ := pgroup.Channel(pin)
	pgroup.Set(ch, 0)
	c := &Carrier{
		pgroup: pgroup,
		ch:     ch,
		duty:   pgroup.Top() / 2,
		freq:   uint64(freq),
		start:  time.Now(),
		tick:   1,
	}
	c.Flag = c
	return c
}

func (c *Carrier) Enable()  { c.pgroup.Set(c.ch, c.duty) }
func (c *Carrier) Disable() { c.pgroup.Set(c.ch, 0) }

// boundary is the offset of tick k from start. Computing it from k rather
// than adding a rounded period keeps the error below 1ns for any k.
func (c *Carrier) boundary(k uint64) time.Duration {
	return time.Duration(k * uint64(time.Second) / c.freq)
}

// Fired implements irladder.TickFlag.
func (c *Carrier) Fired() bool {
	return time.Since(c.start) >= c.boundary(c.tick)
}

// Clear implements irladder.TickFlag. Like a hardware flag, ticks that
// passed unobserved collapse into the one just consumed; the timeline is
// re-anchored on the last of them so the tick index stays small.
//
// Wait counts stay exact only while Fired is polled more often than once
// per carrier period. A slower poll loop loses the collapsed ticks and
// stretches every pulse it times.
func (c *Carrier) Clear() {
	now := time.Since(c.start)
	c.tick++
	if now >= c.boundary(c.tick) {
		k := uint64(now) * c.freq / uint64(time.Second)
		c.start = c.start.Add(c.boundary(k))
		c.tick = 1
	}
}
