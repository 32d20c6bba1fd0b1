//go:build tinygo && attiny85

// Package avrtimer runs the carrier on Timer0 of an ATtiny85.
//
// Timer0 free-runs in fast PWM mode with OCR0A as TOP, so the OCF0A flag
// fires once per carrier period. The carrier itself comes out of OC0B (PB1)
// and is gated by connecting or disconnecting the compare output.
package avrtimer

import (
	"device/avr"
	"machine"

	"github.com/sparques/irladder"
)

// TCCR0A/TCCR0B/TIFR bit positions.
const (
	wgm00  = 1 << 0
	wgm01  = 1 << 1
	com0b1 = 1 << 5
	com0b0 = 1 << 4
	wgm02  = 1 << 3
	cs00   = 1 << 0
	ocf0a  = 1 << 4
)

// Carrier implements irladder.Carrier on Timer0.
type Carrier struct {
	irladder.FlagWaiter
}

// New starts Timer0 at freq Hz with no prescaler. The output pin is driven
// low while the carrier is gated off.
func New(freq uint32) *Carrier {
	machine.PB1.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.PB1.Low()

	top := machine.CPUFrequency()/freq - 1
	avr.OCR0A.Set(uint8(top))
	avr.OCR0B.Set(uint8(top / 2))
	avr.TCCR0A.Set(wgm00 | wgm01)
	avr.TCCR0B.Set(wgm02 | cs00)

	c := &Carrier{}
	c.Flag = c
	c.Clear()
	return c
}

func (c *Carrier) Enable() { avr.TCCR0A.SetBits(com0b1) }

// Disable disconnects OC0B; the pin falls back to its PORTB level, low.
func (c *Carrier) Disable() { avr.TCCR0A.ClearBits(com0b1 | com0b0) }

// Fired implements irladder.TickFlag.
func (c *Carrier) Fired() bool { return avr.TIFR.HasBits(ocf0a) }

// Clear implements irladder.TickFlag. The flag is cleared by writing a one.
func (c *Carrier) Clear() { avr.TIFR.Set(ocf0a) }
