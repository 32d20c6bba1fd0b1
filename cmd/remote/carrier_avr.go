//go:build tinygo && attiny85

package main

import (
	"machine"

	"github.com/sparques/irladder"
	"github.com/sparques/irladder/driver/avrtimer"
)

// ADC1 on PB2; the carrier leaves on PB1 (OC0B).
const ladderPin = machine.PB2

func newCarrier() irladder.Carrier {
	return avrtimer.New(irladder.Freq38Khz)
}
