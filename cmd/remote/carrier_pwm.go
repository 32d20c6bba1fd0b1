//go:build tinygo && rp2040

package main

import (
	"machine"

	"github.com/sparques/irladder"
	"github.com/sparques/irladder/driver/pwmcarrier"
)

const (
	ladderPin = machine.ADC0
	irPin     = machine.GP15
)

func newCarrier() irladder.Carrier {
	return pwmcarrier.New(irPin, irladder.Freq38Khz)
}
