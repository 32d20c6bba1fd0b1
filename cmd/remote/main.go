//go:build tinygo && (attiny85 || rp2040)

// remote is the firmware: it samples the keypad ladder and transmits the
// pressed button's command until power is removed.
package main

import (
	"context"
	"machine"

	"github.com/sparques/irladder"
	"github.com/sparques/irladder/kaseikyo"
	"github.com/sparques/irladder/remote"
)

// adcLevels reads the ladder and scales TinyGo's 16-bit samples to 10 bits.
type adcLevels struct {
	adc machine.ADC
}

func (a adcLevels) ReadLevel() uint16 {
	return a.adc.Get() >> 6
}

func main() {
	machine.InitADC()
	adc := machine.ADC{Pin: ladderPin}
	adc.Configure(machine.ADCConfig{})

	tx := irladder.NewTxDevice(newCarrier())
	d := remote.NewDispatcher(remote.Config{
		Levels:      adcLevels{adc: adc},
		Transmitter: kaseikyo.NewEncoder(tx),
	})
	d.Run(context.Background())
}
