// Package irladder drives a gated infrared carrier with cycle-exact marks and gaps.
//
// All timing is counted in carrier cycles. A Carrier couples the oscillator
// gate with a CycleWaiter that blocks on the hardware tick flag; protocol
// packages turn their frames into CyclePairs and TxDevice plays them out.
package irladder

import "time"

const (
	// Freq38Khz is the most commonly used frequency for IR remotes
	Freq38Khz = 38000
)

// Cycles is a pulse length counted in carrier periods.
type Cycles uint8

// Duration converts c to wall-clock time at freq Hz.
func (c Cycles) Duration(freq uint32) time.Duration {
	return time.Duration(uint64(c) * uint64(time.Second) / uint64(freq))
}

// TimePair encodes two durations used to encode an on-off or off-on amount of time.
type TimePair [2]time.Duration

// CyclePair is a mark followed by a gap, both in carrier cycles.
// A zero gap ends the train on the mark.
type CyclePair [2]Cycles

// Mark returns the carrier-on part of the pair.
func (p CyclePair) Mark() Cycles { return p[0] }

// Gap returns the carrier-off part of the pair.
func (p CyclePair) Gap() Cycles { return p[1] }

// TimePair converts p to wall-clock durations at freq Hz.
func (p CyclePair) TimePair(freq uint32) TimePair {
	return TimePair{p[0].Duration(freq), p[1].Duration(freq)}
}

// FrameMarshaller defines an interface for marshalling data to slice of CyclePairs
type FrameMarshaller interface {
	MarshalFrame() []CyclePair
}

// CarrierGate switches the modulated output on and off. Both calls are
// idempotent and take effect by the next cycle boundary.
type CarrierGate interface {
	Enable()
	Disable()
}

// Carrier is the oscillator owned by a TxDevice: a gate plus the cycle
// counter that times it.
type Carrier interface {
	CycleWaiter
	CarrierGate
}
