// kaseikyo implements the 48-bit pulse-distance frame used by the remote.
//
// A frame is a long preamble mark and gap, a header bit-mark, then 48 bit
// cells. Each cell is a gap whose length carries the bit (OneGap or ZeroGap)
// followed by a BitMark, so every cell ends on an identical mark. Bits are
// sent LSB first: the 24-bit device address goes out before the 24-bit
// command payload. There is no trailing gap, checksum or parity.
package kaseikyo

import (
	"time"

	"github.com/sparques/irladder"
)

// Pulse lengths, in carrier cycles.
const (
	PreambleMark irladder.Cycles = 133
	PreambleGap  irladder.Cycles = 67
	BitMark      irladder.Cycles = 17
	OneGap       irladder.Cycles = 51
	ZeroGap      irladder.Cycles = 16

	// HeaderMark closes the header; the gap after it belongs to bit 0.
	HeaderMark = BitMark
)

const (
	// DeviceAddress identifies the appliance; it fills the low 24 frame bits.
	DeviceAddress = 0x802002

	// FrameDelay is the minimum spacing between two transmissions.
	FrameDelay = 75 * time.Millisecond

	FieldBits = 24
	FrameBits = 2 * FieldBits

	fieldMask = 1<<FieldBits - 1
)

var PreamblePair = irladder.CyclePair{PreambleMark, PreambleGap}

// Frame is the 48-bit unit put on air.
type Frame struct {
	Addr    uint32
	Payload uint32
}

// NewFrame returns a frame carrying payload to DeviceAddress.
func NewFrame(payload uint32) Frame {
	return Frame{Addr: DeviceAddress, Payload: payload}
}

// Bits lays the frame out in transmit order: bit 0 goes first.
// Addr occupies bits 0-23 and Payload bits 24-47. Only the low 24 bits of
// each field survive; wider values are truncated.
func (f Frame) Bits() uint64 {
	return uint64(f.Payload&fieldMask)<<FieldBits | uint64(f.Addr&fieldMask)
}

// MarshalFrame implements irladder.FrameMarshaller.
//
// The first pair is the preamble. Pair i+1 is the bit-mark that precedes
// bit i together with that bit's gap; pair 1 therefore starts with the
// header mark. The last pair is the closing bit-mark with no gap.
func (f Frame) MarshalFrame() []irladder.CyclePair {
	out := make([]irladder.CyclePair, FrameBits+2)
	out[0] = PreamblePair

	buf := f.Bits()
	for bit := 0; bit < FrameBits; bit++ {
		gap := ZeroGap
		if (buf>>bit)&1 == 1 {
			gap = OneGap
		}
		out[bit+1] = irladder.CyclePair{BitMark, gap}
	}

	out[FrameBits+1] = irladder.CyclePair{BitMark, 0}

	return out
}

// Cycles returns the on-air length of the frame in carrier cycles.
func (f Frame) Cycles() uint32 {
	ones := uint32(0)
	for buf := f.Bits(); buf != 0; buf &= buf - 1 {
		ones++
	}
	zeros := FrameBits - ones
	return uint32(PreambleMark) + uint32(PreambleGap) + uint32(HeaderMark) +
		FrameBits*uint32(BitMark) + ones*uint32(OneGap) + zeros*uint32(ZeroGap)
}

// UnmarshalPairs recovers a frame from a pair trace produced by MarshalFrame.
// Any gap longer than the midpoint of ZeroGap and OneGap reads as a one.
func (f *Frame) UnmarshalPairs(pairs []irladder.CyclePair) error {
	if f == nil {
		return ErrFrameAlloc
	}
	if len(pairs) != FrameBits+2 || pairs[0] != PreamblePair {
		return ErrFrameShape
	}

	var buf uint64
	for bit := 0; bit < FrameBits; bit++ {
		p := pairs[bit+1]
		if p.Mark() != BitMark {
			return ErrFrameShape
		}
		if p.Gap() > (ZeroGap+OneGap)/2 {
			buf |= 1 << bit
		}
	}
	if pairs[FrameBits+1] != (irladder.CyclePair{BitMark, 0}) {
		return ErrFrameShape
	}

	f.Addr = uint32(buf & fieldMask)
	f.Payload = uint32(buf >> FieldBits & fieldMask)
	return nil
}
