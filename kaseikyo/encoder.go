package kaseikyo

import "github.com/sparques/irladder"

// Encoder transmits command payloads to one device address.
type Encoder struct {
	tx   *irladder.TxDevice
	addr uint32
}

func NewEncoder(tx *irladder.TxDevice) *Encoder {
	return &Encoder{tx: tx, addr: DeviceAddress}
}

// Transmit sends a single frame carrying payload and returns after its last
// bit-mark. Spacing between frames is left to the caller.
func (e *Encoder) Transmit(payload uint32) {
	e.tx.SendFrame(Frame{Addr: e.addr, Payload: payload})
}
