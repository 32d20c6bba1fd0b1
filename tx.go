package irladder

// TxDevice plays CyclePairs out on a Carrier.
//
// It is not safe for concurrent use. The carrier's tick flag is a single
// shared resource, so only one goroutine may transmit at a time.
type TxDevice struct {
	carrier Carrier
}

func NewTxDevice(c Carrier) *TxDevice {
	c.Disable()
	return &TxDevice{carrier: c}
}

// Mark emits d cycles of carrier.
func (tx *TxDevice) Mark(d Cycles) {
	tx.carrier.Enable()
	tx.carrier.Wait(d)
	tx.carrier.Disable()
}

// Gap holds the carrier off for d cycles. The carrier must already be off.
func (tx *TxDevice) Gap(d Cycles) {
	tx.carrier.Wait(d)
}

func (tx *TxDevice) SendPair(pair CyclePair) {
	tx.Mark(pair.Mark())
	tx.Gap(pair.Gap())
}

func (tx *TxDevice) SendPairs(pairs ...CyclePair) {
	for _, p := range pairs {
		tx.SendPair(p)
	}
}

func (tx *TxDevice) SendFrame(fm FrameMarshaller) {
	tx.SendPairs(fm.MarshalFrame()...)
}

func (tx *TxDevice) SendFrames(fms ...FrameMarshaller) {
	for _, fm := range fms {
		tx.SendFrame(fm)
	}
}
