package irladder

// CycleWaiter blocks for an exact number of carrier cycles.
type CycleWaiter interface {
	Wait(n Cycles)
}

// TickFlag is the once-per-cycle compare-match event of a free-running timer.
type TickFlag interface {
	// Fired reports whether a tick has occurred since the last Clear.
	Fired() bool
	// Clear consumes the pending tick.
	Clear()
}

// FlagWaiter counts cycles by polling a TickFlag.
//
// Each observed tick is cleared before polling for the next one so it is
// never counted twice. The timer keeps running between calls; Wait does not
// reset it, so consecutive waits stay aligned to the carrier period.
type FlagWaiter struct {
	Flag TickFlag
}

// Wait returns after n ticks have been observed. Wait(0) returns immediately.
// There is no timeout: an unconfigured timer hangs the caller.
func (w FlagWaiter) Wait(n Cycles) {
	for ; n > 0; n-- {
		for !w.Flag.Fired() {
		}
		w.Flag.Clear()
	}
}
