package remote_test

import (
	"testing"

	"github.com/sparques/irladder"
	"github.com/sparques/irladder/driver/sim"
	"github.com/sparques/irladder/kaseikyo"
	"github.com/sparques/irladder/remote"
)

// Button 7 end to end: one power frame on the simulated pin per pass.
func TestDispatchOnSimulatedCarrier(t *testing.T) {
	c := sim.New()
	sl := &sim.Sleeper{}
	d := remote.NewDispatcher(remote.Config{
		Levels:      sim.NewScript(800, 1023),
		Transmitter: kaseikyo.NewEncoder(irladder.NewTxDevice(c)),
		Sleep:       sl.Sleep,
	})

	d.Step()
	var f kaseikyo.Frame
	if err := f.UnmarshalPairs(c.Pairs()); err != nil {
		t.Fatalf("trace: %v", err)
	}
	if f.Payload != 0xBD3D00 || f.Addr != kaseikyo.DeviceAddress {
		t.Errorf("frame = %06X/%06X, want BD3D00/802002", f.Payload, f.Addr)
	}

	before := c.Ticks()
	d.Step()
	if c.Ticks() != before {
		t.Errorf("idle pass advanced carrier by %d ticks", c.Ticks()-before)
	}
	if got := len(sl.Delays()); got != 2 {
		t.Errorf("sleeps = %d, want 2", got)
	}
}
