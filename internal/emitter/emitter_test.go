package emitter

import (
	"errors"
	"testing"
	"time"

	"github.com/sparques/irladder/driver/sim"
	"github.com/sparques/irladder/internal/config"
	"github.com/sparques/irladder/internal/logger"
	"github.com/sparques/irladder/kaseikyo"
)

func TestRecorderReportsTrace(t *testing.T) {
	log, err := logger.NewLogger(config.LogConf{Level: "error"})
	if err != nil {
		t.Fatal(err)
	}

	var got []Report
	sink := SinkFunc(func(r Report) error {
		got = append(got, r)
		return nil
	})
	failing := SinkFunc(func(Report) error { return errors.New("broker down") })

	c := sim.New()
	rec := NewRecorder(log, c, failing, sink)
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rec.now = func() time.Time { return fixed }

	rec.Transmit(0xC94900)
	rec.Transmit(0xBD3D00)

	if len(got) != 2 {
		t.Fatalf("reports = %d, want 2", len(got))
	}
	r := got[0]
	if r.Command != "ok" || r.Payload != "0xC94900" || r.Address != "0x802002" {
		t.Errorf("report = %+v", r)
	}
	if r.Bits != "0xC94900802002" {
		t.Errorf("Bits = %s, want 0xC94900802002", r.Bits)
	}
	if want := uint64(kaseikyo.NewFrame(0xC94900).Cycles()); r.Cycles != want {
		t.Errorf("Cycles = %d, want %d", r.Cycles, want)
	}
	if len(r.Pairs) != 50 || r.Pairs[0] != [2]uint8{133, 67} {
		t.Errorf("pairs = %d, first %v", len(r.Pairs), r.Pairs[0])
	}
	// 133 cycles at 38kHz
	if r.Micros[0][0] != 3500 {
		t.Errorf("preamble mark = %dus, want 3500", r.Micros[0][0])
	}
	if !r.Time.Equal(fixed) {
		t.Errorf("Time = %v", r.Time)
	}

	// carrier trace is reset per frame
	if got[1].Command != "power" || got[1].Cycles != uint64(kaseikyo.NewFrame(0xBD3D00).Cycles()) {
		t.Errorf("second report = %+v", got[1])
	}
}
