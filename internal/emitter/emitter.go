// Package emitter stands in for the IR LED on the host: it captures each
// simulated transmission off the carrier trace and reports it.
package emitter

import (
	"fmt"
	"time"

	"github.com/sparques/irladder"
	"github.com/sparques/irladder/driver/sim"
	"github.com/sparques/irladder/internal/logger"
	"github.com/sparques/irladder/kaseikyo"
	"github.com/sparques/irladder/remote"
)

// Report describes one frame as it appeared on the simulated pin.
type Report struct {
	Time    time.Time  `json:"time"`
	Command string     `json:"command"`
	Address string     `json:"address"`
	Payload string     `json:"payload"`
	Bits    string     `json:"bits"`
	Cycles  uint64     `json:"cycles"`
	Pairs   [][2]uint8 `json:"pairs"`
	Micros  [][2]int64 `json:"micros"`
}

// Sink receives reports.
type Sink interface {
	Emit(Report) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Report) error

func (f SinkFunc) Emit(r Report) error { return f(r) }

// Recorder transmits through a kaseikyo.Encoder driving a simulated carrier
// and reports what the carrier actually produced.
type Recorder struct {
	enc     *kaseikyo.Encoder
	carrier *sim.Carrier
	sinks   []Sink
	log     logger.Logger
	now     func() time.Time
}

func NewRecorder(log logger.Logger, carrier *sim.Carrier, sinks ...Sink) *Recorder {
	return &Recorder{
		enc:     kaseikyo.NewEncoder(irladder.NewTxDevice(carrier)),
		carrier: carrier,
		sinks:   sinks,
		log:     log,
		now:     time.Now,
	}
}

// Transmit implements remote.Transmitter.
func (r *Recorder) Transmit(payload uint32) {
	r.carrier.Reset()
	r.enc.Transmit(payload)

	rep, err := r.capture(payload)
	if err != nil {
		r.log.Module("emitter").Errorf("bad trace for 0x%06X: %v", payload, err)
		return
	}
	for _, s := range r.sinks {
		if err := s.Emit(rep); err != nil {
			r.log.Module("emitter").Errorf("emit %s: %v", rep.Command, err)
		}
	}
}

func (r *Recorder) capture(payload uint32) (Report, error) {
	pairs := r.carrier.Pairs()
	var f kaseikyo.Frame
	if err := f.UnmarshalPairs(pairs); err != nil {
		return Report{}, err
	}
	name := "unknown"
	if cmd, ok := remote.ByPayload(f.Payload); ok {
		name = cmd.Name
	}
	if f.Payload != payload&0xFFFFFF {
		return Report{}, fmt.Errorf("payload on air 0x%06X", f.Payload)
	}

	rep := Report{
		Time:    r.now(),
		Command: name,
		Address: fmt.Sprintf("0x%06X", f.Addr),
		Payload: fmt.Sprintf("0x%06X", f.Payload),
		Bits:    fmt.Sprintf("0x%012X", f.Bits()),
		Cycles:  r.carrier.Ticks(),
		Pairs:   make([][2]uint8, len(pairs)),
		Micros:  make([][2]int64, len(pairs)),
	}
	for i, p := range pairs {
		rep.Pairs[i] = [2]uint8{uint8(p.Mark()), uint8(p.Gap())}
		tp := p.TimePair(irladder.Freq38Khz)
		rep.Micros[i] = [2]int64{tp[0].Microseconds(), tp[1].Microseconds()}
	}
	return rep, nil
}

// LogSink writes a one-line summary of every report.
func LogSink(log logger.Logger) Sink {
	l := log.Module("emitter")
	return SinkFunc(func(r Report) error {
		l.Infof("%s: payload %s frame %s, %d cycles", r.Command, r.Payload, r.Bits, r.Cycles)
		return nil
	})
}
