// Package remote runs the keypad-to-infrared control loop.
//
// Every iteration samples the ladder, decodes it and, if a button is down,
// transmits that button's command once. The loop then sleeps a fixed delay
// regardless of what happened. Nothing carries over between iterations: a
// held button retransmits on every pass.
package remote

import (
	"context"
	"time"

	"github.com/sparques/irladder/kaseikyo"
	"github.com/sparques/irladder/ladder"
)

// Transmitter sends one frame carrying payload.
type Transmitter interface {
	Transmit(payload uint32)
}

// Logger receives per-iteration debug output.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Config is used to configure the Dispatcher
type Config struct {
	// Levels samples the keypad.
	Levels ladder.LevelReader
	// Transmitter sends the command frames.
	Transmitter Transmitter
	// Delay follows every iteration. Zero means kaseikyo.FrameDelay.
	Delay time.Duration
	// Sleep blocks for a delay. Nil means time.Sleep.
	Sleep func(time.Duration)
	// Logger is optional.
	Logger Logger
}

// Dispatcher is the control loop. It is not safe for concurrent use.
type Dispatcher struct {
	levels ladder.LevelReader
	tx     Transmitter
	delay  time.Duration
	sleep  func(time.Duration)
	log    Logger
}

func NewDispatcher(cfg Config) *Dispatcher {
	d := &Dispatcher{
		levels: cfg.Levels,
		tx:     cfg.Transmitter,
		delay:  cfg.Delay,
		sleep:  cfg.Sleep,
		log:    cfg.Logger,
	}
	if d.delay <= 0 {
		d.delay = kaseikyo.FrameDelay
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	if d.log == nil {
		d.log = nopLogger{}
	}
	return d
}

// Step runs one iteration and returns the state it decoded.
func (d *Dispatcher) Step() ladder.State {
	level := d.levels.ReadLevel()
	state := ladder.Decode(level)
	if cmd, ok := Lookup(state); ok {
		d.log.Debugf("level %d: %s, sending %s (0x%06X)", level, state, cmd.Name, cmd.Payload)
		d.tx.Transmit(cmd.Payload)
	}
	d.sleep(d.delay)
	return state
}

// Run calls Step until ctx is done. Cancellation is only noticed between
// iterations; a frame in flight always completes.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		d.Step()
	}
}
