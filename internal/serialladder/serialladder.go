// Package serialladder reads keypad levels streamed over a serial port by a
// microcontroller wired to the real resistor ladder. The device prints one
// decimal ADC reading (0-1023) per line.
package serialladder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/jacobsa/go-serial/serial"
	"github.com/sparques/irladder/internal/logger"
	"github.com/sparques/irladder/ladder"
)

// Reader keeps the most recent level read from the stream.
type Reader struct {
	log   logger.Logger
	rwc   io.ReadCloser
	level uint32
	done  chan struct{}
	once  sync.Once
	err   error
}

// Open opens port at baud, 8N1.
func Open(log logger.Logger, port string, baud uint) (*Reader, error) {
	options := serial.OpenOptions{
		PortName:        port,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
	}
	rwc, err := serial.Open(options)
	if err != nil {
		return nil, fmt.Errorf("serial open %s: %w", port, err)
	}
	return NewReader(log, rwc), nil
}

// NewReader wraps an already open stream.
func NewReader(log logger.Logger, rwc io.ReadCloser) *Reader {
	return &Reader{
		log:   log,
		rwc:   rwc,
		level: ladder.MaxLevel,
		done:  make(chan struct{}),
	}
}

// Start consumes the stream in the background until ctx is done, Close is
// called or the stream ends.
func (r *Reader) Start(ctx context.Context) {
	go func() {
		select {
		case <-ctx.Done():
			r.Close()
		case <-r.done:
		}
	}()
	go r.readLoop()
}

func (r *Reader) readLoop() {
	defer close(r.done)
	l := r.log.Module("serial")
	sc := bufio.NewScanner(r.rwc)
	for sc.Scan() {
		level, err := ladder.ParseLevel(sc.Text())
		if err != nil {
			l.Warnf("skipping line %q: %v", sc.Text(), err)
			continue
		}
		atomic.StoreUint32(&r.level, uint32(level))
	}
	if err := sc.Err(); err != nil {
		l.Debugf("stream closed: %v", err)
	}
}

// Done is closed once the stream has ended.
func (r *Reader) Done() <-chan struct{} { return r.done }

// ReadLevel implements ladder.LevelReader. Until the first line arrives the
// keypad reads as idle.
func (r *Reader) ReadLevel() uint16 {
	return uint16(atomic.LoadUint32(&r.level))
}

// Close releases the port and stops the read loop. Later calls return the
// first call's result.
func (r *Reader) Close() error {
	r.once.Do(func() {
		r.err = r.rwc.Close()
	})
	return r.err
}
