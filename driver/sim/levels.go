//go:build !tinygo

package sim

import (
	"sync"
	"time"

	"github.com/sparques/irladder/ladder"
)

// Script is a ladder.LevelReader that replays a fixed sequence of levels and
// then keeps returning the last one. An empty script reads as idle.
type Script struct {
	levels []uint16
	reads  int
}

func NewScript(levels ...uint16) *Script {
	return &Script{levels: levels}
}

func (s *Script) ReadLevel() uint16 {
	if len(s.levels) == 0 {
		return ladder.MaxLevel
	}
	i := s.reads
	if i >= len(s.levels) {
		i = len(s.levels) - 1
	}
	s.reads++
	return s.levels[i]
}

// Sleeper records requested delays instead of blocking.
type Sleeper struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *Sleeper) Sleep(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, d)
}

func (s *Sleeper) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.delays))
	copy(out, s.delays)
	return out
}
