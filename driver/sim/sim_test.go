//go:build !tinygo

package sim

import (
	"reflect"
	"testing"
	"time"

	"github.com/sparques/irladder"
)

func TestCarrierWaitCountsExactTicks(t *testing.T) {
	for _, ppt := range []int{1, 4, 13} {
		c := New()
		c.PollsPerTick = ppt
		total := uint64(0)
		for _, n := range []irladder.Cycles{0, 1, 17, 133, 255} {
			c.Wait(n)
			total += uint64(n)
			if c.Ticks() != total {
				t.Errorf("polls/tick %d: ticks = %d, want %d", ppt, c.Ticks(), total)
			}
		}
	}
}

func TestCarrierPairs(t *testing.T) {
	c := New()
	tx := irladder.NewTxDevice(c)
	tx.SendPairs(irladder.CyclePair{5, 3}, irladder.CyclePair{2, 7}, irladder.CyclePair{4, 0})

	want := []irladder.CyclePair{{5, 3}, {2, 7}, {4, 0}}
	if got := c.Pairs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pairs() = %v, want %v", got, want)
	}
	wantEdges := []Edge{{0, true}, {5, false}, {8, true}, {10, false}, {17, true}, {21, false}}
	if got := c.Edges(); !reflect.DeepEqual(got, wantEdges) {
		t.Errorf("Edges() = %v, want %v", got, wantEdges)
	}

	c.Reset()
	if c.Ticks() != 0 || len(c.Edges()) != 0 || len(c.Pairs()) != 0 {
		t.Errorf("Reset left ticks=%d edges=%d", c.Ticks(), len(c.Edges()))
	}
}

func TestCarrierGateIdempotent(t *testing.T) {
	c := New()
	c.Enable()
	c.Enable()
	c.Disable()
	c.Disable()
	if got := len(c.Edges()); got != 2 {
		t.Errorf("edges = %d, want 2", got)
	}
}

func TestScript(t *testing.T) {
	s := NewScript(10, 20)
	got := []uint16{s.ReadLevel(), s.ReadLevel(), s.ReadLevel()}
	if want := []uint16{10, 20, 20}; !reflect.DeepEqual(got, want) {
		t.Errorf("levels = %v, want %v", got, want)
	}

	if l := NewScript().ReadLevel(); l != 1023 {
		t.Errorf("empty script level = %d, want 1023", l)
	}
}

func TestSleeper(t *testing.T) {
	var s Sleeper
	s.Sleep(time.Millisecond)
	s.Sleep(2 * time.Millisecond)
	if want := []time.Duration{time.Millisecond, 2 * time.Millisecond}; !reflect.DeepEqual(s.Delays(), want) {
		t.Errorf("Delays() = %v, want %v", s.Delays(), want)
	}
}
