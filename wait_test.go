package irladder

import "testing"

// countingFlag fires on every third poll and counts clears.
type countingFlag struct {
	polls   int
	ticks   int
	pending bool
	clears  int
}

func (f *countingFlag) Fired() bool {
	if f.pending {
		return true
	}
	f.polls++
	if f.polls%3 == 0 {
		f.ticks++
		f.pending = true
	}
	return f.pending
}

func (f *countingFlag) Clear() {
	f.pending = false
	f.clears++
}

func TestFlagWaiter(t *testing.T) {
	tests := []struct {
		name string
		n    Cycles
	}{
		{"zero", 0},
		{"one", 1},
		{"bit mark", 17},
		{"max", 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &countingFlag{}
			FlagWaiter{Flag: f}.Wait(tt.n)
			if f.ticks != int(tt.n) {
				t.Errorf("ticks elapsed = %d, want %d", f.ticks, tt.n)
			}
			if f.clears != int(tt.n) {
				t.Errorf("clears = %d, want %d", f.clears, tt.n)
			}
			if f.pending {
				t.Error("flag left pending")
			}
		})
	}
}

func TestFlagWaiterConsumesStaleTick(t *testing.T) {
	// a tick that fired before Wait started counts as the first cycle
	f := &countingFlag{pending: true}
	FlagWaiter{Flag: f}.Wait(2)
	if f.ticks != 1 {
		t.Errorf("new ticks = %d, want 1", f.ticks)
	}
	if f.clears != 2 {
		t.Errorf("clears = %d, want 2", f.clears)
	}
}
