package ladder

import "testing"

func TestDecodeTotal(t *testing.T) {
	for level := uint16(0); level <= MaxLevel; level++ {
		s := Decode(level)
		if s > Button8 {
			t.Fatalf("Decode(%d) = %v, outside None..Button8", level, s)
		}
		if Decode(level) != s {
			t.Fatalf("Decode(%d) not stable", level)
		}
	}
}

func TestDecodeBoundaries(t *testing.T) {
	bounds := []uint16{65, 192, 321, 453, 586, 715, 844, 973}
	for i, b := range bounds {
		below, at := Decode(b-1), Decode(b)
		if below != Button1+State(i) {
			t.Errorf("Decode(%d) = %v, want %v", b-1, below, Button1+State(i))
		}
		if i < len(bounds)-1 && at != below+1 {
			t.Errorf("Decode(%d) = %v, want %v", b, at, below+1)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		level uint16
		want  State
	}{
		{0, Button1},
		{64, Button1},
		{127, Button2},
		{400, Button4},
		{500, Button5},
		{600, Button6},
		{800, Button7},
		{972, Button8},
		{973, None},
		{999, None},
		{1000, None},
		{MaxLevel, None},
		{0xFFFF, None},
	}

	for _, tt := range tests {
		if got := Decode(tt.level); got != tt.want {
			t.Errorf("Decode(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

// Each nominal ladder level and a reading halfway into its tolerance band
// decode to that level's button.
func TestDecodeNominalLevels(t *testing.T) {
	for i, nominal := range Thresholds {
		want := Button1 + State(i)
		for _, level := range []uint16{nominal, nominal + Tolerance/2} {
			if got := Decode(level); got != want {
				t.Errorf("Decode(%d) = %v, want %v", level, got, want)
			}
		}
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		None:     "none",
		Button1:  "button1",
		Button8:  "button8",
		State(9): "State(9)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{"0", 0, false},
		{" 812\r", 812, false},
		{"1023", 1023, false},
		{"1024", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
