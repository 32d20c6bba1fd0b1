// Package ladder decodes a resistor-ladder keypad read through one analog pin.
//
// Each of the eight buttons pulls the pin to a distinct level. Levels are
// 10-bit (0-1023); an open ladder reads near the top of the range.
package ladder

import "strconv"

// State is the decoded keypad input.
type State uint8

const (
	None State = iota
	Button1
	Button2
	Button3
	Button4
	Button5
	Button6
	Button7
	Button8
)

func (s State) String() string {
	if s == None {
		return "none"
	}
	if s > Button8 {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return "button" + strconv.Itoa(int(s))
}

const (
	MaxLevel = 1023
	// IdleAbove is the highest level that can still be a press.
	IdleAbove = 999
	// Tolerance widens every bucket upward to absorb ladder noise.
	Tolerance = 65
)

// Thresholds are the nominal lower edges of buttons 1-8. A level belongs to
// the first button whose threshold plus Tolerance it is below.
var Thresholds = [8]uint16{0, 127, 256, 388, 521, 650, 779, 908}

// Decode classifies level. Every input maps to exactly one State; anything
// above MaxLevel or otherwise unmatched reads as None.
func Decode(level uint16) State {
	// idle is by far the common case
	if level > IdleAbove {
		return None
	}
	for i, t := range Thresholds {
		if level < t+Tolerance {
			return Button1 + State(i)
		}
	}
	return None
}

// LevelReader samples the ladder pin.
type LevelReader interface {
	ReadLevel() uint16
}
