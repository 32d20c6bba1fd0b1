package ladder

import (
	"errors"
	"strconv"
	"strings"
)

var ErrLevelRange = errors.New("level out of range (valid range: 0-1023)")

// ParseLevel reads a decimal level such as one line of a serial ADC stream.
func ParseLevel(s string) (uint16, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, err
	}
	if n > MaxLevel {
		return 0, ErrLevelRange
	}
	return uint16(n), nil
}
