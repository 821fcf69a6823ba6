package chime

import (
	"errors"
	"fmt"
	"math"
)

// SampleRate is the fixed output rate in frames per second.
const SampleRate = 44100

const (
	// strikes are placed no earlier than this into the clip
	leadIn = 2.5
	// and no later than this before its end
	leadOut = 4.0
)

var (
	ErrInvalidDuration = errors.New("chime: duration must be a positive finite number of seconds")
	ErrTooShort        = errors.New("chime: duration too short to place chime strikes")
)

// Params identifies one clip.
type Params struct {
	Seed    int64
	Seconds float64
}

// DefaultParams returns the parameters of the stock night wind clip.
func DefaultParams() Params {
	return Params{
		Seed:    11,
		Seconds: 36.0,
	}
}

// Frames returns the number of frames the clip holds.
func (p Params) Frames() int {
	return int(math.Round(SampleRate * p.Seconds))
}

// strikeWindow returns the inclusive range of frames a strike may start at.
func (p Params) strikeWindow() (lo, hi int) {
	return int(SampleRate * leadIn), p.Frames() - int(SampleRate*leadOut)
}

// Validate reports whether the clip can be generated.
func (p Params) Validate() error {
	if math.IsNaN(p.Seconds) || math.IsInf(p.Seconds, 0) || p.Seconds <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDuration, p.Seconds)
	}
	if lo, hi := p.strikeWindow(); hi <= lo {
		return fmt.Errorf("%w: need more than %.1fs, got %vs", ErrTooShort, leadIn+leadOut, p.Seconds)
	}
	return nil
}
