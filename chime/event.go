package chime

import "math"

// NumStrikes is the number of chime strikes in every clip.
const NumStrikes = 7

// TailSeconds is how long a struck chime keeps ringing.
const TailSeconds = 3.3

const (
	fundamentalLevel = 0.08
	fifthLevel       = 0.05
	fifthRatio       = 1.5
)

// Event is a single chime strike.
type Event struct {
	// Start is the frame the strike lands on.
	Start int
	// Frequency of the fundamental in Hz.
	Frequency float64
	// Decay is the envelope time constant in seconds.
	Decay float64
}

// NewEvents draws the strikes of the clip described by p from src. Each strike
// consumes its start, frequency and decay in that order.
func NewEvents(src Source, p Params) ([]Event, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	lo, hi := p.strikeWindow()
	events := make([]Event, 0, NumStrikes)
	for i := 0; i < NumStrikes; i++ {
		var e Event
		e.Start = IntRange(src, lo, hi)
		e.Frequency = Uniform(src, 640.0, 1150.0)
		e.Decay = Uniform(src, 0.85, 1.35)
		events = append(events, e)
	}
	return events, nil
}

// Contribution returns the strike's tone at frame n, or 0 when n is outside its tail.
func (e Event) Contribution(n int) float64 {
	t := n - e.Start
	if t < 0 || float64(t) >= SampleRate*TailSeconds {
		return 0
	}
	ft := float64(t)
	env := math.Exp(-ft / (SampleRate * e.Decay))
	v := math.Sin(2*math.Pi*e.Frequency*ft/SampleRate) * fundamentalLevel * env
	v += math.Sin(2*math.Pi*(e.Frequency*fifthRatio)*ft/SampleRate) * fifthLevel * env
	return v
}
