package chime

import (
	"math"

	"github.com/faiface/beep"
)

const (
	windCoeff = 0.0065
	windLevel = 0.42

	breezePeriod = 9.5
	breezeDepth  = 0.12
	breezeLevel  = 0.18

	driftPeriod = 33.0
	driftDepth  = 0.25
	driftLevel  = 0.15

	// Clip is the largest magnitude a sample may take.
	Clip = 0.97

	fullScale = 32767
)

// Generator produces the frames of one clip in order.
//
// It owns its random source. All strikes are drawn when the generator is made, then
// every frame draws one noise value, so the output depends only on Params.
type Generator struct {
	params Params
	frames int
	src    Source
	events []Event
	wind   float64
	n      int
}

var _ beep.Streamer = (*Generator)(nil)

// NewGenerator seeds a Twister from p and draws the clip's strikes.
func NewGenerator(p Params) (*Generator, error) {
	return NewGeneratorSource(p, NewTwister(p.Seed))
}

// NewGeneratorSource is like NewGenerator but draws from src instead of a Twister
// seeded with p.Seed.
func NewGeneratorSource(p Params, src Source) (*Generator, error) {
	events, err := NewEvents(src, p)
	if err != nil {
		return nil, err
	}
	return &Generator{
		params: p,
		frames: p.Frames(),
		src:    src,
		events: events,
	}, nil
}

// Events returns a copy of the clip's strikes.
func (g *Generator) Events() []Event {
	return append([]Event(nil), g.events...)
}

// Params returns the parameters the generator was built from.
func (g *Generator) Params() Params { return g.params }

// Frames returns the total number of frames in the clip.
func (g *Generator) Frames() int { return g.frames }

// Remaining returns the number of frames not yet produced.
func (g *Generator) Remaining() int { return g.frames - g.n }

// Wind returns the current low-pass accumulator.
func (g *Generator) Wind() float64 { return g.wind }

// Next computes the next frame and returns its clipped value. Calling Next past the
// end of the clip keeps synthesizing, so callers should honour Remaining.
func (g *Generator) Next() float64 {
	n := float64(g.n)

	noise := Uniform(g.src, -1.0, 1.0)
	g.wind += (noise - g.wind) * windCoeff

	breeze := math.Sin(2*math.Pi*n/(SampleRate*breezePeriod)) * breezeDepth
	drift := math.Sin(2*math.Pi*n/(SampleRate*driftPeriod)) * driftDepth
	sample := g.wind*windLevel + breeze*breezeLevel + drift*driftLevel

	var chime float64
	for _, e := range g.events {
		chime += e.Contribution(g.n)
	}
	g.n++

	return math.Max(-Clip, math.Min(Clip, sample+chime))
}

// Stream implements beep.Streamer. Each frame is emitted at the centre of its
// 16-bit step so that beep's truncating encoder writes Quantize(sample) exactly.
func (g *Generator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.Remaining() == 0 {
		return 0, false
	}
	for n < len(samples) && g.Remaining() > 0 {
		v := level(Quantize(g.Next()))
		samples[n] = [2]float64{v, v}
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (g *Generator) Err() error { return nil }

// Quantize converts a sample to a 16-bit value, rounding to nearest.
func Quantize(s float64) int16 {
	return int16(math.Round(s * fullScale))
}

func level(q int16) float64 {
	switch {
	case q > 0:
		return (float64(q) + 0.5) / fullScale
	case q < 0:
		return (float64(q) - 0.5) / fullScale
	}
	return 0
}
