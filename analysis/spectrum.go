package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/r9y9/gossp/stft"
)

// PeakFrequency returns the frequency in Hz of the strongest FFT bin of buf between
// lowHz and highHz. DC is never considered. It returns 0 if no bin falls in range.
func PeakFrequency(buf []float64, sampleRate int, lowHz, highHz float64) float64 {
	if len(buf) < 2 {
		return 0
	}
	spectrum := fft.FFTReal(buf)
	binHz := float64(sampleRate) / float64(len(buf))

	lo := int(math.Ceil(lowHz / binHz))
	if lo < 1 {
		lo = 1
	}
	hi := int(highHz / binHz)
	if hi > len(spectrum)/2 {
		hi = len(spectrum) / 2
	}

	var best int
	var mag float64
	for k := lo; k <= hi; k++ {
		if m := cmplx.Abs(spectrum[k]); m > mag {
			best, mag = k, m
		}
	}
	return float64(best) * binHz
}

// StrikeConfig tunes strike detection.
type StrikeConfig struct {
	// FrameLen and Hop are the STFT window length and frame shift in samples.
	FrameLen int
	Hop      int

	// Band limits in Hz. Chime fundamentals and their fifths fall inside.
	LowHz  float64
	HighHz float64

	// A strike needs band energy above Ratio times the mean of the previous
	// History frames and above Floor times the loudest frame.
	Ratio   float64
	History int
	Floor   float64

	// Refractory is the minimum gap in seconds between two strikes.
	Refractory float64
}

// DefaultStrikeConfig returns settings suited to the night wind clip.
func DefaultStrikeConfig() StrikeConfig {
	return StrikeConfig{
		FrameLen:   2048,
		Hop:        512,
		LowHz:      600,
		HighHz:     1800,
		Ratio:      1.5,
		History:    4,
		Floor:      0.01,
		Refractory: 0.1,
	}
}

// BandEnergy returns the energy between cfg.LowHz and cfg.HighHz of every STFT frame.
func BandEnergy(buf []float64, sampleRate int, cfg StrikeConfig) []float64 {
	buf = pad(buf, cfg.FrameLen, cfg.Hop)

	s := stft.New(cfg.Hop, cfg.FrameLen)
	spectrum := s.STFT(buf)

	lo := int(cfg.LowHz * float64(cfg.FrameLen) / float64(sampleRate))
	hi := int(cfg.HighHz * float64(cfg.FrameLen) / float64(sampleRate))
	if hi >= cfg.FrameLen/2 {
		hi = cfg.FrameLen/2 - 1
	}

	energy := make([]float64, len(spectrum))
	for i := range spectrum {
		for k := lo; k <= hi; k++ {
			v := spectrum[i][k]
			energy[i] += real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return energy
}

// Strikes returns the times in seconds at which chime strikes begin.
func Strikes(buf []float64, sampleRate int, cfg StrikeConfig) []float64 {
	energy := BandEnergy(buf, sampleRate, cfg)

	var loudest float64
	for _, e := range energy {
		if e > loudest {
			loudest = e
		}
	}
	if loudest == 0 {
		return nil
	}
	floor := cfg.Floor * loudest
	refractory := int(cfg.Refractory * float64(sampleRate) / float64(cfg.Hop))

	var times []float64
	last := -refractory - 1
	for i, e := range energy {
		if e < floor || i-last <= refractory {
			continue
		}
		var mean float64
		from := i - cfg.History
		if from < 0 {
			from = 0
		}
		for _, p := range energy[from:i] {
			mean += p
		}
		if i > from {
			mean /= float64(i - from)
		}
		if e > cfg.Ratio*mean {
			times = append(times, float64(i*cfg.Hop)/float64(sampleRate))
			last = i
		}
	}
	return times
}

// pad appends zeros so that buf holds a whole number of hops past one frame.
func pad(buf []float64, frameLen, hop int) []float64 {
	n := len(buf)
	if n < frameLen {
		n = frameLen
	}
	if r := (n - frameLen) % hop; r != 0 {
		n += hop - r
	}
	if n == len(buf) {
		return buf
	}
	out := make([]float64, n)
	copy(out, buf)
	return out
}
