package analysis

import "math"

// Peak returns the largest absolute sample value.
func Peak(buf []float64) (peak float64) {
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return
}

// RMS returns the root mean square level, or 0 for an empty buffer.
func RMS(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	var sum float64
	for _, v := range buf {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(buf)))
}
