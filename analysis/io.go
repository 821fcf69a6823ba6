package analysis

import (
	"errors"
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

var ErrFileNotLoaded = errors.New("wavNotLoaded")

// LoadWav loads a wav file into a mono sample vector, averaging the channels of
// stereo input.
func LoadWav(inputFile string) ([]float64, beep.Format, error) {
	file, err := os.Open(inputFile)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}

	stream, format, err := wav.Decode(file)
	if err != nil {
		file.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %v", ErrFileNotLoaded, err)
	}
	defer stream.Close()

	scale := fullScale(format.Precision)
	out := make([]float64, 0, stream.Len())
	samples := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(samples)
		if !ok {
			break
		}
		for _, s := range samples[:n] {
			if format.NumChannels == 1 {
				out = append(out, s[0]*scale)
			} else {
				out = append(out, (s[0]+s[1])/2*scale)
			}
		}
	}
	if err := stream.Err(); err != nil {
		return nil, beep.Format{}, err
	}
	if len(out) == 0 || format.SampleRate == 0 {
		return nil, beep.Format{}, ErrFileNotLoaded
	}

	return out, format, nil
}

// fullScale undoes beep's signed PCM decoding, which divides by the unsigned
// range of the sample width instead of the signed one.
func fullScale(precision int) float64 {
	if precision < 2 {
		return 1
	}
	bits := uint(8 * precision)
	return float64(uint64(1)<<bits-1) / float64(uint64(1)<<(bits-1)-1)
}
