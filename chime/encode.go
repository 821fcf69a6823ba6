package chime

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// Format is the PCM layout of every clip: mono, 16-bit signed, 44100 Hz.
var Format = beep.Format{
	SampleRate:  beep.SampleRate(SampleRate),
	NumChannels: 1,
	Precision:   2,
}

// HeaderSize is the length of the RIFF header preceding the sample data.
const HeaderSize = 44

// Encode writes the remaining frames of g to w as a WAV stream. The size fields of
// the header are patched once the last frame has been written.
func Encode(w io.WriteSeeker, g *Generator) error {
	if err := wav.Encode(w, g, Format); err != nil {
		return fmt.Errorf("chime: encode: %w", err)
	}
	return patchRiffSize(w)
}

// patchRiffSize rewrites the RIFF chunk size, which beep sets to the whole file
// length rather than the length following the size field.
func patchRiffSize(w io.WriteSeeker) error {
	end, err := w.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("chime: encode: %w", err)
	}
	if _, err := w.Seek(4, io.SeekStart); err != nil {
		return fmt.Errorf("chime: encode: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(end-8)); err != nil {
		return fmt.Errorf("chime: encode: %w", err)
	}
	if _, err := w.Seek(end, io.SeekStart); err != nil {
		return fmt.Errorf("chime: encode: %w", err)
	}
	return nil
}

// WriteFile generates the clip described by p into path, creating parent
// directories as needed. Invalid parameters are rejected before anything is
// created. A failure part way through leaves a truncated file behind.
func WriteFile(path string, p Params) (err error) {
	g, err := NewGenerator(p)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("chime: create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chime: create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("chime: close output file: %w", cerr)
		}
	}()

	return Encode(f, g)
}
