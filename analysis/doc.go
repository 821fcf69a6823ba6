// Package analysis inspects rendered clips.
//
// It supports:
//   - Loading PCM WAV files into mono sample vectors
//   - Peak and RMS levels
//   - Locating the dominant frequency with an FFT
//   - Detecting chime strikes from STFT band energy
package analysis
