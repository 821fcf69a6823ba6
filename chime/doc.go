// Package chime synthesizes a night wind and wind chime ambience and encodes it as PCM WAV.
//
// A clip is fully determined by its seed and duration:
//   - Seven chime strikes are drawn up front from a seeded Mersenne Twister
//   - Wind is white noise through a one-pole low-pass filter, one draw per frame
//   - Two slow sine oscillators add breeze and drift
//   - Samples are clipped to +-0.97 and written as 16-bit mono at 44100 Hz
package chime
