// Command windchime renders the night wind and wind chime ambience to a WAV file.
//
// The clip is soft low-passed wind with slow breeze and drift swells, struck by seven
// chimes at seeded random times. The same seed and duration always produce the same file.
//
// Usage:
//
//	windchime [-seconds 36] [-seed 11] [-out path]
//
// The output defaults to <project root>/public/night-wind-chimes.wav, where the project
// root is the nearest directory above the working directory that holds a go.mod.
// The output is mono 16-bit PCM at 44100 Hz.
package main
