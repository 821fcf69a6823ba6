// Command chimeinfo prints the format, levels and chime strikes of a WAV file.
//
// Usage:
//
//	chimeinfo <wav_file>
//
// Strikes are reported as onset times in seconds, detected from the energy of the
// 600-1800 Hz band.
package main
