package analysis

import (
	"math"
	"testing"

	"github.com/neurlang/windchime/chime"
)

func render(seconds float64, events ...chime.Event) []float64 {
	buf := make([]float64, int(seconds*chime.SampleRate))
	for n := range buf {
		for _, e := range events {
			buf[n] += e.Contribution(n)
		}
	}
	return buf
}

func TestPeakFrequency(t *testing.T) {
	for _, freq := range []float64{660, 880, 1125.5} {
		buf := render(1, chime.Event{Start: 0, Frequency: freq, Decay: 1})
		got := PeakFrequency(buf, chime.SampleRate, 0, chime.SampleRate/2)
		if math.Abs(got-freq) > 2 {
			t.Errorf("peak frequency: got %v, want %v", got, freq)
		}
		// the fifth is the strongest tone above the fundamental
		got = PeakFrequency(buf, chime.SampleRate, freq*1.25, chime.SampleRate/2)
		if math.Abs(got-1.5*freq) > 2 {
			t.Errorf("fifth: got %v, want %v", got, 1.5*freq)
		}
	}
	if PeakFrequency([]float64{1}, chime.SampleRate, 0, 1000) != 0 {
		t.Error("single sample should have no peak frequency")
	}
	if PeakFrequency(make([]float64, 100), chime.SampleRate, 3000, 2000) != 0 {
		t.Error("empty band should have no peak frequency")
	}
}

func TestStrikesSynthetic(t *testing.T) {
	onsets := []float64{1.0, 3.0, 4.5}
	var events []chime.Event
	for i, at := range onsets {
		events = append(events, chime.Event{
			Start:     int(at * chime.SampleRate),
			Frequency: 700 + 200*float64(i),
			Decay:     1,
		})
	}
	buf := render(8, events...)

	cfg := DefaultStrikeConfig()
	got := Strikes(buf, chime.SampleRate, cfg)
	if len(got) != len(onsets) {
		t.Fatalf("got strikes %v, want near %v", got, onsets)
	}
	window := float64(cfg.FrameLen) / chime.SampleRate
	for i, at := range onsets {
		if got[i] > at || got[i] < at-window {
			t.Errorf("strike %d at %.3fs, want within %.3fs before %.3fs", i, got[i], window, at)
		}
	}
}

func TestStrikesSilence(t *testing.T) {
	if got := Strikes(make([]float64, 44100), chime.SampleRate, DefaultStrikeConfig()); got != nil {
		t.Errorf("silence produced strikes %v", got)
	}
}

func TestStrikesInGeneratedClip(t *testing.T) {
	g, err := chime.NewGenerator(chime.Params{Seed: 11, Seconds: 12})
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]float64, 0, g.Frames())
	for g.Remaining() > 0 {
		buf = append(buf, g.Next())
	}

	got := Strikes(buf, chime.SampleRate, DefaultStrikeConfig())
	// strikes closer than the refractory period merge
	if len(got) < 4 {
		t.Fatalf("detected only %d strikes: %v", len(got), got)
	}
	if len(got) > chime.NumStrikes {
		t.Fatalf("detected %d strikes, clip has %d", len(got), chime.NumStrikes)
	}
	for _, at := range got {
		var near bool
		for _, e := range g.Events() {
			start := float64(e.Start) / chime.SampleRate
			if at <= start+0.001 && at >= start-0.06 {
				near = true
			}
		}
		if !near {
			t.Errorf("strike at %.3fs matches no chime event", at)
		}
	}
}

func TestPad(t *testing.T) {
	tests := []struct{ in, want int }{
		{10, 2048},
		{2048, 2048},
		{2049, 2048 + 512},
		{2048 + 512, 2048 + 512},
	}
	for _, tt := range tests {
		if got := len(pad(make([]float64, tt.in), 2048, 512)); got != tt.want {
			t.Errorf("pad(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
