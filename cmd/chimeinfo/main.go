package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/neurlang/windchime/analysis"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Println("Usage: chimeinfo <wav_file>")
		os.Exit(1)
	}
	var filename = os.Args[1]

	buf, format, err := analysis.LoadWav(filename)
	if err != nil {
		logger.Fatal("failed to load wav", zap.String("file", filename), zap.Error(err))
	}
	rate := int(format.SampleRate)

	fmt.Printf("file:      %s\n", filename)
	fmt.Printf("format:    %d Hz, %d channel(s), %d-bit\n", rate, format.NumChannels, format.Precision*8)
	fmt.Printf("frames:    %d (%.2fs)\n", len(buf), float64(len(buf))/float64(rate))
	fmt.Printf("peak:      %.4f\n", analysis.Peak(buf))
	fmt.Printf("rms:       %.4f\n", analysis.RMS(buf))
	cfg := analysis.DefaultStrikeConfig()
	fmt.Printf("chimes:    loudest tone at %.1f Hz\n", analysis.PeakFrequency(buf, rate, cfg.LowHz, cfg.HighHz))

	strikes := analysis.Strikes(buf, rate, cfg)
	fmt.Printf("strikes:   %d\n", len(strikes))
	for _, at := range strikes {
		fmt.Printf("  %8.3fs\n", at)
	}
}
