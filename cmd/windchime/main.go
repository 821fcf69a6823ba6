package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/neurlang/windchime/chime"
	"github.com/neurlang/windchime/internal/paths"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	def := chime.DefaultParams()
	seconds := flag.Float64("seconds", def.Seconds, "clip duration in seconds")
	seed := flag.Int64("seed", def.Seed, "random seed")
	out := flag.String("out", "", "output file (default <project root>/public/"+paths.OutputName+")")
	flag.Parse()

	params := chime.Params{Seed: *seed, Seconds: *seconds}
	if err := params.Validate(); err != nil {
		logger.Fatal("invalid parameters", zap.Error(err))
	}

	outputFile := *out
	if outputFile == "" {
		root, err := paths.Root()
		if err != nil {
			logger.Fatal("failed to resolve project root", zap.Error(err))
		}
		outputFile = paths.DefaultOutput(root)
	}

	if err := chime.WriteFile(outputFile, params); err != nil {
		logger.Fatal("failed to generate ambience",
			zap.String("output", outputFile),
			zap.Error(err),
		)
	}

	fmt.Printf("Generated %s (%.0fs)\n", filepath.Base(outputFile), params.Seconds)
}
