package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/orbitals/internal/orbitals"
)

// paramFlags are the sampling parameters that can override a config file.
type paramFlags struct {
	N, L, M   int
	Scale     float64
	Threshold float64
	Guesses   int
	Seed      int64
	Workers   int
	Raw       string
	PNG       string
	GIF       string
}

func (p *paramFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&p.N, "n", orbitals.DefaultN, "principal quantum number (n>0)")
	f.IntVar(&p.L, "l", orbitals.DefaultL, "angular momentum number (0<=l<n), clamped")
	f.IntVar(&p.M, "m", orbitals.DefaultM, "magnetic number (|m|<=l), clamped")
	f.Float64Var(&p.Scale, "scale", orbitals.DefaultScale, "edge of the sampling cube in Bohr radii")
	f.Float64Var(&p.Threshold, "threshold", orbitals.DefaultThreshold, "minimum accepted squared amplitude")
	f.IntVar(&p.Guesses, "guesses", orbitals.DefaultGuesses, "candidate draws")
	f.Int64Var(&p.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	f.IntVar(&p.Workers, "workers", 0, "sampling workers (0 = one per CPU, 1 = sequential)")
	f.StringVar(&p.Raw, "raw", "", "write float32 position/color buffers to this file")
	f.StringVar(&p.PNG, "png", "", "render a PNG snapshot to this file")
	f.StringVar(&p.GIF, "gif", "", "render an orbiting GIF to this file")
}

// apply copies explicitly set flags over cfg.
func (p *paramFlags) apply(cmd *cobra.Command, cfg *orbitals.Config) {
	f := cmd.Flags()
	if f.Changed("n") {
		cfg.N = p.N
	}
	if f.Changed("l") {
		cfg.L = p.L
	}
	if f.Changed("m") {
		cfg.M = p.M
	}
	if f.Changed("scale") {
		cfg.Scale = p.Scale
	}
	if f.Changed("threshold") {
		cfg.Threshold = p.Threshold
	}
	if f.Changed("guesses") {
		cfg.Guesses = p.Guesses
	}
	if f.Changed("seed") {
		cfg.Seed = p.Seed
	}
	if f.Changed("workers") {
		cfg.Workers = p.Workers
	}
	if f.Changed("raw") {
		cfg.RawOut = p.Raw
	}
	if f.Changed("png") {
		cfg.PNGOut = p.PNG
	}
	if f.Changed("gif") {
		cfg.GIFOut = p.GIF
	}
}

// effectiveConfig loads the optional config file, applies flag overrides and
// clamps the quantum numbers.
func (p *paramFlags) effectiveConfig(cmd *cobra.Command, args []string) (*orbitals.Config, error) {
	cfg := orbitals.DefaultConfig()
	if len(args) > 0 {
		loaded, err := orbitals.LoadConfig(args[0])
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	p.apply(cmd, &cfg)
	cfg.Clamp()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
