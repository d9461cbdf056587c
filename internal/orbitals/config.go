package orbitals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type ImageCfg struct {
	Width     int  `json:"width" toml:"width" yaml:"width"`
	Height    int  `json:"height" toml:"height" yaml:"height"`
	PointSize int  `json:"pointSize" toml:"pointSize" yaml:"pointSize"`
	Frames    int  `json:"frames" toml:"frames" yaml:"frames"`
	Delay     int  `json:"delay" toml:"delay" yaml:"delay"` // 100ths of a second per GIF frame
	Fog       bool `json:"fog" toml:"fog" yaml:"fog"`
}

// Config holds the parameters of one sampling run and its outputs.
// Empty output paths skip that output.
type Config struct {
	N         int      `json:"n" toml:"n" yaml:"n"`
	L         int      `json:"l" toml:"l" yaml:"l"`
	M         int      `json:"m" toml:"m" yaml:"m"`
	Scale     Real     `json:"scale" toml:"scale" yaml:"scale"`
	Threshold Real     `json:"threshold" toml:"threshold" yaml:"threshold"`
	Guesses   int      `json:"guesses" toml:"guesses" yaml:"guesses"`
	Seed      int64    `json:"seed" toml:"seed" yaml:"seed"`          // 0 picks a clock seed
	Workers   int      `json:"workers" toml:"workers" yaml:"workers"` // 0 means one per CPU
	ViewSize  Real     `json:"viewSize" toml:"viewSize" yaml:"viewSize"`
	Bins      int      `json:"bins" toml:"bins" yaml:"bins"`
	RawOut    string   `json:"rawOut" toml:"rawOut" yaml:"rawOut"`
	PNGOut    string   `json:"pngOut" toml:"pngOut" yaml:"pngOut"`
	GIFOut    string   `json:"gifOut" toml:"gifOut" yaml:"gifOut"`
	Image     ImageCfg `json:"image" toml:"image" yaml:"image"`
}

// DefaultConfig returns the viewer's initial parameters with no file outputs.
func DefaultConfig() Config {
	return Config{
		N:         DefaultN,
		L:         DefaultL,
		M:         DefaultM,
		Scale:     DefaultScale,
		Threshold: DefaultThreshold,
		Guesses:   DefaultGuesses,
		ViewSize:  ViewSize,
		Bins:      HistogramBins,
		Image: ImageCfg{
			Width:     ImageWidth,
			Height:    ImageHeight,
			PointSize: PointSize,
			Frames:    GIFFrames,
			Delay:     GIFDelay,
			Fog:       true,
		},
	}
}

// Quantum returns the configured (n, l, m) as is; see Clamp.
func (c Config) Quantum() QuantumNumbers {
	return QuantumNumbers{N: c.N, L: c.L, M: c.M}
}

// Clamp forces n, l and m into a valid triple the way the settings panel does.
func (c *Config) Clamp() {
	q := c.Quantum().Clamp()
	c.N, c.L, c.M = q.N, q.L, q.M
}

func (c Config) Sampling() SamplingConfig {
	return SamplingConfig{Scale: c.Scale, Threshold: c.Threshold, SampleCount: c.Guesses}
}

func (c Config) RenderOptions() RenderOptions {
	return RenderOptions{
		Width:     c.Image.Width,
		Height:    c.Image.Height,
		PointSize: c.Image.PointSize,
		ViewSize:  c.ViewSize,
		Fog:       c.Image.Fog,
		Frames:    c.Image.Frames,
		Delay:     c.Image.Delay,
	}
}

// LoadConfig reads a JSON, TOML or YAML file (by extension) over the defaults
// and validates the result. Keys missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	DebugLog("loaded config", "path", path, "n", cfg.N, "l", cfg.L, "m", cfg.M,
		"scale", cfg.Scale, "threshold", cfg.Threshold, "guesses", cfg.Guesses)
	return &cfg, nil
}
