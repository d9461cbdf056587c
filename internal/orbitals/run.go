package orbitals

import (
	"math/rand"
	"time"
)

// Report describes a finished Run.
type Report struct {
	Quantum QuantumNumbers `json:"quantum"`
	Config  Config         `json:"config"`
	Seed    int64          `json:"seed"`
	Workers int            `json:"workers"` // resolved count; replays need it with Seed
	Summary Summary        `json:"summary"`
	Elapsed time.Duration  `json:"elapsed"`
	Outputs []string       `json:"outputs,omitempty"`
	Result  *SampleResult  `json:"-"`
}

// Run clamps and validates cfg, samples the orbital once and writes the
// configured outputs. The worker count is resolved up front and reported, a
// single worker runs the sequential sampler.
func Run(cfg Config) (*Report, error) {
	cfg.Clamp()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	wf, err := NewWaveFunction(cfg.Quantum())
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	workers := EffectiveWorkers(cfg.Workers, cfg.Guesses)

	start := time.Now()
	var res *SampleResult
	if workers == 1 {
		res = Sample(wf, cfg.Sampling(), rand.New(rand.NewSource(seed)))
	} else {
		res = SampleParallel(wf, cfg.Sampling(), seed, workers)
	}
	rep := &Report{
		Quantum: wf.Q,
		Config:  cfg,
		Seed:    seed,
		Workers: workers,
		Summary: Summarize(res, cfg.Bins),
		Elapsed: time.Since(start),
		Result:  res,
	}
	DebugLog("sampling done", "accepted", rep.Summary.Accepted, "draws", rep.Summary.Draws, "workers", workers, "elapsed", rep.Elapsed)

	if cfg.RawOut != "" {
		if err := SaveRawBuffers(res, cfg.ViewSize, cfg.RawOut); err != nil {
			return nil, err
		}
		rep.Outputs = append(rep.Outputs, cfg.RawOut)
	}
	opts := cfg.RenderOptions()
	if cfg.PNGOut != "" {
		if err := SavePNG(res, opts, cfg.PNGOut); err != nil {
			return nil, err
		}
		rep.Outputs = append(rep.Outputs, cfg.PNGOut)
	}
	if cfg.GIFOut != "" {
		if err := SaveOrbitGIF(res, opts, cfg.GIFOut); err != nil {
			return nil, err
		}
		rep.Outputs = append(rep.Outputs, cfg.GIFOut)
	}
	return rep, nil
}
