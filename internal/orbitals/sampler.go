package orbitals

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// SamplingConfig parameterizes one rejection-sampling pass.
type SamplingConfig struct {
	Scale       Real // edge of the cube centered on the nucleus
	Threshold   Real // minimum accepted squared amplitude
	SampleCount int  // candidate draws; accepted points may be fewer
}

// empty reports configs that produce no draws at all.
func (c SamplingConfig) empty() bool { return c.SampleCount <= 0 || c.Scale <= 0 }

// drawCandidate picks a point uniformly in [-scale/2, scale/2]^3.
func drawCandidate(rng *rand.Rand, scale Real) Point3 {
	x := (rng.Float64() - 0.5) * scale
	y := (rng.Float64() - 0.5) * scale
	z := (rng.Float64() - 0.5) * scale
	return Point3{x, y, z}
}

// trial evaluates one candidate. The origin is rejected before the spherical
// conversion, non-finite amplitudes fail the threshold test.
func trial(wf Evaluator, p Point3, threshold Real) (Real, bool) {
	r := p.Len()
	if r == 0 {
		return 0, false
	}
	_, theta, phi := p.Spherical()
	amp := wf.Eval(r, theta, phi)
	if !isFinite(amp) || !(amp*amp >= threshold) {
		return amp, false
	}
	return amp, true
}

// sampleN runs n trials with rng, appending accepted points to res.
func sampleN(res *SampleResult, wf Evaluator, cfg SamplingConfig, rng *rand.Rand, n int, prog *progress) {
	for i := 0; i < n; i++ {
		p := drawCandidate(rng, cfg.Scale)
		if amp, ok := trial(wf, p, cfg.Threshold); ok {
			res.add(p, amp)
		}
		prog.tick()
	}
	res.Draws += n
}

// Sample draws cfg.SampleCount candidates from rng and keeps those whose
// squared amplitude reaches cfg.Threshold. A nil rng is seeded from the clock.
func Sample(wf Evaluator, cfg SamplingConfig, rng *rand.Rand) *SampleResult {
	res := newSampleResult(cfg)
	if cfg.empty() {
		return res
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sampleN(res, wf, cfg, rng, cfg.SampleCount, newProgress(cfg.SampleCount))
	DebugLog("sampled", "draws", res.Draws, "accepted", res.Len())
	return res
}

// workerSeed derives an independent stream per worker from the pass seed.
func workerSeed(seed int64, wid int) int64 {
	return seed ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
}

// EffectiveWorkers resolves the worker count a pass of draws candidates runs
// with: workers <= 0 means Workers, or runtime.NumCPU() when that is unset,
// and there are never more workers than draws. The result is at least 1.
func EffectiveWorkers(workers, draws int) int {
	if workers <= 0 {
		workers = Workers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return imax(1, min(workers, draws))
}

// SampleParallel splits the draws across workers, each with its own seeded
// RNG and output segment. Segments are concatenated in worker order, so the
// result is reproducible for a fixed (seed, EffectiveWorkers) pair.
func SampleParallel(wf Evaluator, cfg SamplingConfig, seed int64, workers int) *SampleResult {
	res := newSampleResult(cfg)
	if cfg.empty() {
		return res
	}
	workers = EffectiveWorkers(workers, cfg.SampleCount)

	per, rem := cfg.SampleCount/workers, cfg.SampleCount%workers
	parts := make([]*SampleResult, workers)
	prog := newProgress(cfg.SampleCount)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		go func(wid, n int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(workerSeed(seed, wid)))
			part := newSampleResult(cfg)
			sampleN(part, wf, cfg, rng, n, prog)
			parts[wid] = part
		}(w, n)
	}
	wg.Wait()

	for _, part := range parts {
		res.merge(part)
	}
	DebugLog("sampled in parallel", "workers", workers, "draws", res.Draws, "accepted", res.Len())
	return res
}

// progress reports ~1% steps of a pass when Debug is on.
type progress struct {
	total, step int64
	fired       int64
}

func newProgress(total int) *progress {
	step := int64(1)
	if total >= 100 {
		step = int64(total / 100)
	}
	return &progress{total: int64(total), step: step}
}

func (p *progress) tick() {
	if !Debug {
		return
	}
	fired := atomic.AddInt64(&p.fired, 1)
	if fired%p.step == 0 {
		DebugLog("progress", "percent", Real(fired)*100/Real(p.total))
	}
}
