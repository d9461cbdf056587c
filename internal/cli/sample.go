package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/orbitals/internal/orbitals"
	"github.com/lukaszgryglicki/orbitals/internal/store"
)

// SampleOptions holds flags for the sample command.
type SampleOptions struct {
	*RootOptions
	params   paramFlags
	Database string
}

// SampleReport is the JSON payload of the sample command.
type SampleReport struct {
	*orbitals.Report
	RunID string `json:"runId,omitempty"`
}

// NewSampleCommand creates the sample command.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SampleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sample [config-file]",
		Short: "Sample an orbital into a point cloud",
		Long: `Sample a hydrogen orbital by rejection sampling a cube around the nucleus.

Parameters come from the defaults, then the optional JSON/TOML/YAML config
file, then explicitly set flags. l and m are clamped into range.

Example:
  orbitals sample --n 3 --l 2 --m -1 --png cloud.png
  orbitals sample scenes/orbital.toml --gif orbit.gif --db runs.db`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(opts, args, cmd)
		},
	}
	opts.params.register(cmd)
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite catalog")

	return cmd
}

func runSample(opts *SampleOptions, args []string, cmd *cobra.Command) error {
	out := newFormatter(opts.RootOptions, cmd)

	cfg, err := opts.params.effectiveConfig(cmd, args)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	out.VerboseLog("sampling %s: scale=%g threshold=%g guesses=%d", cfg.Quantum(), cfg.Scale, cfg.Threshold, cfg.Guesses)

	rep, err := orbitals.Run(*cfg)
	if err != nil {
		if errors.Is(err, orbitals.ErrInvalidConfig) || errors.Is(err, orbitals.ErrInvalidQuantumNumbers) {
			return WrapExitError(ExitCommandError, "invalid parameters", err)
		}
		return WrapExitError(ExitFailure, "sampling failed", err)
	}

	result := SampleReport{Report: rep}
	if opts.Database != "" {
		id, err := recordRun(cmd, opts.Database, rep)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to record run", err)
		}
		result.RunID = id
	}
	return out.Success(result, formatSampleReport(result))
}

func recordRun(cmd *cobra.Command, path string, rep *orbitals.Report) (string, error) {
	st, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer st.Close()

	run := &store.Run{
		N:          rep.Quantum.N,
		L:          rep.Quantum.L,
		M:          rep.Quantum.M,
		Scale:      rep.Config.Scale,
		Threshold:  rep.Config.Threshold,
		Guesses:    rep.Config.Guesses,
		Seed:       rep.Seed,
		Workers:    rep.Workers,
		Accepted:   rep.Summary.Accepted,
		Positive:   rep.Summary.Positive,
		Negative:   rep.Summary.Negative,
		MeanRadius: rep.Summary.MeanRadius,
		Elapsed:    rep.Elapsed,
		Outputs:    rep.Outputs,
	}
	if err := st.SaveRun(commandContext(cmd), run); err != nil {
		return "", err
	}
	return run.ID, nil
}

func formatSampleReport(r SampleReport) string {
	s := r.Summary
	var b strings.Builder
	fmt.Fprintf(&b, "orbital %s seed %d workers %d\n", r.Quantum, r.Seed, r.Workers)
	fmt.Fprintf(&b, "accepted %s of %s draws (%.2f%%)\n", formatCount(s.Accepted), formatCount(s.Draws), 100*s.AcceptanceRatio)
	fmt.Fprintf(&b, "positive %s, negative %s\n", formatCount(s.Positive), formatCount(s.Negative))
	if s.Accepted > 0 {
		fmt.Fprintf(&b, "bounding sphere center (%.3f, %.3f, %.3f) radius %.3f\n", s.Center.X, s.Center.Y, s.Center.Z, s.Radius)
		fmt.Fprintf(&b, "mean radius %.3f, max radius %.3f\n", s.MeanRadius, s.MaxRadius)
	}
	fmt.Fprintf(&b, "elapsed %s\n", r.Elapsed)
	for _, o := range r.Outputs {
		fmt.Fprintf(&b, "wrote %s\n", o)
	}
	if r.RunID != "" {
		fmt.Fprintf(&b, "run %s\n", r.RunID)
	}
	return b.String()
}
