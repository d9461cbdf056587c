package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/orbitals/internal/orbitals"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Q       orbitals.QuantumNumbers
	X, Y, Z float64
}

// EvalResult is the payload of the eval command.
type EvalResult struct {
	Quantum   orbitals.QuantumNumbers `json:"quantum"`
	Point     orbitals.Point3         `json:"point"`
	R         float64                 `json:"r"`
	Theta     float64                 `json:"theta"`
	Phi       float64                 `json:"phi"`
	Amplitude float64                 `json:"amplitude"`
	Density   float64                 `json:"density"`
	Sign      string                  `json:"sign"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a wavefunction at one point",
		Long: `Evaluate psi_nlm at a Cartesian point given in Bohr radii.

Quantum numbers are not clamped here: an invalid triple is an error.

Example:
  orbitals eval --n 3 --l 1 --m 0 --x 1 --y 2 --z 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, cmd)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Q.N, "n", orbitals.DefaultN, "principal quantum number")
	f.IntVar(&opts.Q.L, "l", orbitals.DefaultL, "angular momentum number")
	f.IntVar(&opts.Q.M, "m", orbitals.DefaultM, "magnetic number")
	f.Float64Var(&opts.X, "x", 1, "x coordinate")
	f.Float64Var(&opts.Y, "y", 0, "y coordinate")
	f.Float64Var(&opts.Z, "z", 0, "z coordinate")

	return cmd
}

func runEval(opts *EvalOptions, cmd *cobra.Command) error {
	out := newFormatter(opts.RootOptions, cmd)

	wf, err := orbitals.NewWaveFunction(opts.Q)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid quantum numbers", err)
	}
	p := orbitals.Point3{X: opts.X, Y: opts.Y, Z: opts.Z}
	if p.Len() == 0 {
		return WrapExitError(ExitCommandError, "the origin has no polar angle", nil)
	}
	r, theta, phi := p.Spherical()
	amp := wf.Eval(r, theta, phi)
	res := EvalResult{
		Quantum:   opts.Q,
		Point:     p,
		R:         r,
		Theta:     theta,
		Phi:       phi,
		Amplitude: amp,
		Density:   amp * amp,
		Sign:      orbitals.SignOf(amp).String(),
	}
	text := fmt.Sprintf("psi%s at (%g, %g, %g): amplitude %.6g, density %.6g (%s)\n",
		res.Quantum, p.X, p.Y, p.Z, res.Amplitude, res.Density, res.Sign)
	return out.Success(res, text)
}
