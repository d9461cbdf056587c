package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/orbitals/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
	Limit    int
	ID       string
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded sampling runs",
		Long: `List runs recorded with "orbitals sample --db", newest first.

Example:
  orbitals runs --db runs.db --limit 5
  orbitals runs --db runs.db --id 0190f6c2-...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite run catalog (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs (0 = all)")
	cmd.Flags().StringVar(&opts.ID, "id", "", "show a single run")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
	out := newFormatter(opts.RootOptions, cmd)

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := commandContext(cmd)
	var runs []*store.Run
	if opts.ID != "" {
		r, err := st.GetRun(ctx, opts.ID)
		if errors.Is(err, store.ErrRunNotFound) {
			return WrapExitError(ExitCommandError, "unknown run", err)
		}
		if err != nil {
			return WrapExitError(ExitFailure, "failed to read run", err)
		}
		runs = append(runs, r)
	} else {
		runs, err = st.ListRuns(ctx, opts.Limit)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to list runs", err)
		}
	}
	return out.Success(runs, formatRuns(runs))
}

func formatRuns(runs []*store.Run) string {
	if len(runs) == 0 {
		return "no runs recorded\n"
	}
	var b strings.Builder
	for _, r := range runs {
		fmt.Fprintf(&b, "%s  %s  (n=%d, l=%d, m=%d)  accepted %s of %s  seed %d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.N, r.L, r.M,
			formatCount(r.Accepted), formatCount(r.Guesses), r.Seed)
	}
	return b.String()
}
