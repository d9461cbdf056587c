package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigOptions holds flags for the config command.
type ConfigOptions struct {
	*RootOptions
	params paramFlags
}

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConfigOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "config [config-file]",
		Short: "Print the effective configuration",
		Long: `Print the configuration a sample run would use: defaults, then the
optional config file, then flags, with l and m clamped. Text output is YAML
and can be saved as a config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(opts, args, cmd)
		},
	}
	opts.params.register(cmd)

	return cmd
}

func runConfig(opts *ConfigOptions, args []string, cmd *cobra.Command) error {
	out := newFormatter(opts.RootOptions, cmd)

	cfg, err := opts.params.effectiveConfig(cmd, args)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return WrapExitError(ExitFailure, "failed to encode config", err)
	}
	if err := enc.Close(); err != nil {
		return WrapExitError(ExitFailure, "failed to encode config", err)
	}
	return out.Success(cfg, b.String())
}
