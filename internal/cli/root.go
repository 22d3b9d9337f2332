package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nyxventure/internal/config"
)

// buildRootCmd constructs the command tree. Flag values land in opts.
func buildRootCmd(opts *Options) *cobra.Command {
	root := &cobra.Command{
		Use:           "nyxd",
		Short:         "Observable story model server and script runner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (.yaml, .yml, .json, .toml)")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug|info|warn|error (defaults NYX_LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "Log format: console|json (defaults NYX_LOG_FORMAT or console)")

	root.AddCommand(
		newServeCmd(opts),
		newRunCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "nyxd", version)
				return err
			},
		},
	)
	return root
}

// resolve loads the configuration and applies the persistent flag overrides.
func (o *Options) resolve() (config.Config, error) {
	cfg, err := config.Resolve(o.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.LogFormat = o.LogFormat
	}
	return cfg, nil
}
