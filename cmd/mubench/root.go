package main

import (
	"github.com/spf13/cobra"

	"mubench/internal/config"
	"mubench/internal/logging"
)

// rootOptions carries the persistent flags and the loaded configuration to
// every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "mubench",
		Short: "Run the API-misuse benchmark corpus through its processing stages",
		Long: "mubench walks a corpus of misuse samples, selects them with white and\n" +
			"black lists, and runs each one through an ordered sequence of stages.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}
	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", config.DefaultPath, "Path to mubench.yaml")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	f.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json (overrides config)")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newRunsCmd(opts))
	cmd.Version = version
	return cmd
}

// load reads the config file, applies the persistent flag overrides and
// initialises logging on the command's stderr.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.Log.Level)
	logging.Init(level, cfg.Log.Format, cmd.ErrOrStderr())
	o.cfg = cfg
	return nil
}
