package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mubench/internal/config"
	"mubench/internal/datareader"
	"mubench/internal/logging"
)

// selectionFlags are the corpus selection flags shared by run and list.
type selectionFlags struct {
	data string
	only []string
	skip []string
}

func (s *selectionFlags) register(f *pflag.FlagSet) {
	f.StringVar(&s.data, "data", "", "Corpus root directory (overrides data_path)")
	f.StringSliceVar(&s.only, "only", nil, "Select misuses whose name contains any of these substrings (overrides only)")
	f.StringSliceVar(&s.skip, "skip", nil, "Exclude misuses whose name contains any of these substrings (overrides skip)")
}

// apply overrides cfg with the flags the user actually set.
func (s *selectionFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("data") {
		cfg.DataPath = s.data
	}
	if f.Changed("only") {
		cfg.Only = s.only
	}
	if f.Changed("skip") {
		cfg.Skip = s.skip
	}
}

func newDataReader(cfg *config.Config) *datareader.DataReader {
	logger := logging.New("datareader")
	if len(cfg.Only) == 0 {
		logger.Warn("white list is empty; no misuse will be selected (set --only or 'only' in the config)")
	}
	return datareader.New(cfg.DataPath, cfg.Only, cfg.Skip, datareader.WithLogger(logger))
}
