package main

import (
	"github.com/spf13/cobra"

	"mubench/internal/stages"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		selection selectionFlags
		verbose   bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the names of the selected misuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			selection.apply(cmd, cfg)
			reader := newDataReader(cfg)
			reader.Add(stages.NewPrint(cmd.OutOrStdout(), verbose))
			return reader.Run()
		},
	}
	selection.register(cmd.Flags())
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the misuse path next to its name")
	return cmd
}
