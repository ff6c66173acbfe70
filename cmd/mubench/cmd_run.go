package main

import (
	"github.com/spf13/cobra"

	"mubench/internal/format"
	"mubench/internal/logging"
	"mubench/internal/stages"
)

type runFlags struct {
	selection      selectionFlags
	db             string
	noRecord       bool
	report         string
	requireProject bool
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Validate, count and record every selected misuse",
		Long: `Run resolves the corpus and feeds each misuse through the stages
validate -> stats -> record. Misuses with an unreadable misuse.yml are
skipped; the statistics table is printed when the run ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, opts, &flags)
		},
	}
	f := cmd.Flags()
	flags.selection.register(f)
	f.StringVar(&flags.db, "db", "", "Results DB path (overrides db)")
	f.BoolVar(&flags.noRecord, "no-record", false, "Do not record results in the DB")
	f.StringVar(&flags.report, "report", "", "Statistics table format: ascii or markdown (overrides report.format)")
	f.BoolVar(&flags.requireProject, "require-project", false, "Skip misuses whose misuse.yml has no project")
	return cmd
}

func runRun(cmd *cobra.Command, opts *rootOptions, flags *runFlags) error {
	cfg := opts.cfg
	flags.selection.apply(cmd, cfg)
	if cmd.Flags().Changed("db") {
		cfg.DB = flags.db
	}
	if flags.noRecord {
		cfg.Record = false
	}
	if cmd.Flags().Changed("report") {
		cfg.Report.Format = flags.report
	}
	mode, err := format.ParseMode(cfg.Report.Format)
	if err != nil {
		return err
	}

	reader := newDataReader(cfg)
	reader.Add(stages.NewValidate(flags.requireProject, logging.New("validate")))
	reader.Add(stages.NewStats(cmd.OutOrStdout(), mode))
	if cfg.Record {
		reader.Add(stages.NewRecord(stages.SqlOpener(cfg.DB), cfg.DataPath, logging.New("record")))
	}
	return reader.Run()
}
