package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mubench/internal/format"
	"mubench/internal/store"
)

func newRunsCmd(opts *rootOptions) *cobra.Command {
	var (
		db     string
		report string
	)
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("db") {
				cfg.DB = db
			}
			if cmd.Flags().Changed("report") {
				cfg.Report.Format = report
			}
			mode, err := format.ParseMode(cfg.Report.Format)
			if err != nil {
				return err
			}
			st, err := store.Open(cfg.DB)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			runs, err := st.ListRuns()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}
			fmt.Fprintln(out, runsTable(runs, mode))
			return nil
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "Results DB path (overrides db)")
	cmd.Flags().StringVar(&report, "report", "", "Table format: ascii or markdown")
	return cmd
}

func runsTable(runs []*store.Run, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("Run", "Data", "Started", "Duration", "Misuses", "Status")
	for _, r := range runs {
		tb.Row(r.ID, format.Truncate(r.DataPath, 40), r.StartedAt, runDuration(r), r.Total, r.Status)
	}
	tb.Columns(format.ColumnConfig{Number: 5, Align: format.AlignRight})
	return tb.String()
}

func runDuration(r *store.Run) string {
	if r.FinishedAt == "" {
		return "-"
	}
	start, err := time.Parse(time.RFC3339, r.StartedAt)
	if err != nil {
		return "-"
	}
	end, err := time.Parse(time.RFC3339, r.FinishedAt)
	if err != nil {
		return "-"
	}
	return format.FmtDuration(end.Sub(start))
}
