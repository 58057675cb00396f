package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"goldengate/internal/archive"
	"goldengate/internal/config"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "history [campaign-id]",
		Short: "Show archived campaign verdicts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := config.ExpandPath(cfg.Archive.Path)
			if err != nil {
				return err
			}
			store, err := archive.Open(path)
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}
			defer store.Close()

			if len(args) == 1 {
				report, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd, report)
			}

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No archived verdicts")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.CampaignID,
					e.CreatedAt.Format("2006-01-02 15:04:05"),
					e.Status,
					e.Action,
					strconv.Itoa(e.CatalogSize),
					fmt.Sprintf("%d/%d/%d", e.Paired, e.Failed, e.Unmatched),
					formatRate(e.FailureRateB),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Campaign", "Created", "Status", "Action", "Cases", "P/F/U", "Cand. Fail"},
				rows, 4, 6))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of verdicts to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit entries as JSON")

	return cmd
}
