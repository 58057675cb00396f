package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"goldengate/internal/goldenset"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Golden set utilities",
	}

	catalogCmd.AddCommand(newCatalogCheckCommand(ctx))

	return catalogCmd
}

func newCatalogCheckCommand(ctx *commandContext) *cobra.Command {
	var file string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a golden set catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			catalog, err := goldenset.LoadFile(file, cfg.Catalog.MinCases)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, catalogSummary(catalog))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Catalog valid: %d cases\n", catalog.Len())

			dist := catalog.DifficultyDistribution()
			tiers := make([]string, 0, len(dist))
			for tier := range dist {
				tiers = append(tiers, string(tier))
			}
			sort.Strings(tiers)
			rows := make([][]string, 0, len(tiers))
			for _, tier := range tiers {
				rows = append(rows, []string{tier, fmt.Sprintf("%d", dist[goldenset.Difficulty(tier)])})
			}
			fmt.Fprintln(out, renderTable([]string{"Difficulty", "Cases"}, rows, 1))

			langs := catalog.Languages()
			fmt.Fprintf(out, "Languages (%d): ", len(langs))
			for i, lang := range langs {
				if i > 0 {
					fmt.Fprint(out, ", ")
				}
				fmt.Fprint(out, lang)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Catalog file (JSONL)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the summary as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

type catalogCheckSummary struct {
	Cases        int            `json:"cases"`
	Difficulties map[string]int `json:"difficulties"`
	Languages    []string       `json:"languages"`
}

func catalogSummary(catalog *goldenset.Catalog) catalogCheckSummary {
	dist := catalog.DifficultyDistribution()
	difficulties := make(map[string]int, len(dist))
	for tier, count := range dist {
		difficulties[string(tier)] = count
	}
	return catalogCheckSummary{
		Cases:        catalog.Len(),
		Difficulties: difficulties,
		Languages:    catalog.Languages(),
	}
}
