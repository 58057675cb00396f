package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goldengate/internal/archive"
	"goldengate/internal/config"
	"goldengate/internal/harness"
	"goldengate/internal/verdict"
)

func newEvaluateCommand(ctx *commandContext) *cobra.Command {
	var catalogPath string
	var baselinePath string
	var candidatePath string
	var impact string
	var strict bool
	var jsonOut bool
	var noArchive bool

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run a candidate campaign against the baseline and emit a verdict",
		Long: `Evaluate loads the golden set catalog and the run outputs of the baseline
(version A) and candidate (version B), computes the non-inferiority metrics,
and emits an ACCEPTED or REJECTED verdict with a recommended action.

The command exits non-zero when the candidate is rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}

			params, err := harness.ParamsFromConfig(cfg, impact)
			if err != nil {
				return err
			}
			if strict {
				params.SecondaryMode = verdict.SecondaryStrict
			}

			report, err := harness.New(params, logger).RunFiles(catalogPath, baselinePath, candidatePath)
			if err != nil {
				return err
			}

			if cfg.Archive.Enabled && !noArchive {
				if err := archiveReport(cmd.Context(), cfg.Archive.Path, report); err != nil {
					return err
				}
			}

			if jsonOut {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				renderReport(cmd.OutOrStdout(), report)
			}

			if report.Verdict.Status == verdict.StatusRejected {
				return fmt.Errorf("%s (recommended action: %s)", summarizeVerdict(report.Verdict), report.Verdict.Action)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Golden set catalog file (JSONL)")
	cmd.Flags().StringVar(&baselinePath, "baseline", "", "Baseline (version A) run output file (JSONL)")
	cmd.Flags().StringVar(&candidatePath, "candidate", "", "Candidate (version B) run output file (JSONL)")
	cmd.Flags().StringVar(&impact, "impact", "", "Impact class of the change: neutral or expected-impact")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat secondary metric failures as blocking")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the full report as JSON")
	cmd.Flags().BoolVar(&noArchive, "no-archive", false, "Skip writing the verdict to the archive")
	_ = cmd.MarkFlagRequired("catalog")
	_ = cmd.MarkFlagRequired("baseline")
	_ = cmd.MarkFlagRequired("candidate")

	return cmd
}

func archiveReport(ctx context.Context, path string, report *harness.Report) error {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return err
	}
	store, err := archive.Open(expanded)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer store.Close()
	if err := store.Append(ctx, report); err != nil {
		return fmt.Errorf("archive verdict: %w", err)
	}
	return nil
}
