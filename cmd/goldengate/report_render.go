package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"goldengate/internal/harness"
	"goldengate/internal/verdict"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// renderReport writes the human-readable campaign summary: verdict banner,
// per-metric table, drift leaders, and data-quality findings.
func renderReport(w io.Writer, report *harness.Report) {
	colorize := shouldColorize(w)

	banner := fmt.Sprintf("%s (%s)", report.Verdict.Status, report.Verdict.Action)
	if colorize {
		color := ansiRed
		if report.Verdict.Status == verdict.StatusAccepted {
			color = ansiGreen
		}
		banner = color + banner + ansiReset
	}
	fmt.Fprintf(w, "Campaign %s\n", report.CampaignID)
	fmt.Fprintf(w, "Verdict: %s\n\n", banner)

	fmt.Fprintf(w, "Catalog: %d cases (%d paired, %d failed, %d unmatched)\n",
		report.CatalogSize, report.Counts.Paired, report.Counts.Failed, report.Counts.Unmatched)
	fmt.Fprintf(w, "ASR failure rate: baseline %s, candidate %s\n\n",
		formatRate(report.FailureRateA), formatRate(report.FailureRateB))

	rows := make([][]string, 0, len(report.Verdict.Results))
	for _, r := range report.Verdict.Results {
		tier := "secondary"
		if r.Primary {
			tier = "primary"
		}
		status := "PASS"
		if !r.Computable {
			status = "N/A"
		} else if !r.Passed {
			status = "FAIL"
		}
		rows = append(rows, []string{
			r.Name,
			tier,
			formatMetricValue(r.Value, r.Computable),
			r.Threshold,
			strconv.Itoa(r.SampleSize),
			status,
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Metric", "Tier", "Value", "Threshold", "N", "Status"},
		rows, 2, 4))

	if len(report.Verdict.Reasons) > 0 {
		fmt.Fprintln(w)
		for _, reason := range report.Verdict.Reasons {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
	}

	if len(report.TopDrift) > 0 {
		driftRows := make([][]string, 0, len(report.TopDrift))
		for _, d := range report.TopDrift {
			driftRows = append(driftRows, []string{
				d.CaseID,
				formatMetricValue(d.ScoreA, true),
				formatMetricValue(d.ScoreB, true),
				formatMetricValue(d.AbsDelta, true),
			})
		}
		fmt.Fprintf(w, "\nLargest per-case score drift:\n")
		fmt.Fprintln(w, renderTable(
			[]string{"Case", "Baseline", "Candidate", "|Delta|"},
			driftRows, 1, 2, 3))
	}

	renderFindings(w, report)
}

func renderFindings(w io.Writer, report *harness.Report) {
	var lines []string
	for _, f := range report.ConsistencyFindings {
		lines = append(lines, fmt.Sprintf("case %s (%s): recorded decision %q contradicts score %.2f, derived %q kept",
			f.CaseID, f.Version, f.Recorded, f.Score, f.Derived))
	}
	for _, rej := range report.IngestionRejections {
		lines = append(lines, "rejected record: "+rej)
	}
	for _, id := range report.ExtraneousA {
		lines = append(lines, "baseline record outside catalog: "+id)
	}
	for _, id := range report.ExtraneousB {
		lines = append(lines, "candidate record outside catalog: "+id)
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(w, "\nData quality findings (%d):\n", len(lines))
	for _, line := range lines {
		fmt.Fprintf(w, "  - %s\n", line)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func summarizeVerdict(v verdict.Verdict) string {
	if v.Status == verdict.StatusAccepted {
		return "candidate accepted"
	}
	var failed []string
	for _, r := range v.Results {
		if r.Primary && (!r.Computable || !r.Passed) {
			failed = append(failed, r.Name)
		}
	}
	if len(failed) == 0 {
		return "candidate rejected"
	}
	return "candidate rejected: " + strings.Join(failed, ", ")
}
