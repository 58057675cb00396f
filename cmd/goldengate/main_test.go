package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goldengate/internal/testsupport"
)

func runCLI(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

// minimalConfig pins the config flag to an empty file so tests never pick up
// a developer's real configuration from the default path.
func minimalConfig(t *testing.T, dir string) string {
	t.Helper()
	return testsupport.WriteFile(t, dir, "config.toml", "")
}

func archiveConfig(t *testing.T, dir string) (string, string) {
	t.Helper()
	archivePath := filepath.Join(dir, "verdicts.db")
	content := fmt.Sprintf("[archive]\nenabled = true\npath = %q\n", archivePath)
	return testsupport.WriteFile(t, dir, "config.toml", content), archivePath
}

func TestEvaluateAcceptsIdenticalRuns(t *testing.T) {
	dir := t.TempDir()
	catalog, baseline, candidate := testsupport.CampaignFiles(t, dir, 40, nil)

	out, err := runCLI(t, minimalConfig(t, dir),
		"evaluate", "--catalog", catalog, "--baseline", baseline, "--candidate", candidate)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	requireContains(t, out, "ACCEPTED")
	requireContains(t, out, "promote")
	requireContains(t, out, "correlation")
}

func TestEvaluateRejectsDegradedCandidate(t *testing.T) {
	dir := t.TempDir()
	catalog, baseline, candidate := testsupport.CampaignFiles(t, dir, 40, func(i int, score float64) float64 {
		if i%2 == 0 {
			return score + 4
		}
		return score - 4
	})

	out, err := runCLI(t, minimalConfig(t, dir),
		"evaluate", "--catalog", catalog, "--baseline", baseline, "--candidate", candidate)
	if err == nil {
		t.Fatal("expected non-nil error for rejected candidate")
	}
	requireContains(t, out, "REJECTED")
	requireContains(t, out, "rollback_scoring")
	requireContains(t, err.Error(), "rejected")
}

func TestEvaluateJSONOutput(t *testing.T) {
	dir := t.TempDir()
	catalog, baseline, candidate := testsupport.CampaignFiles(t, dir, 40, nil)

	out, err := runCLI(t, minimalConfig(t, dir),
		"evaluate", "--json", "--catalog", catalog, "--baseline", baseline, "--candidate", candidate)
	if err != nil {
		t.Fatalf("evaluate --json: %v", err)
	}
	requireContains(t, out, `"CampaignID"`)
	requireContains(t, out, `"Status": "ACCEPTED"`)
}

func TestEvaluateArchivesVerdict(t *testing.T) {
	dir := t.TempDir()
	configPath, archivePath := archiveConfig(t, dir)
	catalog, baseline, candidate := testsupport.CampaignFiles(t, dir, 40, nil)

	if _, err := runCLI(t, configPath,
		"evaluate", "--catalog", catalog, "--baseline", baseline, "--candidate", candidate); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if _, err := os.Stat(archivePath); err != nil {
		t.Fatalf("expected archive database at %s: %v", archivePath, err)
	}

	out, err := runCLI(t, configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "ACCEPTED")
	requireContains(t, out, "promote")
}

func TestEvaluateNoArchiveSkipsStore(t *testing.T) {
	dir := t.TempDir()
	configPath, archivePath := archiveConfig(t, dir)
	catalog, baseline, candidate := testsupport.CampaignFiles(t, dir, 40, nil)

	if _, err := runCLI(t, configPath,
		"evaluate", "--no-archive", "--catalog", catalog, "--baseline", baseline, "--candidate", candidate); err != nil {
		t.Fatalf("evaluate --no-archive: %v", err)
	}
	if _, err := os.Stat(archivePath); !os.IsNotExist(err) {
		t.Fatalf("expected no archive database, stat err: %v", err)
	}
}

func TestEvaluateImpactFlagOverride(t *testing.T) {
	dir := t.TempDir()
	catalog, baseline, candidate := testsupport.CampaignFiles(t, dir, 40, func(i int, score float64) float64 {
		return 100 - score
	})

	out, err := runCLI(t, minimalConfig(t, dir),
		"evaluate", "--impact", "expected-impact",
		"--catalog", catalog, "--baseline", baseline, "--candidate", candidate)
	if err == nil {
		t.Fatal("expected rejection")
	}
	requireContains(t, out, "escalate_major_version")
}

func TestCatalogCheck(t *testing.T) {
	dir := t.TempDir()
	catalog, _, _ := testsupport.CampaignFiles(t, dir, 25, nil)

	out, err := runCLI(t, minimalConfig(t, dir), "catalog", "check", "--file", catalog)
	if err != nil {
		t.Fatalf("catalog check: %v", err)
	}
	requireContains(t, out, "Catalog valid: 25 cases")
	requireContains(t, out, "medium")
	requireContains(t, out, "fr")
}

func TestCatalogCheckRejectsUndersized(t *testing.T) {
	dir := t.TempDir()
	catalog, _, _ := testsupport.CampaignFiles(t, dir, 5, nil)

	if _, err := runCLI(t, minimalConfig(t, dir), "catalog", "check", "--file", catalog); err == nil {
		t.Fatal("expected undersized catalog to fail")
	}
}

func TestHistoryShowsFullReport(t *testing.T) {
	dir := t.TempDir()
	configPath, _ := archiveConfig(t, dir)
	catalog, baseline, candidate := testsupport.CampaignFiles(t, dir, 40, nil)

	if _, err := runCLI(t, configPath,
		"evaluate", "--catalog", catalog, "--baseline", baseline, "--candidate", candidate); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	listOut, err := runCLI(t, configPath, "history", "--json")
	if err != nil {
		t.Fatalf("history --json: %v", err)
	}
	requireContains(t, listOut, `"CampaignID"`)

	// Pull the campaign id out of the JSON listing to fetch the full report.
	idx := strings.Index(listOut, `"CampaignID": "`)
	if idx < 0 {
		t.Fatalf("campaign id missing from listing: %s", listOut)
	}
	rest := listOut[idx+len(`"CampaignID": "`):]
	campaignID := rest[:strings.Index(rest, `"`)]

	showOut, err := runCLI(t, configPath, "history", campaignID)
	if err != nil {
		t.Fatalf("history %s: %v", campaignID, err)
	}
	requireContains(t, showOut, `"Verdict"`)
	requireContains(t, showOut, campaignID)
}
