// Package testsupport provides shared fixture builders for campaign tests:
// in-memory catalogs and collections, JSONL input files, and test configs.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goldengate/internal/config"
	"goldengate/internal/goldenset"
	"goldengate/internal/outcome"
)

// CaseID names the i-th synthetic golden case.
func CaseID(i int) string {
	return fmt.Sprintf("g%03d", i)
}

// Catalog builds a catalog of n medium-difficulty French cases.
func Catalog(t testing.TB, n int) *goldenset.Catalog {
	t.Helper()
	cases := make([]goldenset.Case, n)
	for i := range cases {
		cases[i] = goldenset.Case{
			ID:         CaseID(i),
			Difficulty: goldenset.DifficultyMedium,
			Conditions: []string{"quiet"},
			Language:   "fr",
		}
	}
	catalog, err := goldenset.New(cases, 2)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return catalog
}

// Campaign builds a catalog plus full baseline and candidate collections.
// scoreA and scoreB map case index to score; both versions record 100ms
// latencies and no failures.
func Campaign(t testing.TB, n int, scoreA, scoreB func(i int) float64) (*goldenset.Catalog, *outcome.Collection, *outcome.Collection) {
	t.Helper()
	catalog := Catalog(t, n)
	defaults := config.Default()
	scale := outcome.Scale{Min: defaults.Catalog.ScoreScaleMin, Max: defaults.Catalog.ScoreScaleMax}
	a := outcome.NewCollection(outcome.VersionA, scale, defaults.Catalog.DecisionThreshold)
	b := outcome.NewCollection(outcome.VersionB, scale, defaults.Catalog.DecisionThreshold)
	for i := 0; i < n; i++ {
		id := CaseID(i)
		if err := a.Add(outcome.Record{CaseID: id, Version: outcome.VersionA, Score: scoreA(i), LatencyMS: 100}); err != nil {
			t.Fatalf("add baseline record %s: %v", id, err)
		}
		if err := b.Add(outcome.Record{CaseID: id, Version: outcome.VersionB, Score: scoreB(i), LatencyMS: 100}); err != nil {
			t.Fatalf("add candidate record %s: %v", id, err)
		}
	}
	return catalog, a, b
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// CampaignFiles writes a catalog file and two run files in the JSONL wire
// shape. mutate adjusts the candidate score per case index; nil means the
// candidate reproduces the baseline exactly.
func CampaignFiles(t testing.TB, dir string, n int, mutate func(i int, score float64) float64) (string, string, string) {
	t.Helper()
	var catalog, baseline, candidate strings.Builder
	for i := 0; i < n; i++ {
		id := CaseID(i)
		score := 40 + float64(i)*0.5
		candScore := score
		if mutate != nil {
			candScore = mutate(i, score)
		}
		fmt.Fprintf(&catalog, `{"id":%q,"difficulty":"medium","conditions":["quiet"],"language":"fr"}`+"\n", id)
		fmt.Fprintf(&baseline, `{"id":%q,"final_score":%v,"ok":true,"latency_ms":100}`+"\n", id, score)
		fmt.Fprintf(&candidate, `{"id":%q,"final_score":%v,"ok":true,"latency_ms":100}`+"\n", id, candScore)
	}
	return WriteFile(t, dir, "catalog.jsonl", catalog.String()),
		WriteFile(t, dir, "baseline.jsonl", baseline.String()),
		WriteFile(t, dir, "candidate.jsonl", candidate.String())
}

// ConfigOption customizes a generated test configuration.
type ConfigOption func(*config.Config)

// WithArchive enables the verdict archive at the given database path.
func WithArchive(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Archive.Enabled = true
		cfg.Archive.Path = path
	}
}

// WithThreshold overrides one acceptance rule.
func WithThreshold(metric string, rule config.ThresholdRule) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Thresholds[metric] = rule
	}
}

// NewConfig produces a default config with the archive pointed at a temp
// directory, so tests never touch a real verdict history.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Archive.Path = filepath.Join(t.TempDir(), "verdicts.db")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}
