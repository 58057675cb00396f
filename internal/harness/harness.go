package harness

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"goldengate/internal/acceptance"
	"goldengate/internal/config"
	"goldengate/internal/goldenset"
	"goldengate/internal/logging"
	"goldengate/internal/metrics"
	"goldengate/internal/outcome"
	"goldengate/internal/pairing"
	"goldengate/internal/verdict"
)

// Params carries everything a campaign run needs beyond its input data.
type Params struct {
	Scale             outcome.Scale
	DecisionThreshold float64
	MinCases          int
	Impact            verdict.ImpactClass
	SecondaryMode     verdict.SecondaryMode
	Table             *acceptance.Table
	TopDrift          int
}

// ParamsFromConfig compiles the threshold table and policy knobs from
// configuration. impactOverride, when non-empty, replaces the configured
// impact class (the operator declares it per change).
func ParamsFromConfig(cfg *config.Config, impactOverride string) (Params, error) {
	impactValue := cfg.Evaluation.ImpactClass
	if impactOverride != "" {
		impactValue = impactOverride
	}
	impact, err := verdict.ParseImpactClass(impactValue)
	if err != nil {
		return Params{}, err
	}
	mode, err := verdict.ParseSecondaryMode(cfg.Evaluation.SecondaryMode)
	if err != nil {
		return Params{}, err
	}
	table, err := acceptance.Compile(cfg.Thresholds)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Scale:             outcome.Scale{Min: cfg.Catalog.ScoreScaleMin, Max: cfg.Catalog.ScoreScaleMax},
		DecisionThreshold: cfg.Catalog.DecisionThreshold,
		MinCases:          cfg.Catalog.MinCases,
		Impact:            impact,
		SecondaryMode:     mode,
		Table:             table,
		TopDrift:          cfg.Evaluation.TopDrift,
	}, nil
}

// Harness evaluates one campaign. Construct with New, run once.
type Harness struct {
	params Params
	logger *slog.Logger
}

// New creates a harness. A nil logger discards log output.
func New(params Params, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Harness{params: params, logger: logger}
}

// Run classifies the collected outcomes against the catalog, computes all
// metrics, and emits the campaign Report. The only fatal condition at this
// point is a broken classification; data gaps degrade into the report.
func (h *Harness) Run(catalog *goldenset.Catalog, a, b *outcome.Collection) (*Report, error) {
	classification, err := pairing.Classify(catalog, a, b)
	if err != nil {
		return nil, fmt.Errorf("classify campaign: %w", err)
	}

	for _, u := range classification.Unmatched {
		h.logger.Warn("case missing from run collection",
			logging.String("case_id", u.CaseID),
			logging.Bool("missing_a", u.MissingA),
			logging.Bool("missing_b", u.MissingB))
	}
	for _, id := range classification.ExtraneousA {
		h.logger.Warn("record outside catalog", logging.String("case_id", id), logging.String("version", "A"))
	}
	for _, id := range classification.ExtraneousB {
		h.logger.Warn("record outside catalog", logging.String("case_id", id), logging.String("version", "B"))
	}
	for _, f := range append(append([]outcome.ConsistencyFinding(nil), a.Findings()...), b.Findings()...) {
		h.logger.Warn("decision label contradicts score",
			logging.String("case_id", f.CaseID),
			logging.String("version", string(f.Version)),
			logging.Float64("score", f.Score))
	}

	values := metrics.Compute(classification, a, b)
	results := h.params.Table.Evaluate(values)
	decision := verdict.Decide(results, h.params.Impact, h.params.SecondaryMode)

	h.logger.Info("campaign verdict",
		logging.String("status", string(decision.Status)),
		logging.String("action", string(decision.Action)),
		logging.Int("paired", len(classification.Pairs)),
		logging.Int("failed", len(classification.Failed)),
		logging.Int("unmatched", len(classification.Unmatched)))

	report := &Report{
		CampaignID:             uuid.NewString(),
		GeneratedAt:            time.Now().UTC(),
		CatalogSize:            catalog.Len(),
		DifficultyDistribution: catalog.DifficultyDistribution(),
		Languages:              catalog.Languages(),
		Counts: Counts{
			Paired:    len(classification.Pairs),
			Failed:    len(classification.Failed),
			Unmatched: len(classification.Unmatched),
		},
		FailureRateA:        classification.FailureRate(outcome.VersionA),
		FailureRateB:        classification.FailureRate(outcome.VersionB),
		ConsistencyFindings: append(append([]outcome.ConsistencyFinding(nil), a.Findings()...), b.Findings()...),
		ExtraneousA:         classification.ExtraneousA,
		ExtraneousB:         classification.ExtraneousB,
		TopDrift:            metrics.TopDrift(classification.Pairs, h.params.TopDrift),
		Verdict:             decision,
	}
	return report, nil
}

// RunFiles loads the catalog and both run files from disk and evaluates the
// campaign. Records rejected during ingestion are reported, not fatal.
func (h *Harness) RunFiles(catalogPath, baselinePath, candidatePath string) (*Report, error) {
	catalog, err := goldenset.LoadFile(catalogPath, h.params.MinCases)
	if err != nil {
		return nil, err
	}

	a, rejectedA, err := outcome.LoadFile(baselinePath, outcome.VersionA, h.params.Scale, h.params.DecisionThreshold)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	b, rejectedB, err := outcome.LoadFile(candidatePath, outcome.VersionB, h.params.Scale, h.params.DecisionThreshold)
	if err != nil {
		return nil, fmt.Errorf("candidate: %w", err)
	}

	var rejections []string
	for _, rej := range rejectedA {
		h.logger.Warn("baseline record rejected", logging.Error(rej))
		rejections = append(rejections, "baseline: "+rej.Error())
	}
	for _, rej := range rejectedB {
		h.logger.Warn("candidate record rejected", logging.Error(rej))
		rejections = append(rejections, "candidate: "+rej.Error())
	}

	report, err := h.Run(catalog, a, b)
	if err != nil {
		return nil, err
	}
	report.IngestionRejections = rejections
	return report, nil
}
