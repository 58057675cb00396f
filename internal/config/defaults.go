package config

const (
	defaultMinCases          = 20
	defaultScoreScaleMin     = 0.0
	defaultScoreScaleMax     = 100.0
	defaultDecisionThreshold = 60.0
	defaultImpactClass       = "neutral"
	defaultSecondaryMode     = "advisory"
	defaultTopDrift          = 10
	defaultArchivePath       = "~/.local/share/goldengate/verdicts.db"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults. The threshold
// values mirror the non-inferiority acceptance table: correlation and
// agreement floors, drift ceilings, and a failure-rate delta cap, plus
// advisory latency and jitter bounds.
func Default() Config {
	return Config{
		Catalog: Catalog{
			MinCases:          defaultMinCases,
			ScoreScaleMin:     defaultScoreScaleMin,
			ScoreScaleMax:     defaultScoreScaleMax,
			DecisionThreshold: defaultDecisionThreshold,
		},
		Evaluation: Evaluation{
			ImpactClass:   defaultImpactClass,
			SecondaryMode: defaultSecondaryMode,
			TopDrift:      defaultTopDrift,
		},
		Thresholds: map[string]ThresholdRule{
			"correlation":        {Op: "gte", Bound: 0.98},
			"mean_drift":         {Op: "within", Lower: -0.5, Upper: 0.5},
			"decision_agreement": {Op: "gte", Bound: 0.99},
			"ks_drift":           {Op: "lte", Bound: 0.08},
			"failure_rate_delta": {Op: "lte", Bound: 0.002},
			"max_abs_delta":      {Op: "lte", Bound: 5.0},
			"latency_delta":      {Op: "lte", Bound: 0.10},
			"jitter":             {Op: "lte", Bound: 4.0},
		},
		Archive: Archive{
			Enabled: false,
			Path:    defaultArchivePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
