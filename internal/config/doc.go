// Package config loads and validates the harness configuration.
//
// Configuration sections by subsystem:
//   - Catalog: golden-set constraints (minimum size, score scale, decision threshold)
//   - Evaluation: impact class, secondary-metric mode, report sizing
//   - Thresholds: per-metric acceptance rules, revisable without code changes
//   - Archive: optional verdict history store
//   - Logging: log format and level
//
// Values come from a TOML file with defaults applied for anything unset.
// The threshold table is deliberately a name-to-rule mapping rather than
// fixed fields so new metrics can be gated by configuration alone.
package config
