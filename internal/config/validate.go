package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateEvaluation(); err != nil {
		return err
	}
	if err := c.validateThresholds(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.MinCases < 2 {
		return errors.New("catalog.min_cases must be at least 2")
	}
	if c.Catalog.ScoreScaleMax <= c.Catalog.ScoreScaleMin {
		return fmt.Errorf("catalog score scale is empty: [%v, %v]",
			c.Catalog.ScoreScaleMin, c.Catalog.ScoreScaleMax)
	}
	if c.Catalog.DecisionThreshold < c.Catalog.ScoreScaleMin || c.Catalog.DecisionThreshold > c.Catalog.ScoreScaleMax {
		return fmt.Errorf("catalog.decision_threshold %v outside score scale [%v, %v]",
			c.Catalog.DecisionThreshold, c.Catalog.ScoreScaleMin, c.Catalog.ScoreScaleMax)
	}
	return nil
}

func (c *Config) validateEvaluation() error {
	switch c.Evaluation.ImpactClass {
	case "neutral", "expected-impact":
	default:
		return fmt.Errorf("evaluation.impact_class must be neutral or expected-impact, got %q", c.Evaluation.ImpactClass)
	}
	switch c.Evaluation.SecondaryMode {
	case "advisory", "strict":
	default:
		return fmt.Errorf("evaluation.secondary_mode must be advisory or strict, got %q", c.Evaluation.SecondaryMode)
	}
	return nil
}

func (c *Config) validateThresholds() error {
	if len(c.Thresholds) == 0 {
		return errors.New("thresholds table must not be empty")
	}
	for name, rule := range c.Thresholds {
		switch rule.Op {
		case "gte", "lte":
		case "within":
			if rule.Upper <= rule.Lower {
				return fmt.Errorf("thresholds.%s: within band is empty: [%v, %v]", name, rule.Lower, rule.Upper)
			}
		default:
			return fmt.Errorf("thresholds.%s: op must be gte, lte, or within, got %q", name, rule.Op)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
