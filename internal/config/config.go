package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Catalog constrains the golden set a campaign may run against.
type Catalog struct {
	// MinCases is the smallest golden set that can yield a meaningful verdict.
	MinCases int `toml:"min_cases"`
	// ScoreScaleMin and ScoreScaleMax declare the valid range for score_global.
	ScoreScaleMin float64 `toml:"score_scale_min"`
	ScoreScaleMax float64 `toml:"score_scale_max"`
	// DecisionThreshold is the external score cutoff that derives the
	// pass/review decision label. Used only to cross-check recorded labels.
	DecisionThreshold float64 `toml:"decision_threshold"`
}

// Evaluation holds campaign-level policy knobs.
type Evaluation struct {
	// ImpactClass is "neutral" or "expected-impact". A CLI flag may override it.
	ImpactClass string `toml:"impact_class"`
	// SecondaryMode is "advisory" (default) or "strict". In strict mode a
	// failing secondary metric forces rejection with an escalate action.
	SecondaryMode string `toml:"secondary_mode"`
	// TopDrift is how many worst per-case score deltas the report carries.
	TopDrift int `toml:"top_drift"`
}

// ThresholdRule describes one acceptance bound for a named metric.
// Op is one of "gte", "lte", or "within" (Lower/Upper band).
type ThresholdRule struct {
	Op    string  `toml:"op"`
	Bound float64 `toml:"bound"`
	Lower float64 `toml:"lower"`
	Upper float64 `toml:"upper"`
}

// Archive configures the optional verdict history store.
type Archive struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for the harness.
type Config struct {
	Catalog    Catalog                  `toml:"catalog"`
	Evaluation Evaluation               `toml:"evaluation"`
	Thresholds map[string]ThresholdRule `toml:"thresholds"`
	Archive    Archive                  `toml:"archive"`
	Logging    Logging                  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/goldengate/config.toml")
}

// Load locates, parses, and validates a configuration file. Defaults are
// applied first, so a missing file yields a usable default configuration.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// WriteSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Evaluation.ImpactClass = strings.ToLower(strings.TrimSpace(c.Evaluation.ImpactClass))
	if c.Evaluation.ImpactClass == "" {
		c.Evaluation.ImpactClass = defaultImpactClass
	}
	c.Evaluation.SecondaryMode = strings.ToLower(strings.TrimSpace(c.Evaluation.SecondaryMode))
	if c.Evaluation.SecondaryMode == "" {
		c.Evaluation.SecondaryMode = defaultSecondaryMode
	}
	if c.Evaluation.TopDrift <= 0 {
		c.Evaluation.TopDrift = defaultTopDrift
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Archive.Path = strings.TrimSpace(c.Archive.Path)
	if c.Archive.Path == "" {
		c.Archive.Path = defaultArchivePath
	}
	for name, rule := range c.Thresholds {
		rule.Op = strings.ToLower(strings.TrimSpace(rule.Op))
		c.Thresholds[name] = rule
	}
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}

// ExpandPath resolves ~ and relative segments for caller-supplied paths.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}
