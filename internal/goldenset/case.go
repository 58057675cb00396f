package goldenset

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Difficulty tiers a case by expected recognition hardness.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalizes and validates a difficulty tier.
func ParseDifficulty(value string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(value))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", value)
	}
}

// Case is one golden-set test case. Immutable for the life of a campaign.
type Case struct {
	ID         string     `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	Conditions []string   `json:"conditions"`
	Language   string     `json:"language"`
}

// normalizeLanguage canonicalizes a BCP 47 tag ("fr", "fr-CA", "eng").
func normalizeLanguage(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("language tag is empty")
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("language tag %q: %w", value, err)
	}
	return tag.String(), nil
}
