package goldenset

import (
	"fmt"
	"sort"
)

// Catalog is the fixed, ordered golden set for one campaign.
type Catalog struct {
	cases []Case
	byID  map[string]int
}

// New validates the provided cases and builds an immutable catalog.
// minCases is the smallest usable set; anything below it is a catalog error.
func New(cases []Case, minCases int) (*Catalog, error) {
	if len(cases) == 0 {
		return nil, fmt.Errorf("%w: golden set is empty", ErrCatalog)
	}
	if len(cases) < minCases {
		return nil, fmt.Errorf("%w: golden set has %d cases, need at least %d", ErrCatalog, len(cases), minCases)
	}

	byID := make(map[string]int, len(cases))
	owned := make([]Case, 0, len(cases))
	for i, c := range cases {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: case at index %d has empty id", ErrCatalog, i)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate case id %q", ErrCatalog, c.ID)
		}

		difficulty, err := ParseDifficulty(string(c.Difficulty))
		if err != nil {
			return nil, fmt.Errorf("%w: case %q: %v", ErrCatalog, c.ID, err)
		}
		c.Difficulty = difficulty

		lang, err := normalizeLanguage(c.Language)
		if err != nil {
			return nil, fmt.Errorf("%w: case %q: %v", ErrCatalog, c.ID, err)
		}
		c.Language = lang

		byID[c.ID] = len(owned)
		owned = append(owned, c)
	}

	return &Catalog{cases: owned, byID: byID}, nil
}

// Len returns the number of cases in the catalog.
func (c *Catalog) Len() int {
	return len(c.cases)
}

// Cases returns the catalog cases in load order. Callers must not mutate the
// returned slice.
func (c *Catalog) Cases() []Case {
	return c.cases
}

// Contains reports whether the catalog holds the given case id.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// IDs returns the case ids in load order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.cases))
	for i, cs := range c.cases {
		ids[i] = cs.ID
	}
	return ids
}

// DifficultyDistribution counts cases per difficulty tier.
func (c *Catalog) DifficultyDistribution() map[Difficulty]int {
	dist := make(map[Difficulty]int, 3)
	for _, cs := range c.cases {
		dist[cs.Difficulty]++
	}
	return dist
}

// Languages returns the distinct canonical language tags present, sorted.
func (c *Catalog) Languages() []string {
	seen := make(map[string]struct{})
	for _, cs := range c.cases {
		seen[cs.Language] = struct{}{}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
