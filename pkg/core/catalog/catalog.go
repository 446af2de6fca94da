package catalog

import (
	"fmt"
	"strings"
	"sync"
)

var (
	indexOnce  sync.Once
	aliasIndex map[string]*IndustryTemplate
)

// normalizeKey collapses the historical naming schemes into one form:
// lowercase, trimmed, with spaces and underscores folded to hyphens.
// "Data_Center", "data center" and "data-center" all resolve the same
// template. Slug mismatches silently falling through to a default was
// a recurring production bug; normalization plus the alias table is
// the lookup surface, and a miss is a hard miss.
func normalizeKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.ReplaceAll(k, "_", "-")
	k = strings.ReplaceAll(k, " ", "-")
	return k
}

func buildIndex() {
	aliasIndex = make(map[string]*IndustryTemplate, len(templates)*4)
	for i := range templates {
		t := &templates[i]
		aliasIndex[normalizeKey(t.ID)] = t
		for _, a := range t.Aliases {
			aliasIndex[normalizeKey(a)] = t
		}
	}
}

// Lookup resolves an industry key (canonical ID or any declared alias)
// to its template. The second return is false on a miss; callers must
// treat a miss as fatal, never substitute a default template.
func Lookup(key string) (*IndustryTemplate, bool) {
	indexOnce.Do(buildIndex)
	t, ok := aliasIndex[normalizeKey(key)]
	return t, ok
}

// All returns the full catalog in declaration order.
func All() []IndustryTemplate {
	return templates
}

// Validate checks the catalog invariants: unique IDs, alias sets
// disjoint across templates, and at least one scale driver per
// template. Run at startup and from the test suite.
func Validate() error {
	seen := make(map[string]string) // normalized key -> owning template ID
	claim := func(key, owner string) error {
		k := normalizeKey(key)
		if prev, dup := seen[k]; dup && prev != owner {
			return fmt.Errorf("catalog: key %q claimed by both %q and %q", key, prev, owner)
		}
		seen[k] = owner
		return nil
	}

	for i := range templates {
		t := &templates[i]
		if t.ID == "" {
			return fmt.Errorf("catalog: template %d has empty ID", i)
		}
		if err := claim(t.ID, t.ID); err != nil {
			return err
		}
		for _, a := range t.Aliases {
			if err := claim(a, t.ID); err != nil {
				return err
			}
		}
		if len(t.ScaleFields()) == 0 {
			return fmt.Errorf("catalog: template %q declares no scale driver", t.ID)
		}
		if t.DefaultDurationHrs <= 0 {
			return fmt.Errorf("catalog: template %q has non-positive duration", t.ID)
		}

		fieldKeys := make(map[string]bool, len(t.Fields))
		for _, f := range t.Fields {
			if f.Key == "" {
				return fmt.Errorf("catalog: template %q has field with empty key", t.ID)
			}
			if fieldKeys[f.Key] {
				return fmt.Errorf("catalog: template %q declares field %q twice", t.ID, f.Key)
			}
			fieldKeys[f.Key] = true
			if f.Contributes() && f.Coefficient <= 0 {
				return fmt.Errorf("catalog: template %q field %q has non-positive coefficient", t.ID, f.Key)
			}
		}
	}
	return nil
}
