// Package listview implements the list lifecycle shared by every admin list
// page: load with last-issued-wins semantics, in-memory filtering, local
// patching after mutations, and the transient notification banner.
package listview

import "strings"

// Criteria is one filter request: a free-text search term plus exact-match
// categorical filters keyed by category name. Empty values select everything.
type Criteria struct {
	Search     string
	Categories map[string]string
}

// Empty reports whether the criteria select the whole collection.
func (c Criteria) Empty() bool {
	if c.Search != "" {
		return false
	}
	for _, v := range c.Categories {
		if v != "" {
			return false
		}
	}
	return true
}

// FilterSpec describes how one entity type is matched. SearchFields returns
// the values the search term is substring-matched against; Categories maps a
// category name to the extractor its filter value is compared with.
type FilterSpec[T any] struct {
	SearchFields func(T) []string
	Categories   map[string]func(T) string
}

// Apply returns the items matching the criteria, preserving relative order.
// The search term matches case-insensitively as a substring of any search
// field; every non-empty categorical filter must match exactly.
func (s FilterSpec[T]) Apply(items []T, c Criteria) []T {
	if c.Empty() {
		return items
	}

	term := strings.ToLower(c.Search)
	out := make([]T, 0, len(items))

	for _, item := range items {
		if term != "" && !s.matchesSearch(item, term) {
			continue
		}
		if !s.matchesCategories(item, c.Categories) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (s FilterSpec[T]) matchesSearch(item T, term string) bool {
	if s.SearchFields == nil {
		return true
	}
	for _, field := range s.SearchFields(item) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (s FilterSpec[T]) matchesCategories(item T, categories map[string]string) bool {
	for name, want := range categories {
		if want == "" {
			continue
		}
		extract, ok := s.Categories[name]
		if !ok {
			return false
		}
		if extract(item) != want {
			return false
		}
	}
	return true
}
