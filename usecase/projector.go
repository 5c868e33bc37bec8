package usecase

import (
	"sort"
	"strings"

	"registro/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortMode string

const (
	SortNewest SortMode = "newest"
	SortOldest SortMode = "oldest"
	SortTitle  SortMode = "title"
)

// ProjectionOptions are the user inputs a list view depends on.
type ProjectionOptions struct {
	Search   string
	Category string
	Sort     SortMode
}

// Project derives the displayable sequence from a collection: category
// filter and search filter ANDed together, then the chosen sort. It is pure
// and never mutates its input; ties keep the collection's original order.
// An empty result is a valid projection, not an error.
func Project[T model.Record[T]](records []T, opts ProjectionOptions) []T {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if opts.Category != "" && record.CategoryKey() != opts.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(record.SearchableText()), search) {
			continue
		}
		filtered = append(filtered, record)
	}

	switch opts.Sort {
	case SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].SortTime().Before(filtered[j].SortTime())
		})
	case SortTitle:
		// Locale-aware, case-insensitive, like the browser's
		// localeCompare with sensitivity "base".
		collator := collate.New(language.BrazilianPortuguese, collate.IgnoreCase, collate.IgnoreDiacritics)
		sort.SliceStable(filtered, func(i, j int) bool {
			return collator.CompareString(filtered[i].SortTitle(), filtered[j].SortTitle()) < 0
		})
	default:
		// Unknown or absent sort mode falls back to newest-first.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[j].SortTime().Before(filtered[i].SortTime())
		})
	}

	return filtered
}

// Categories lists the distinct non-blank category keys of a collection,
// sorted, for the filter dropdown.
func Categories[T model.Record[T]](records []T) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, record := range records {
		category := strings.TrimSpace(record.CategoryKey())
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
