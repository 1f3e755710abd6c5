package menu

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
)

// Query describes one browse request: free-text search, facet
// selections, and a sort key. An empty facet means "match all", not
// "match none" — an unchecked filter panel must not hide the catalog.
type Query struct {
	Search     string
	Categories []string
	Statuses   []string
	Dietary    []string
	Sort       string
}

// ValidSort reports whether s is one of the supported sort keys.
func ValidSort(s string) bool {
	switch s {
	case enum.SortNameAsc, enum.SortNameDesc, enum.SortPriceAsc,
		enum.SortPriceDesc, enum.SortDateNew, enum.SortDateOld:
		return true
	}
	return false
}

// Apply filters and sorts a catalog snapshot. Facets combine with AND,
// values within a facet with OR. The input slice is never mutated; the
// result is a new slice. Sorting is stable, so items that compare equal
// keep the snapshot's relative order.
func (q Query) Apply(catalog []Item) []Item {
	search := strings.ToLower(q.Search)

	result := make([]Item, 0, len(catalog))
	for _, it := range catalog {
		if !q.matches(it, search) {
			continue
		}
		result = append(result, it)
	}

	q.sortItems(result)
	return result
}

func (q Query) matches(it Item, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(it.Name), search) &&
		!strings.Contains(strings.ToLower(it.Description), search) {
		return false
	}

	if len(q.Categories) > 0 && !slices.Contains(q.Categories, it.Category) {
		return false
	}

	if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, it.Status) {
		return false
	}

	if len(q.Dietary) > 0 {
		ok := (slices.Contains(q.Dietary, enum.DietaryVegetarian) && it.IsVegetarian) ||
			(slices.Contains(q.Dietary, enum.DietaryVegan) && it.IsVegan)
		if !ok {
			return false
		}
	}

	return true
}

func (q Query) sortItems(items []Item) {
	switch q.Sort {
	case enum.SortNameAsc, enum.SortNameDesc:
		// Dish names are Russian; byte order would misplace Ё and
		// case-mixed names, so compare with the Russian collator.
		col := collate.New(language.Russian)
		desc := q.Sort == enum.SortNameDesc
		sort.SliceStable(items, func(i, j int) bool {
			c := col.CompareString(items[i].Name, items[j].Name)
			if desc {
				return c > 0
			}
			return c < 0
		})
	case enum.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.LessThan(items[j].Price)
		})
	case enum.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[j].Price.LessThan(items[i].Price)
		})
	case enum.SortDateNew:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	case enum.SortDateOld:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		})
	}
}
