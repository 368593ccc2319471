package game

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"horsemanager/internal/domain"
)

// Match is one search hit. Distance 0 means the query is a substring of the
// name.
type Match struct {
	Item     domain.Item
	Catalog  domain.CatalogKind
	Distance int
}

// FindByName searches every catalog for items whose name contains the query
// or is within a small edit distance of it, word by word. Results are
// ordered best first, then by name.
func (s *State) FindByName(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	limit := distanceLimit(utf8.RuneCountInString(q))

	var matches []Match
	for _, kind := range s.kinds() {
		for _, item := range s.catalogs[kind].items {
			if d, ok := nameDistance(strings.ToLower(item.DisplayName()), q, limit); ok {
				matches = append(matches, Match{Item: item, Catalog: kind, Distance: d})
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Item.DisplayName() < matches[j].Item.DisplayName()
	})
	return matches
}

func nameDistance(name, q string, limit int) (int, bool) {
	if strings.Contains(name, q) {
		return 0, true
	}
	best := levenshtein.ComputeDistance(name, q)
	for _, word := range strings.Fields(name) {
		if d := levenshtein.ComputeDistance(word, q); d < best {
			best = d
		}
	}
	return best, best <= limit
}

func distanceLimit(length int) int {
	switch {
	case length <= 2:
		return 0
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
