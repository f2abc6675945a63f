package realmclient

import (
	"strings"

	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
)

// FilterAll is the selector value meaning "don't filter on this field".
const FilterAll = "all"

// Filter narrows a fetched list. Search is a case-insensitive substring matched
// against each record's text fields. Kind is an exact (case-insensitive) match on
// the record's category field: rarity for creatures, characterType for
// characters, school for spells, category for lore and type for regions.
type Filter struct {
	Search   string
	Kind     string
	RegionID int
}

func (f Filter) matchesText(fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	if needle == "" {
		return true
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

func (f Filter) matchesKind(kind string) bool {
	if f.Kind == "" || strings.EqualFold(f.Kind, FilterAll) {
		return true
	}

	return strings.EqualFold(f.Kind, kind)
}

func (f Filter) matchesRegion(regionID *int) bool {
	if f.RegionID == 0 {
		return true
	}

	return regionID != nil && *regionID == f.RegionID
}

func filter[T any](items []T, keep func(T) bool) []T {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			matched = append(matched, item)
		}
	}

	return matched
}

func FilterRegions(regions []model.Region, f Filter) []model.Region {
	return filter(regions, func(r model.Region) bool {
		return f.matchesText(r.Name, r.Description) && f.matchesKind(r.Type)
	})
}

func FilterLocations(locations []model.Location, f Filter) []model.Location {
	return filter(locations, func(l model.Location) bool {
		regionID := l.RegionID
		return f.matchesText(l.Name, l.Description, l.LocationType) &&
			f.matchesKind(l.LocationType) &&
			f.matchesRegion(&regionID)
	})
}

func FilterCharacters(characters []model.Character, f Filter) []model.Character {
	return filter(characters, func(c model.Character) bool {
		return f.matchesText(c.Name, c.Description) &&
			f.matchesKind(c.CharacterType) &&
			f.matchesRegion(c.RegionID)
	})
}

func FilterCreatures(creatures []model.Creature, f Filter) []model.Creature {
	return filter(creatures, func(c model.Creature) bool {
		return f.matchesText(c.Name, c.Description) &&
			f.matchesKind(c.Rarity) &&
			f.matchesRegion(c.RegionID)
	})
}

func FilterSpells(spells []model.Spell, f Filter) []model.Spell {
	return filter(spells, func(s model.Spell) bool {
		return f.matchesText(s.Name, s.Description) && f.matchesKind(s.School)
	})
}

func FilterLore(entries []model.LoreEntry, f Filter) []model.LoreEntry {
	return filter(entries, func(e model.LoreEntry) bool {
		return f.matchesText(e.Title, e.Content) && f.matchesKind(e.Category)
	})
}

// LoreCategories is the choice list for the lore category selector: FilterAll
// followed by each distinct category in the order first seen.
func LoreCategories(entries []model.LoreEntry) []string {
	categories := []string{FilterAll}
	seen := map[string]bool{}
	for _, e := range entries {
		if e.Category == "" || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		categories = append(categories, e.Category)
	}

	return categories
}
