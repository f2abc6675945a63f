package present

import (
	"strconv"

	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
)

const (
	UnknownLabel         = "Unknown"
	VariousRegionsLabel  = "Various"
	UnknownRegionLabel   = "Unknown Region"
	UnknownWizardLabel   = "Unknown wizard"
	UnknownSpellLevel    = "?"
	UnknownSpellSchool   = UnknownLabel
	UnknownCharacterRace = UnknownLabel
)

// Names maps record ids to display names so cards can show what an optional
// reference points at.
type Names map[int]string

func RegionNames(regions []model.Region) Names {
	names := make(Names, len(regions))
	for _, r := range regions {
		names[r.ID] = r.Name
	}
	return names
}

func LocationNames(locations []model.Location) Names {
	names := make(Names, len(locations))
	for _, l := range locations {
		names[l.ID] = l.Name
	}
	return names
}

func CharacterNames(characters []model.Character) Names {
	names := make(Names, len(characters))
	for _, c := range characters {
		names[c.ID] = c.Name
	}
	return names
}

// Label is the name for id, or fallback when id is unset or unknown.
func (n Names) Label(id *int, fallback string) string {
	if id == nil {
		return fallback
	}

	if name, ok := n[*id]; ok && name != "" {
		return name
	}

	return fallback
}

func CreatureRegion(c model.Creature, regions Names) string {
	return regions.Label(c.RegionID, VariousRegionsLabel)
}

func CharacterRegion(c model.Character, regions Names) string {
	return regions.Label(c.RegionID, UnknownLabel)
}

func CharacterRace(c model.Character) string {
	return orDefault(c.Race, UnknownCharacterRace)
}

func LocationRegion(l model.Location, regions Names) string {
	regionID := l.RegionID
	return regions.Label(&regionID, UnknownRegionLabel)
}

func MapRegion(l model.Location, regions Names) string {
	regionID := l.RegionID
	return regions.Label(&regionID, UnknownLabel)
}

// SpellCreator is the creator's name. ok is false when the spell names no
// creator, in which case there is nothing to show.
func SpellCreator(s model.Spell, characters Names) (name string, ok bool) {
	if s.CreatorCharacterID == nil {
		return "", false
	}

	return characters.Label(s.CreatorCharacterID, UnknownWizardLabel), true
}

func SpellSchool(s model.Spell) string {
	return orDefault(s.School, UnknownSpellSchool)
}

func SpellLevel(s model.Spell) string {
	if s.Level == nil {
		return UnknownSpellLevel
	}
	return strconv.Itoa(*s.Level)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
