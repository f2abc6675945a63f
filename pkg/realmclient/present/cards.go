package present

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
)

func WorldCard(w model.World) string {
	return card(w.Name,
		faintStyle.Render(w.Slug),
		w.Description,
	)
}

func RegionCard(r model.Region) string {
	return card(r.Name,
		badges(r.Type),
		r.Description,
	)
}

func LocationCard(l model.Location, regions Names) string {
	return card(l.Name,
		badges(orDefault(l.LocationType, UnknownLabel), l.MarkerType),
		field("Region", LocationRegion(l, regions)),
		l.Description,
	)
}

func CharacterCard(c model.Character, regions, locations Names) string {
	lines := []string{
		badges(c.CharacterType),
		field("Race", CharacterRace(c)),
		field("Region", CharacterRegion(c, regions)),
	}

	if c.LocationID != nil {
		lines = append(lines, field("Location", locations.Label(c.LocationID, UnknownLabel)))
	}

	lines = append(lines, c.Description)
	if c.Appearance != "" {
		lines = append(lines, field("Appearance", c.Appearance))
	}
	if c.Personality != "" {
		lines = append(lines, field("Personality", c.Personality))
	}
	if len(c.Abilities) > 0 {
		lines = append(lines, field("Abilities", strings.Join(c.Abilities, ", ")))
	}

	return card(c.Name, lines...)
}

func CreatureCard(c model.Creature, regions Names) string {
	lines := []string{
		badges(c.Rarity, c.CreatureType, c.ElementType),
		field("Region", CreatureRegion(c, regions)),
		field("CR", fmt.Sprintf("%s (%s XP)", orDefault(c.ChallengeRating, UnknownLabel), c.XP())),
	}

	if c.ArmorClass != nil {
		lines = append(lines, field("AC", strconv.Itoa(*c.ArmorClass)))
	}
	if c.HitPoints != "" {
		lines = append(lines, field("HP", c.HitPoints))
	}
	if c.Speed != "" {
		lines = append(lines, field("Speed", c.Speed))
	}

	lines = append(lines, AbilityRow(c.Abilities.Data()), c.Description)
	if len(c.SpecialAttacks) > 0 {
		lines = append(lines, field("Special attacks", strings.Join(c.SpecialAttacks, ", ")))
	}

	return card(c.Name, lines...)
}

// AbilityRow is the one-line ability block, e.g. "STR 18 | DEX - | ...".
func AbilityRow(scores model.AbilityScores) string {
	row := scores.Row()
	cells := make([]string, 0, len(row))
	for _, a := range row {
		cells = append(cells, labelStyle.Render(a.Name)+" "+a.Score)
	}

	return strings.Join(cells, " | ")
}

func SpellCard(s model.Spell, characters Names) string {
	lines := []string{
		badges(SpellSchool(s)) + " " + field("Level", SpellLevel(s)),
	}

	for _, f := range []struct{ label, value string }{
		{"Casting time", s.CastingTime},
		{"Range", s.Range},
		{"Components", s.Components},
		{"Duration", s.Duration},
	} {
		if f.value != "" {
			lines = append(lines, field(f.label, f.value))
		}
	}

	lines = append(lines, s.Description)
	if creator, ok := SpellCreator(s, characters); ok {
		lines = append(lines, field("Created by", creator))
	}

	return card(s.Name, lines...)
}

func LoreCard(e model.LoreEntry) string {
	return card(e.Title,
		badges(e.Category),
		e.Content,
	)
}
