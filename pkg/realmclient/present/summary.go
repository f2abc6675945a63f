package present

import (
	"strconv"
	"strings"

	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
)

const (
	summaryRegionCount = 3
	// FactionsCategory is the lore category listed in the world summary.
	FactionsCategory = "Factions & Organizations"
)

type WorldSummary struct {
	World     model.World
	Regions   []string
	Factions  []string
	LoreCount int
}

// Summarize builds the overview shown for the selected world: its first few
// regions, its first few factions and how much lore it has.
func Summarize(w model.World, regions []model.Region, lore []model.LoreEntry) WorldSummary {
	s := WorldSummary{World: w, LoreCount: len(lore)}
	for _, r := range regions {
		if len(s.Regions) == summaryRegionCount {
			break
		}
		s.Regions = append(s.Regions, r.Name)
	}

	for _, e := range lore {
		if len(s.Factions) == summaryRegionCount {
			break
		}
		if e.Category == FactionsCategory {
			s.Factions = append(s.Factions, e.Title)
		}
	}

	return s
}

func (s WorldSummary) Render() string {
	regions := "No regions yet"
	if len(s.Regions) > 0 {
		regions = strings.Join(s.Regions, ", ")
	}

	lines := []string{
		s.World.Description,
		field("Regions", regions),
	}
	if len(s.Factions) > 0 {
		lines = append(lines, field("Factions", strings.Join(s.Factions, ", ")))
	}
	lines = append(lines, field("Lore entries", strconv.Itoa(s.LoreCount)))

	return card(s.World.Name, lines...)
}
