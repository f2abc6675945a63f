package present

import (
	"fmt"
	"strings"

	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
)

// DefaultMapPosition is used for either coordinate of a location that hasn't
// been placed on the map.
const DefaultMapPosition = 50

type Marker struct {
	LocationID int
	Name       string
	Kind       string
	X, Y       int
	Region     string
}

func MarkerFor(l model.Location, regions Names) Marker {
	kind := strings.ToLower(l.MarkerType)
	switch kind {
	case model.MarkerQuest, model.MarkerDanger:
	default:
		kind = model.MarkerStandard
	}

	return Marker{
		LocationID: l.ID,
		Name:       l.Name,
		Kind:       kind,
		X:          positionOr(l.X),
		Y:          positionOr(l.Y),
		Region:     MapRegion(l, regions),
	}
}

func Markers(locations []model.Location, regions Names) []Marker {
	markers := make([]Marker, 0, len(locations))
	for _, l := range locations {
		markers = append(markers, MarkerFor(l, regions))
	}
	return markers
}

func positionOr(p *int) int {
	if p == nil {
		return DefaultMapPosition
	}
	return *p
}

func MarkerLine(m Marker) string {
	return fmt.Sprintf("%s %s (%d, %d) %s",
		badge(m.Kind), titleStyle.Render(m.Name), m.X, m.Y, faintStyle.Render(m.Region))
}

func RenderMap(loading bool, locations []model.Location, regions Names) string {
	return RenderList(loading, Markers(locations, regions), "No locations have been placed in this world yet.", MarkerLine)
}
