// Package present renders realm records for the terminal: cards for each
// entity type, the map marker list, the world summary and the loading and
// empty states shared by every list view.
package present

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type State int

const (
	StateLoading State = iota
	StateEmpty
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	default:
		return "populated"
	}
}

const LoadingText = "Loading…"

func StateOf[T any](loading bool, items []T) State {
	switch {
	case loading:
		return StateLoading
	case len(items) == 0:
		return StateEmpty
	default:
		return StatePopulated
	}
}

// RenderList renders items with card, or the loading text or emptyText when
// there is nothing to show.
func RenderList[T any](loading bool, items []T, emptyText string, card func(T) string) string {
	switch StateOf(loading, items) {
	case StateLoading:
		return faintStyle.Render(LoadingText)
	case StateEmpty:
		return faintStyle.Render(emptyText)
	}

	cards := make([]string, 0, len(items))
	for _, item := range items {
		cards = append(cards, card(item))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7B2D26"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C9A66B")).
			Padding(0, 1)
	badgeStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#F5E6C8"))
)

var badgeColors = map[string]lipgloss.Color{
	"common":      "#6B7280",
	"rare":        "#2563EB",
	"legendary":   "#D97706",
	"npc":         "#6B7280",
	"ally":        "#15803D",
	"villain":     "#B91C1C",
	"evocation":   "#DC2626",
	"abjuration":  "#2563EB",
	"necromancy":  "#4B5563",
	"illusion":    "#7C3AED",
	"divination":  "#0891B2",
	"conjuration": "#CA8A04",
	"enchantment": "#DB2777",
	"fire":        "#DC2626",
	"water":       "#2563EB",
	"earth":       "#92400E",
	"air":         "#0EA5E9",
	"standard":    "#7B2D26",
	"quest":       "#D97706",
	"danger":      "#B91C1C",
}

// badge renders text on a background chosen from its lowercased value.
func badge(text string) string {
	color, ok := badgeColors[strings.ToLower(text)]
	if !ok {
		color = "#7B2D26"
	}

	return badgeStyle.Background(color).Render(text)
}

func field(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func card(title string, lines ...string) string {
	body := make([]string, 0, len(lines)+1)
	body = append(body, titleStyle.Render(title))
	for _, line := range lines {
		if line != "" {
			body = append(body, line)
		}
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

func badges(values ...string) string {
	rendered := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			rendered = append(rendered, badge(v))
		}
	}

	return strings.Join(rendered, " ")
}
