package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AbilityTemplate is the fixed ability score order used when displaying creatures.
var AbilityTemplate = []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

// AbilityScores maps an ability name (normally one of AbilityTemplate) to its score.
// Keys outside the template are kept but not displayed.
type AbilityScores map[string]int

type AbilityScore struct {
	Name  string
	Score string
}

// Row lays the scores out against AbilityTemplate. Missing or zero scores show as "-".
func (a AbilityScores) Row() []AbilityScore {
	row := make([]AbilityScore, 0, len(AbilityTemplate))
	for _, name := range AbilityTemplate {
		score := "-"
		if v, ok := a[name]; ok && v != 0 {
			score = strconv.Itoa(v)
		}
		row = append(row, AbilityScore{Name: name, Score: score})
	}

	return row
}

// ParseAbilityScores reads scores from form text. The text is either a JSON object
// ({"STR": 10}) or comma separated pairs ("STR:10, DEX:12"). Pairs whose score isn't
// a number are dropped.
func ParseAbilityScores(text string) AbilityScores {
	scores := AbilityScores{}
	text = strings.TrimSpace(text)
	if text == "" {
		return scores
	}

	var raw map[string]json.Number
	if err := json.Unmarshal([]byte(text), &raw); err == nil {
		for k, v := range raw {
			if n, err := strconv.Atoi(v.String()); err == nil {
				scores[k] = n
			}
		}
		return scores
	}

	for _, pair := range strings.Split(text, ",") {
		key, value, found := strings.Cut(pair, ":")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		scores[key] = n
	}

	return scores
}
