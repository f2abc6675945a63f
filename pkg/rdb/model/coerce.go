package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NullInt is an optional integer that also accepts its decimal string form, which
// is how HTML form inputs submit numbers. null, "" and a missing key all mean unset.
type NullInt struct {
	Int   int
	Valid bool
}

func IntOf(v int) NullInt {
	return NullInt{Int: v, Valid: true}
}

func (n NullInt) Ptr() *int {
	if !n.Valid {
		return nil
	}

	v := n.Int
	return &v
}

func (n *NullInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = NullInt{}
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		s = strings.TrimSpace(s)
		if s == "" {
			*n = NullInt{}
			return nil
		}

		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%q is not a whole number", s)
		}

		*n = IntOf(v)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	if f != math.Trunc(f) {
		return fmt.Errorf("%v is not a whole number", f)
	}

	*n = IntOf(int(f))
	return nil
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return []byte(strconv.Itoa(n.Int)), nil
}

// Text is a string field that also accepts a JSON number, so a challenge rating of
// 5 and "5" decode the same way.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
		return nil

	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
		return nil

	default:
		var num json.Number
		if err := json.Unmarshal(b, &num); err != nil {
			return err
		}
		*t = Text(num.String())
		return nil
	}
}

// StringList accepts either a JSON array of strings or a single comma separated
// string ("Fireball, Bite"). Blank entries are dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*l = StringList{}
		return nil

	case len(b) > 0 && b[0] == '[':
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = cleanList(items)
		return nil

	default:
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = SplitList(s)
		return nil
	}
}

// SplitList splits comma separated form text into trimmed, non-blank entries.
func SplitList(s string) StringList {
	return cleanList(strings.Split(s, ","))
}

func cleanList(items []string) StringList {
	list := StringList{}
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}

	return list
}

// AbilityInput decodes creature ability scores from a JSON object, or from form
// text handled by ParseAbilityScores.
type AbilityInput AbilityScores

func (a *AbilityInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*a = AbilityInput{}
		return nil

	case len(b) > 0 && b[0] == '{':
		*a = AbilityInput(ParseAbilityScores(string(b)))
		return nil

	default:
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AbilityInput(ParseAbilityScores(s))
		return nil
	}
}
