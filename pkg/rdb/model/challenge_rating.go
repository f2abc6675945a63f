package model

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// xpByChallengeRating is the experience awarded for defeating a creature of a given
// challenge rating. Ratings not in the table have no known value.
var xpByChallengeRating = map[string]int{
	"0":   10,
	"1/8": 25,
	"1/4": 50,
	"1/2": 100,
	"1":   200,
	"2":   450,
	"3":   700,
	"4":   1100,
	"5":   1800,
	"6":   2300,
	"8":   3900,
	"9":   5000,
	"10":  5900,
	"12":  8400,
	"15":  13000,
	"20":  25000,
	"24":  62000,
	"30":  155000,
}

const UnknownXP = "Unknown"

var xpPrinter = message.NewPrinter(language.English)

// XPForChallengeRating returns the XP for cr with thousands separators ("1,800"),
// or "Unknown" when cr is empty or not in the table.
func XPForChallengeRating(cr string) string {
	xp, ok := xpByChallengeRating[cr]
	if !ok {
		return UnknownXP
	}

	return xpPrinter.Sprintf("%d", xp)
}
