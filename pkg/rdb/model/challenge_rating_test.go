package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPForChallengeRating(t *testing.T) {
	tests := []struct {
		cr   string
		want string
	}{
		{cr: "5", want: "1,800"},
		{cr: "1/4", want: "50"},
		{cr: "0", want: "10"},
		{cr: "30", want: "155,000"},
		{cr: "100", want: "Unknown"},
		{cr: "7", want: "Unknown"},
		{cr: "", want: "Unknown"},
	}

	for _, test := range tests {
		t.Run("CR "+test.cr, func(t *testing.T) {
			assert.Equal(t, test.want, XPForChallengeRating(test.cr))
		})
	}

	assert.Equal(t, "5,900", Creature{ChallengeRating: "10"}.XP())
}
