package model

import "gorm.io/datatypes"

const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityLegendary = "legendary"
)

// Creature is a bestiary entry. ChallengeRating and HitPoints are kept as text
// because game masters write values such as "1/4" and "45 (6d10+12)".
type Creature struct {
	ID              int                               `json:"id"`
	Name            string                            `json:"name" gorm:"not null"`
	WorldID         int                               `json:"worldId" gorm:"not null;index"`
	RegionID        *int                              `json:"regionId"`
	ImageURL        string                            `json:"imageUrl"`
	Description     string                            `json:"description"`
	CreatureType    string                            `json:"creatureType"`
	Rarity          string                            `json:"rarity"`
	ChallengeRating string                            `json:"challengeRating"`
	ArmorClass      *int                              `json:"armorClass"`
	HitPoints       string                            `json:"hitPoints"`
	Speed           string                            `json:"speed"`
	Abilities       datatypes.JSONType[AbilityScores] `json:"abilities"`
	SpecialAttacks  datatypes.JSONSlice[string]       `json:"specialAttacks"`
	ElementType     string                            `json:"elementType"`
}

func (Creature) TableName() string {
	return "creatures"
}

// XP is the experience value for the creature's challenge rating.
func (c Creature) XP() string {
	return XPForChallengeRating(c.ChallengeRating)
}
