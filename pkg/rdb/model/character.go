package model

import "gorm.io/datatypes"

const (
	CharacterNPC     = "npc"
	CharacterAlly    = "ally"
	CharacterVillain = "villain"
)

var CharacterTypes = []string{CharacterNPC, CharacterAlly, CharacterVillain}

type Character struct {
	ID            int                         `json:"id"`
	Name          string                      `json:"name" gorm:"not null"`
	WorldID       int                         `json:"worldId" gorm:"not null;index"`
	RegionID      *int                        `json:"regionId"`
	LocationID    *int                        `json:"locationId"`
	Description   string                      `json:"description"`
	Appearance    string                      `json:"appearance"`
	Personality   string                      `json:"personality"`
	Abilities     datatypes.JSONSlice[string] `json:"abilities"`
	ImageURL      string                      `json:"imageUrl"`
	Race          string                      `json:"race"`
	CharacterType string                      `json:"characterType"`
}

func (Character) TableName() string {
	return "characters"
}
