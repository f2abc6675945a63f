package model

type Spell struct {
	ID                 int    `json:"id"`
	Name               string `json:"name" gorm:"not null"`
	WorldID            int    `json:"worldId" gorm:"not null;index"`
	Level              *int   `json:"level"`
	School             string `json:"school"`
	CastingTime        string `json:"castingTime"`
	Range              string `json:"range"`
	Components         string `json:"components"`
	Duration           string `json:"duration"`
	Description        string `json:"description"`
	ImageURL           string `json:"imageUrl"`
	CreatorCharacterID *int   `json:"creatorCharacterId"`
}

func (Spell) TableName() string {
	return "spells"
}
