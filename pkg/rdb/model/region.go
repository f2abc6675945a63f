package model

type Region struct {
	ID          int    `json:"id"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	WorldID     int    `json:"worldId" gorm:"not null;index"`
	ImageURL    string `json:"imageUrl"`
	Type        string `json:"type"`
}

func (Region) TableName() string {
	return "regions"
}
