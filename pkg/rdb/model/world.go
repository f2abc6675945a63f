package model

import "time"

// World is the top level campaign container. Every other record hangs off a world,
// either directly or (for locations) through a region.
type World struct {
	ID          int       `json:"id"`
	UUID        string    `json:"uuid"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:191"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	UserID      int       `json:"userId" gorm:"not null;index"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (World) TableName() string {
	return "worlds"
}
