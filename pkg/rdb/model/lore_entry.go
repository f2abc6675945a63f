package model

type LoreEntry struct {
	ID       int    `json:"id"`
	Title    string `json:"title" gorm:"not null"`
	WorldID  int    `json:"worldId" gorm:"not null;index"`
	Content  string `json:"content"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl"`
}

func (LoreEntry) TableName() string {
	return "lore_entries"
}
