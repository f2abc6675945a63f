package model

import "time"

type User struct {
	ID        int       `json:"id"`
	UUID      string    `json:"uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:191;not null"`
	Password  string    `json:"-"`
	APIToken  string    `json:"-" gorm:"index;size:191"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
