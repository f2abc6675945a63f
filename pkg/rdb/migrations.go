package rdb

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"gorm.io/gorm"
)

// RunMigrations creates or updates every realmkeeper table.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.World{},
		&model.Region{},
		&model.Location{},
		&model.Character{},
		&model.Creature{},
		&model.Spell{},
		&model.LoreEntry{},
	)
}
