package stor

import (
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"gorm.io/gorm"
)

type GormLoreEntryStor struct {
	db *gorm.DB
}

func NewGormLoreEntryStor(db *gorm.DB) *GormLoreEntryStor {
	return &GormLoreEntryStor{db: db}
}

func (s *GormLoreEntryStor) CreateLoreEntry(entry *model.LoreEntry) (*model.LoreEntry, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := checkWorld(tx, entry.WorldID); err != nil {
			return err
		}

		entry.ID = 0
		return tx.Create(entry).Error
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *GormLoreEntryStor) GetLoreEntryByID(entryID int) (*model.LoreEntry, error) {
	var entry model.LoreEntry
	if err := s.db.First(&entry, entryID).Error; err != nil {
		return nil, notFound(err, "lore entry %d", entryID)
	}

	return &entry, nil
}

func (s *GormLoreEntryStor) ListLoreEntriesForWorld(worldID int) ([]model.LoreEntry, error) {
	entries := []model.LoreEntry{}
	err := s.db.Where("world_id = ?", worldID).Order("id").Find(&entries).Error
	return entries, err
}

// UpdateLoreEntry replaces every editable column of the entry with the values in
// updates, including blanking ones that are empty. An entry may not move to a
// different world.
func (s *GormLoreEntryStor) UpdateLoreEntry(entryID int, updates *model.LoreEntry) (*model.LoreEntry, error) {
	var entry model.LoreEntry

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := tx.First(&entry, entryID).Error; err != nil {
			return notFound(err, "lore entry %d", entryID)
		}

		if updates.WorldID != 0 && updates.WorldID != entry.WorldID {
			return errors.Wrapf(ErrInvalidReference, "lore entry %d belongs to world %d", entryID, entry.WorldID)
		}

		err := tx.Model(&entry).Select("title", "content", "category", "image_url").Updates(model.LoreEntry{
			Title:    updates.Title,
			Content:  updates.Content,
			Category: updates.Category,
			ImageURL: updates.ImageURL,
		}).Error
		if err != nil {
			return err
		}

		return tx.First(&entry, entryID).Error
	})

	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// DeleteLoreEntry removes the entry and returns it as it was, so callers know which
// world's lore list changed.
func (s *GormLoreEntryStor) DeleteLoreEntry(entryID int) (*model.LoreEntry, error) {
	var entry model.LoreEntry

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := tx.First(&entry, entryID).Error; err != nil {
			return notFound(err, "lore entry %d", entryID)
		}

		return tx.Delete(&model.LoreEntry{}, entryID).Error
	})

	if err != nil {
		return nil, err
	}

	return &entry, nil
}
