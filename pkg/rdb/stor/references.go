package stor

import (
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"gorm.io/gorm"
)

// The check* helpers enforce the cross-table invariants: a record's world must
// exist, and any optional region/location/character it names must live in that
// same world.

func checkWorld(tx *gorm.DB, worldID int) error {
	var count int64
	if err := tx.Model(&model.World{}).Where("id = ?", worldID).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errors.Wrapf(ErrInvalidReference, "world %d does not exist", worldID)
	}

	return nil
}

func checkRegion(tx *gorm.DB, regionID *int, worldID int) error {
	if regionID == nil {
		return nil
	}

	var count int64
	err := tx.Model(&model.Region{}).
		Where("id = ?", *regionID).
		Where("world_id = ?", worldID).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errors.Wrapf(ErrInvalidReference, "region %d is not part of world %d", *regionID, worldID)
	}

	return nil
}

func checkLocation(tx *gorm.DB, locationID *int, worldID int) error {
	if locationID == nil {
		return nil
	}

	var count int64
	err := tx.Model(&model.Location{}).
		Joins("JOIN regions ON regions.id = locations.region_id").
		Where("locations.id = ?", *locationID).
		Where("regions.world_id = ?", worldID).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errors.Wrapf(ErrInvalidReference, "location %d is not part of world %d", *locationID, worldID)
	}

	return nil
}

func checkCharacter(tx *gorm.DB, characterID *int, worldID int) error {
	if characterID == nil {
		return nil
	}

	var count int64
	err := tx.Model(&model.Character{}).
		Where("id = ?", *characterID).
		Where("world_id = ?", worldID).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errors.Wrapf(ErrInvalidReference, "character %d is not part of world %d", *characterID, worldID)
	}

	return nil
}
