package stor

import (
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"gorm.io/gorm"
)

type GormLocationStor struct {
	db *gorm.DB
}

func NewGormLocationStor(db *gorm.DB) *GormLocationStor {
	return &GormLocationStor{db: db}
}

// CreateLocation requires the location's region to exist; the world is reached
// through that region.
func (s *GormLocationStor) CreateLocation(location *model.Location) (*model.Location, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Region{}).Where("id = ?", location.RegionID).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return errors.Wrapf(ErrInvalidReference, "region %d does not exist", location.RegionID)
		}

		location.ID = 0
		return tx.Create(location).Error
	})

	if err != nil {
		return nil, err
	}

	return location, nil
}

func (s *GormLocationStor) GetLocationByID(locationID int) (*model.Location, error) {
	var location model.Location
	if err := s.db.First(&location, locationID).Error; err != nil {
		return nil, notFound(err, "location %d", locationID)
	}

	return &location, nil
}

func (s *GormLocationStor) ListLocationsForWorld(worldID int) ([]model.Location, error) {
	locations := []model.Location{}
	err := s.db.
		Select("locations.*").
		Joins("JOIN regions ON regions.id = locations.region_id").
		Where("regions.world_id = ?", worldID).
		Order("locations.id").
		Find(&locations).Error
	return locations, err
}

func (s *GormLocationStor) ListLocationsForRegion(regionID int) ([]model.Location, error) {
	locations := []model.Location{}
	err := s.db.Where("region_id = ?", regionID).Order("id").Find(&locations).Error
	return locations, err
}
