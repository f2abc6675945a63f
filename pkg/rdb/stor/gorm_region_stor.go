package stor

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"gorm.io/gorm"
)

type GormRegionStor struct {
	db *gorm.DB
}

func NewGormRegionStor(db *gorm.DB) *GormRegionStor {
	return &GormRegionStor{db: db}
}

func (s *GormRegionStor) CreateRegion(region *model.Region) (*model.Region, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := checkWorld(tx, region.WorldID); err != nil {
			return err
		}

		region.ID = 0
		return tx.Create(region).Error
	})

	if err != nil {
		return nil, err
	}

	return region, nil
}

func (s *GormRegionStor) GetRegionByID(regionID int) (*model.Region, error) {
	var region model.Region
	if err := s.db.First(&region, regionID).Error; err != nil {
		return nil, notFound(err, "region %d", regionID)
	}

	return &region, nil
}

func (s *GormRegionStor) ListRegionsForWorld(worldID int) ([]model.Region, error) {
	regions := []model.Region{}
	err := s.db.Where("world_id = ?", worldID).Order("id").Find(&regions).Error
	return regions, err
}
