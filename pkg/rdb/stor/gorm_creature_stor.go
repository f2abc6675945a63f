package stor

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"gorm.io/gorm"
)

type GormCreatureStor struct {
	db *gorm.DB
}

func NewGormCreatureStor(db *gorm.DB) *GormCreatureStor {
	return &GormCreatureStor{db: db}
}

func (s *GormCreatureStor) CreateCreature(creature *model.Creature) (*model.Creature, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := checkWorld(tx, creature.WorldID); err != nil {
			return err
		}

		if err := checkRegion(tx, creature.RegionID, creature.WorldID); err != nil {
			return err
		}

		creature.ID = 0
		return tx.Create(creature).Error
	})

	if err != nil {
		return nil, err
	}

	return creature, nil
}

func (s *GormCreatureStor) GetCreatureByID(creatureID int) (*model.Creature, error) {
	var creature model.Creature
	if err := s.db.First(&creature, creatureID).Error; err != nil {
		return nil, notFound(err, "creature %d", creatureID)
	}

	return &creature, nil
}

func (s *GormCreatureStor) ListCreaturesForWorld(worldID int) ([]model.Creature, error) {
	creatures := []model.Creature{}
	err := s.db.Where("world_id = ?", worldID).Order("id").Find(&creatures).Error
	return creatures, err
}
