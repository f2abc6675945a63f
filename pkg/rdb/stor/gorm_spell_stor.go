package stor

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"gorm.io/gorm"
)

type GormSpellStor struct {
	db *gorm.DB
}

func NewGormSpellStor(db *gorm.DB) *GormSpellStor {
	return &GormSpellStor{db: db}
}

func (s *GormSpellStor) CreateSpell(spell *model.Spell) (*model.Spell, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := checkWorld(tx, spell.WorldID); err != nil {
			return err
		}

		if err := checkCharacter(tx, spell.CreatorCharacterID, spell.WorldID); err != nil {
			return err
		}

		spell.ID = 0
		return tx.Create(spell).Error
	})

	if err != nil {
		return nil, err
	}

	return spell, nil
}

func (s *GormSpellStor) GetSpellByID(spellID int) (*model.Spell, error) {
	var spell model.Spell
	if err := s.db.First(&spell, spellID).Error; err != nil {
		return nil, notFound(err, "spell %d", spellID)
	}

	return &spell, nil
}

func (s *GormSpellStor) ListSpellsForWorld(worldID int) ([]model.Spell, error) {
	spells := []model.Spell{}
	err := s.db.Where("world_id = ?", worldID).Order("id").Find(&spells).Error
	return spells, err
}
