package stor

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"gorm.io/gorm"
)

type GormCharacterStor struct {
	db *gorm.DB
}

func NewGormCharacterStor(db *gorm.DB) *GormCharacterStor {
	return &GormCharacterStor{db: db}
}

func (s *GormCharacterStor) CreateCharacter(character *model.Character) (*model.Character, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := checkWorld(tx, character.WorldID); err != nil {
			return err
		}

		if err := checkRegion(tx, character.RegionID, character.WorldID); err != nil {
			return err
		}

		if err := checkLocation(tx, character.LocationID, character.WorldID); err != nil {
			return err
		}

		character.ID = 0
		return tx.Create(character).Error
	})

	if err != nil {
		return nil, err
	}

	return character, nil
}

func (s *GormCharacterStor) GetCharacterByID(characterID int) (*model.Character, error) {
	var character model.Character
	if err := s.db.First(&character, characterID).Error; err != nil {
		return nil, notFound(err, "character %d", characterID)
	}

	return &character, nil
}

func (s *GormCharacterStor) ListCharactersForWorld(worldID int) ([]model.Character, error) {
	characters := []model.Character{}
	err := s.db.Where("world_id = ?", worldID).Order("id").Find(&characters).Error
	return characters, err
}
