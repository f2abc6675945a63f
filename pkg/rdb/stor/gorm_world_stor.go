package stor

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-uuid"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"gorm.io/gorm"
)

type GormWorldStor struct {
	db *gorm.DB
}

func NewGormWorldStor(db *gorm.DB) *GormWorldStor {
	return &GormWorldStor{db: db}
}

// CreateWorld assigns the world a UUID and a unique slug derived from its name. When
// the slug is taken an incrementing suffix is added ("eldoria", "eldoria-1", ...).
func (s *GormWorldStor) CreateWorld(world *model.World) (*model.World, error) {
	var err error

	if world.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	slugOfName := slug.Make(world.Name)
	if slugOfName == "" {
		slugOfName = world.UUID
	}

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		world.ID = 0
		world.Slug = slugOfName
		for slugNext := 1; ; slugNext++ {
			var count int64
			if err := tx.Model(&model.World{}).Where("slug = ?", world.Slug).Count(&count).Error; err != nil {
				return err
			}

			if count == 0 {
				break
			}

			world.Slug = fmt.Sprintf("%s-%d", slugOfName, slugNext)
		}

		return tx.Create(world).Error
	})

	if err != nil {
		return nil, err
	}

	return world, nil
}

func (s *GormWorldStor) GetWorldByID(worldID int) (*model.World, error) {
	var world model.World
	if err := s.db.First(&world, worldID).Error; err != nil {
		return nil, notFound(err, "world %d", worldID)
	}

	return &world, nil
}

func (s *GormWorldStor) GetWorldBySlug(worldSlug string) (*model.World, error) {
	var world model.World
	if err := s.db.Where("slug = ?", worldSlug).First(&world).Error; err != nil {
		return nil, notFound(err, "world %q", worldSlug)
	}

	return &world, nil
}

func (s *GormWorldStor) ListWorlds() ([]model.World, error) {
	worlds := []model.World{}
	err := s.db.Order("id").Find(&worlds).Error
	return worlds, err
}

func (s *GormWorldStor) ListWorldsForUser(userID int) ([]model.World, error) {
	worlds := []model.World{}
	err := s.db.Where("user_id = ?", userID).Order("id").Find(&worlds).Error
	return worlds, err
}
