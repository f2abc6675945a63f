package stor

import (
	"github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type GormUserStor struct {
	db *gorm.DB
}

func NewGormUserStor(db *gorm.DB) *GormUserStor {
	return &GormUserStor{db: db}
}

// CreateUser hashes password, assigns a UUID and a fresh API token, and saves the
// user. The token is only readable from the returned value.
func (s *GormUserStor) CreateUser(user *model.User, password string) (*model.User, error) {
	var err error

	if user.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if user.APIToken, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hashing password")
	}
	user.Password = string(hash)

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}

		if count != 0 {
			return errors.Wrapf(ErrConflict, "username %q", user.Username)
		}

		err := tx.Create(user).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Wrapf(ErrConflict, "username %q", user.Username)
		}
		return err
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *GormUserStor) GetUserByID(userID int) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, notFound(err, "user %d", userID)
	}

	return &user, nil
}

func (s *GormUserStor) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err, "user %q", username)
	}

	return &user, nil
}

func (s *GormUserStor) GetUserByAPIToken(apiToken string) (*model.User, error) {
	var user model.User
	if apiToken == "" {
		return nil, errors.Wrap(ErrNotFound, "empty api token")
	}

	if err := s.db.Where("api_token = ?", apiToken).First(&user).Error; err != nil {
		return nil, notFound(err, "api token")
	}

	return &user, nil
}

// CheckPassword returns the user when password matches. A wrong password and an
// unknown username both come back as ErrNotFound.
func (s *GormUserStor) CheckPassword(username, password string) (*model.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.Wrapf(ErrNotFound, "user %q", username)
	}

	return user, nil
}
