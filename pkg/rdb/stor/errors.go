package stor

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned (wrapped) when a looked up record doesn't exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidReference is returned (wrapped) when a record points at a world,
	// region, location or character that doesn't exist or lives in another world.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrConflict is returned (wrapped) when a unique column is already taken.
	ErrConflict = errors.New("already exists")
)

func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(ErrNotFound, format, args...)
	}

	return errors.Wrapf(err, format, args...)
}
