package stor

import (
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/config"
	"gorm.io/gorm"
)

// WithTxRetry runs fn in a transaction, retrying on failure. Failures caused by the
// request itself (missing or foreign references, duplicate keys) are returned
// immediately since retrying can't change the outcome.
func WithTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error

	retryCount := config.GetTxRetry()

	for i := 0; i < retryCount; i++ {
		err = db.Transaction(fn)
		if err == nil || isPermanent(err) {
			break
		}
	}

	return err
}

func isPermanent(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrConflict)
}
