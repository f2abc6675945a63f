package realmd

import (
	"time"

	"github.com/realmkeeper/realmkeeper/pkg/imagestore"
	"github.com/realmkeeper/realmkeeper/pkg/notify"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
)

// NewMemoryDeps builds a self-contained set of dependencies: an empty migrated
// in-memory database, an in-process cache and image store, and a hub. The caller
// must run the hub. Nothing survives the process.
func NewMemoryDeps(cacheTTL time.Duration) (Deps, error) {
	db, err := rdb.OpenSqliteInMemory()
	if err != nil {
		return Deps{}, err
	}

	return Deps{
		Stors:       stor.NewGormStors(db),
		Invalidator: qcache.NewInvalidator(qcache.NewMemoryCache(cacheTTL)),
		Hub:         notify.NewHub(),
		Images:      imagestore.NewMemoryStore(),
	}, nil
}
