package stor

import (
	"testing"

	"github.com/realmkeeper/realmkeeper/pkg/rdb"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testCase struct {
	*testing.T
	db     *gorm.DB
	stors  *Stors
	user   *model.User
	world  *model.World
	region *model.Region
}

func newTestCase(t *testing.T) *testCase {
	db, err := rdb.OpenSqliteInMemory()
	require.NoErrorf(t, err, "Failed opening in-memory db: %s", err)

	tc := &testCase{T: t, db: db, stors: NewGormStors(db)}
	tc.populateDatabase()
	return tc
}

func (tc *testCase) populateDatabase() {
	var err error

	tc.user, err = tc.stors.UserStor.CreateUser(&model.User{Username: "dungeonmaster"}, "secret-password")
	require.NoErrorf(tc.T, err, "Failed creating user: %s", err)

	tc.world, err = tc.stors.WorldStor.CreateWorld(&model.World{
		Name:        "Eldoria",
		Description: "A land of floating isles",
		UserID:      tc.user.ID,
	})
	require.NoErrorf(tc.T, err, "Failed creating world: %s", err)

	tc.region, err = tc.stors.RegionStor.CreateRegion(&model.Region{
		Name:        "Misty Mountains",
		Description: "Peaks wrapped in fog",
		WorldID:     tc.world.ID,
	})
	require.NoErrorf(tc.T, err, "Failed creating region: %s", err)
}

func (tc *testCase) createWorld(name string) *model.World {
	w, err := tc.stors.WorldStor.CreateWorld(&model.World{Name: name, Description: "Another world entirely", UserID: tc.user.ID})
	require.NoErrorf(tc.T, err, "Failed creating world %s: %s", name, err)
	return w
}
