package realmclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/notify"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/realmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	srv      *httptest.Server
	client   *Client
	hub      *notify.Hub
	stopHub  context.CancelFunc
	requests atomic.Int32
	// gate, when set, blocks GET requests until it is closed.
	gate chan struct{}
	mu   sync.Mutex
}

func newTestEnv(t *testing.T) *testEnv {
	deps, err := realmd.NewMemoryDeps(time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go deps.Hub.Run(ctx)

	e := echo.New()
	require.NoError(t, realmd.NewServer(e, deps).Init())

	env := &testEnv{hub: deps.Hub, stopHub: cancel}
	env.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") && r.URL.Path != "/api/ws" {
			env.requests.Add(1)
		}

		env.mu.Lock()
		gate := env.gate
		env.mu.Unlock()
		if gate != nil && r.Method == http.MethodGet {
			<-gate
		}

		e.ServeHTTP(w, r)
	}))
	t.Cleanup(env.srv.Close)

	env.client = New(env.srv.URL)
	return env
}

func (env *testEnv) closeGateLater() chan struct{} {
	gate := make(chan struct{})
	env.mu.Lock()
	env.gate = gate
	env.mu.Unlock()
	return gate
}

func (env *testEnv) createWorld(t *testing.T) *model.World {
	world, err := env.client.CreateWorld(context.Background(), model.InsertWorld{
		Name:        "Eldoria",
		Description: "A realm of ancient magic and forgotten kings",
		UserID:      model.IntOf(1),
	})
	require.NoError(t, err)
	return world
}

func TestCreatedRegionAppearsInNextList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	world := env.createWorld(t)

	regions, err := env.client.Regions(ctx, world.ID)
	require.NoError(t, err)
	require.Empty(t, regions)
	require.True(t, env.client.Cached(ctx, qcache.WorldCollectionKey(world.ID, qcache.Regions)))

	region, err := env.client.CreateRegion(ctx, model.InsertRegion{
		Name:        "Misty Mountains",
		Description: "Cold peaks wrapped in fog all year",
		WorldID:     model.IntOf(world.ID),
	})
	require.NoError(t, err)
	assert.False(t, env.client.Cached(ctx, qcache.WorldCollectionKey(world.ID, qcache.Regions)))

	regions, err = env.client.Regions(ctx, world.ID)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, region.ID, regions[0].ID)
	assert.Equal(t, "Misty Mountains", regions[0].Name)
}

func TestCreatedLocationAppearsInWorldAndRegionLists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	world := env.createWorld(t)
	region, err := env.client.CreateRegion(ctx, model.InsertRegion{
		Name:        "Misty Mountains",
		Description: "Cold peaks wrapped in fog all year",
		WorldID:     model.IntOf(world.ID),
	})
	require.NoError(t, err)

	_, err = env.client.Locations(ctx, world.ID)
	require.NoError(t, err)
	_, err = env.client.RegionLocations(ctx, region.ID)
	require.NoError(t, err)

	location, err := env.client.CreateLocation(ctx, world.ID, model.InsertLocation{
		Name:        "Goblin Cave",
		Description: "A damp cave that smells of smoke",
		RegionID:    model.IntOf(region.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, model.MarkerStandard, location.MarkerType)

	locations, err := env.client.Locations(ctx, world.ID)
	require.NoError(t, err)
	require.Len(t, locations, 1)

	locations, err = env.client.RegionLocations(ctx, region.ID)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Goblin Cave", locations[0].Name)
}

func TestDeletedLoreEntryLeavesNextList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	world := env.createWorld(t)

	entry, err := env.client.CreateLoreEntry(ctx, model.InsertLoreEntry{
		Title:    "The Sundering",
		WorldID:  model.IntOf(world.ID),
		Content:  "The night the moon split in two.",
		Category: "history",
	})
	require.NoError(t, err)

	entries, err := env.client.Lore(ctx, world.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	updated, err := env.client.UpdateLoreEntry(ctx, entry.ID, model.InsertLoreEntry{
		Title:    "The Great Sundering",
		WorldID:  model.IntOf(world.ID),
		Content:  "The night the moon split in two.",
		Category: "history",
	})
	require.NoError(t, err)
	assert.Equal(t, "The Great Sundering", updated.Title)

	entries, err = env.client.Lore(ctx, world.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "The Great Sundering", entries[0].Title)

	require.NoError(t, env.client.DeleteLoreEntry(ctx, world.ID, entry.ID))

	entries, err = env.client.Lore(ctx, world.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInvalidInputIsRejectedWithoutARequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.client.CreateCreature(ctx, model.InsertCreature{Name: "G", WorldID: model.IntOf(1)})
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
	assert.False(t, errors.Is(err, ErrRequestFailed))
	assert.Equal(t, int32(0), env.requests.Load())
}

func TestFailedMutationIsRequestFailed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	world := env.createWorld(t)

	_, err := env.client.Characters(ctx, world.ID)
	require.NoError(t, err)

	_, err = env.client.CreateCharacter(ctx, model.InsertCharacter{
		Name:     "Aldric",
		WorldID:  model.IntOf(world.ID),
		RegionID: model.IntOf(999),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.StatusCode)

	// Cached state is untouched by the failure.
	assert.True(t, env.client.Cached(ctx, qcache.WorldCollectionKey(world.ID, qcache.Characters)))

	err = env.client.DeleteLoreEntry(ctx, world.ID, 12345)
	assert.True(t, errors.Is(err, ErrRequestFailed))
}

func TestMissingWorldIsRequestFailed(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.World(context.Background(), 42)
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
}

func TestConcurrentFetchesShareOneRequest(t *testing.T) {
	env := newTestEnv(t)
	env.createWorld(t)
	before := env.requests.Load()

	gate := env.closeGateLater()
	const readers = 5
	var wg sync.WaitGroup
	results := make([][]model.World, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			worlds, err := env.client.Worlds(context.Background())
			assert.NoError(t, err)
			results[i] = worlds
		}(i)
	}

	require.Eventually(t, func() bool {
		env.client.mu.Lock()
		defer env.client.mu.Unlock()
		return env.client.inflight[qcache.WorldsKey] == readers
	}, time.Second, 5*time.Millisecond)
	assert.True(t, env.client.Loading(qcache.WorldsKey))

	close(gate)
	wg.Wait()

	assert.Equal(t, before+1, env.requests.Load())
	assert.False(t, env.client.Loading(qcache.WorldsKey))
	for _, worlds := range results {
		assert.Len(t, worlds, 1)
	}
}

func TestInvalidateDuringFetchDropsStaleResult(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	world := env.createWorld(t)
	key := qcache.WorldCollectionKey(world.ID, qcache.Spells)
	before := env.requests.Load()

	gate := env.closeGateLater()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := env.client.Spells(ctx, world.ID)
		assert.NoError(t, err)
	}()

	require.Eventually(t, func() bool { return env.requests.Load() == before+1 }, time.Second, 5*time.Millisecond)
	env.client.Invalidate(ctx, key)
	close(gate)
	<-done

	assert.False(t, env.client.Cached(ctx, key))
}

func TestSearchFindsDragon(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	world := env.createWorld(t)

	for _, name := range []string{"Young Red Dragon", "Goblin"} {
		_, err := env.client.CreateCreature(ctx, model.InsertCreature{Name: name, WorldID: model.IntOf(world.ID)})
		require.NoError(t, err)
	}

	creatures, err := env.client.Creatures(ctx, world.ID)
	require.NoError(t, err)
	require.Len(t, creatures, 2)

	found := FilterCreatures(creatures, Filter{Search: "dragon"})
	require.Len(t, found, 1)
	assert.Equal(t, "Young Red Dragon", found[0].Name)
}

func TestWatchInvalidatesOnOtherWriters(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	world := env.createWorld(t)

	_, err := env.client.Lore(ctx, world.ID)
	require.NoError(t, err)
	key := qcache.WorldCollectionKey(world.ID, qcache.Lore)
	require.True(t, env.client.Cached(ctx, key))

	events := make(chan notify.Event, 10)
	watchDone := make(chan error, 1)
	go func() {
		watchDone <- env.client.Watch(ctx, func(ev notify.Event) { events <- ev })
	}()

	select {
	case ev := <-events:
		require.Equal(t, notify.EventConnected, ev.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no connected event")
	}
	require.Eventually(t, func() bool { return env.hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	other := New(env.srv.URL)
	_, err = other.CreateLoreEntry(ctx, model.InsertLoreEntry{
		Title:    "The Sundering",
		WorldID:  model.IntOf(world.ID),
		Content:  "The night the moon split in two.",
		Category: "history",
	})
	require.NoError(t, err)

	select {
	case ev := <-events:
		require.Equal(t, notify.EventInvalidate, ev.Type)
		assert.Contains(t, ev.Keys, key)
	case <-time.After(2 * time.Second):
		t.Fatal("no invalidate event")
	}
	assert.False(t, env.client.Cached(ctx, key))

	cancel()
	select {
	case err := <-watchDone:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestRegisterUserAndUseKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.client.RegisterUser(ctx, model.InsertUser{Username: "dungeonmaster", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.APIToken)

	authed := New(env.srv.URL, WithAPIKey(user.APIToken))
	world, err := authed.CreateWorld(ctx, model.InsertWorld{
		Name:        "Eldoria",
		Description: "A realm of ancient magic and forgotten kings",
		UserID:      model.IntOf(99),
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, world.UserID)
}

func TestUploadImage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	world := env.createWorld(t)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	url, err := env.client.UploadImage(ctx, world.ID, "map.png", strings.NewReader(string(png)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/api/images/images/world-"))
}

// pausingCache holds Set of one key until release is closed.
type pausingCache struct {
	*qcache.MemoryCache
	key     string
	setting chan struct{}
	release chan struct{}
	once    sync.Once
}

func (p *pausingCache) Set(ctx context.Context, key string, value []byte) error {
	if key == p.key {
		p.once.Do(func() { close(p.setting) })
		<-p.release
	}
	return p.MemoryCache.Set(ctx, key, value)
}

func TestInvalidateDuringCacheStoreDropsStaleResult(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	world := env.createWorld(t)

	cache := &pausingCache{
		MemoryCache: qcache.NewMemoryCache(0),
		key:         qcache.WorldCollectionKey(world.ID, qcache.Regions),
		setting:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	client := New(env.srv.URL, WithCache(cache))

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		regions, err := client.Regions(ctx, world.ID)
		assert.NoError(t, err)
		assert.Empty(t, regions)
	}()
	<-cache.setting

	before := env.requests.Load()
	createDone := make(chan struct{})
	go func() {
		defer close(createDone)
		_, err := client.CreateRegion(ctx, model.InsertRegion{
			Name:        "Misty Mountains",
			Description: "Cold peaks wrapped in fog all year",
			WorldID:     model.IntOf(world.ID),
		})
		assert.NoError(t, err)
	}()

	// The create reaches the server while the old list is still being stored.
	require.Eventually(t, func() bool { return env.requests.Load() == before+1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(cache.release)
	<-readDone
	<-createDone

	regions, err := client.Regions(ctx, world.ID)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "Misty Mountains", regions[0].Name)
}

func TestCancelledReaderDoesNotFailOthers(t *testing.T) {
	env := newTestEnv(t)
	env.createWorld(t)
	before := env.requests.Load()

	gate := env.closeGateLater()

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := env.client.Worlds(firstCtx)
		firstDone <- err
	}()
	require.Eventually(t, func() bool { return env.requests.Load() == before+1 }, time.Second, 5*time.Millisecond)

	secondDone := make(chan error, 1)
	var worlds []model.World
	go func() {
		var err error
		worlds, err = env.client.Worlds(context.Background())
		secondDone <- err
	}()
	require.Eventually(t, func() bool {
		env.client.mu.Lock()
		defer env.client.mu.Unlock()
		return env.client.inflight[qcache.WorldsKey] == 2
	}, time.Second, 5*time.Millisecond)

	cancelFirst()
	err := <-firstDone
	assert.True(t, errors.Is(err, ErrRequestFailed))

	close(gate)
	require.NoError(t, <-secondDone)
	assert.Len(t, worlds, 1)
	assert.Equal(t, before+1, env.requests.Load())
}

func TestWatchReturnsWhenConnectionDrops(t *testing.T) {
	env := newTestEnv(t)

	connected := make(chan struct{})
	watchDone := make(chan error, 1)
	go func() {
		watchDone <- env.client.Watch(context.Background(), func(ev notify.Event) {
			if ev.Type == notify.EventConnected {
				close(connected)
			}
		})
	}()

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		t.Fatal("no connected event")
	}
	require.Eventually(t, func() bool { return env.hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	env.stopHub()

	select {
	case err := <-watchDone:
		assert.True(t, errors.Is(err, ErrRequestFailed))
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not return after the connection dropped")
	}
}
