package realmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/realmkeeper/realmkeeper/pkg/notify"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/webapi/apimiddleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*testing.T
	e    *echo.Echo
	deps Deps
}

func newTestServer(t *testing.T, requireAPIKey bool) *testServer {
	deps, err := NewMemoryDeps(time.Minute)
	require.NoError(t, err)
	deps.RequireAPIKey = requireAPIKey

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go deps.Hub.Run(ctx)

	e := echo.New()
	require.NoError(t, NewServer(e, deps).Init())

	return &testServer{T: t, e: e, deps: deps}
}

func (ts *testServer) do(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(ts.T, err)
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) create(path string, body interface{}) map[string]interface{} {
	rec := ts.do(http.MethodPost, path, body)
	require.Equalf(ts.T, http.StatusCreated, rec.Code, "POST %s: %s", path, rec.Body.String())

	var m map[string]interface{}
	require.NoError(ts.T, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func (ts *testServer) list(path string) []map[string]interface{} {
	rec := ts.do(http.MethodGet, path, nil)
	require.Equalf(ts.T, http.StatusOK, rec.Code, "GET %s: %s", path, rec.Body.String())

	var items []map[string]interface{}
	require.NoError(ts.T, json.Unmarshal(rec.Body.Bytes(), &items))
	return items
}

func (ts *testServer) createWorld(name string) int {
	w := ts.create("/api/worlds", map[string]interface{}{
		"name":        name,
		"description": "A land of floating isles",
		"userId":      1,
	})
	return int(w["id"].(float64))
}

func TestCreateThenListIsFresh(t *testing.T) {
	ts := newTestServer(t, false)
	worldID := ts.createWorld("Eldoria")

	regionsPath := fmt.Sprintf("/api/worlds/%d/regions", worldID)
	assert.Empty(t, ts.list(regionsPath))

	rec := ts.do(http.MethodGet, regionsPath, nil)
	assert.Equal(t, "HIT", rec.Header().Get(apimiddleware.HeaderXCache))

	region := ts.create("/api/regions", map[string]interface{}{
		"name":        "Misty Mountains",
		"description": "Peaks wrapped in fog",
		"worldId":     fmt.Sprint(worldID),
	})

	regions := ts.list(regionsPath)
	require.Len(t, regions, 1)
	assert.Equal(t, "Misty Mountains", regions[0]["name"])

	regionID := int(region["id"].(float64))
	locationsPath := fmt.Sprintf("/api/regions/%d/locations", regionID)
	worldLocationsPath := fmt.Sprintf("/api/worlds/%d/locations", worldID)
	assert.Empty(t, ts.list(locationsPath))
	assert.Empty(t, ts.list(worldLocationsPath))

	location := ts.create("/api/locations", map[string]interface{}{
		"name":        "Stormkeep",
		"description": "A fortress on the cliffs",
		"regionId":    regionID,
		"x":           "37",
		"y":           "",
	})
	assert.Equal(t, model.MarkerStandard, location["markerType"])
	assert.Nil(t, location["y"])

	assert.Len(t, ts.list(locationsPath), 1)
	assert.Len(t, ts.list(worldLocationsPath), 1)
}

func TestEntityCreates(t *testing.T) {
	ts := newTestServer(t, false)
	worldID := ts.createWorld("Eldoria")

	character := ts.create("/api/characters", map[string]interface{}{
		"name":      "Thorin",
		"worldId":   worldID,
		"abilities": "Axe mastery, Stonecunning",
	})
	assert.Equal(t, model.CharacterNPC, character["characterType"])
	assert.Equal(t, []interface{}{"Axe mastery", "Stonecunning"}, character["abilities"])

	creature := ts.create("/api/creatures", map[string]interface{}{
		"name":            "Young Red Dragon",
		"worldId":         worldID,
		"challengeRating": 10,
		"armorClass":      "18",
		"abilities":       "STR:23, DEX:10",
		"specialAttacks":  []string{"Fire Breath"},
	})
	assert.Equal(t, model.RarityCommon, creature["rarity"])
	assert.Equal(t, "10", creature["challengeRating"])
	assert.Equal(t, float64(18), creature["armorClass"])
	assert.Equal(t, map[string]interface{}{"STR": float64(23), "DEX": float64(10)}, creature["abilities"])

	spell := ts.create("/api/spells", map[string]interface{}{
		"name":               "Stone Ward",
		"worldId":            worldID,
		"level":              "3",
		"creatorCharacterId": character["id"],
	})
	assert.Equal(t, float64(3), spell["level"])

	assert.Len(t, ts.list(fmt.Sprintf("/api/worlds/%d/characters", worldID)), 1)
	assert.Len(t, ts.list(fmt.Sprintf("/api/worlds/%d/creatures", worldID)), 1)
	assert.Len(t, ts.list(fmt.Sprintf("/api/worlds/%d/spells", worldID)), 1)
}

func TestLoreUpdateAndDelete(t *testing.T) {
	ts := newTestServer(t, false)
	worldID := ts.createWorld("Eldoria")
	lorePath := fmt.Sprintf("/api/worlds/%d/lore", worldID)

	entry := ts.create("/api/lore", map[string]interface{}{
		"title":    "The Sundering",
		"worldId":  worldID,
		"content":  "The isles rose",
		"category": "History",
	})
	entryPath := fmt.Sprintf("/api/lore/%d", int(entry["id"].(float64)))
	assert.Len(t, ts.list(lorePath), 1)

	rec := ts.do(http.MethodPut, entryPath, map[string]interface{}{
		"title":    "The Great Sundering",
		"worldId":  worldID,
		"content":  "The isles rose into the sky",
		"category": "Legend",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	entries := ts.list(lorePath)
	require.Len(t, entries, 1)
	assert.Equal(t, "Legend", entries[0]["category"])

	rec = ts.do(http.MethodDelete, entryPath, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, ts.list(lorePath))

	rec = ts.do(http.MethodDelete, entryPath, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorResponses(t *testing.T) {
	ts := newTestServer(t, false)
	worldID := ts.createWorld("Eldoria")

	rec := ts.do(http.MethodGet, "/api/worlds/999/regions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(http.MethodGet, "/api/worlds/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/api/regions", map[string]interface{}{
		"name": "M", "description": "short", "worldId": worldID,
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body struct {
		Fields map[string][]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "name")
	assert.Contains(t, body.Fields, "description")

	rec = ts.do(http.MethodPost, "/api/regions", map[string]interface{}{
		"name": "Misty Mountains", "description": "Peaks wrapped in fog", "worldId": 999,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = ts.do(http.MethodPost, "/api/spells", map[string]interface{}{
		"name": "Fireball", "worldId": worldID, "level": "three",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/api/worlds/by-slug/eldoria", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyRequired(t *testing.T) {
	ts := newTestServer(t, true)

	rec := ts.do(http.MethodGet, "/api/worlds", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/api/users", map[string]string{"username": "dm", "password": "correct-horse"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user struct {
		ID       int    `json:"id"`
		APIToken string `json:"apiToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.NotEmpty(t, user.APIToken)

	rec = ts.do(http.MethodPost, "/api/worlds", map[string]interface{}{
		"name": "Eldoria", "description": "A land of floating isles",
	}, "apikey", user.APIToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var world model.World
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &world))
	assert.Equal(t, user.ID, world.UserID)
}

func TestLoginAndOwnedWorlds(t *testing.T) {
	ts := newTestServer(t, true)

	rec := ts.do(http.MethodPost, "/api/users", map[string]string{"username": "dm", "password": "correct-horse"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(http.MethodPost, "/api/users/login", map[string]string{"username": "dm", "password": "wrong-horse"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(http.MethodPost, "/api/users/login", map[string]string{"username": " dm ", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var user struct {
		ID       int    `json:"id"`
		APIToken string `json:"apiToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.NotEmpty(t, user.APIToken)

	rec = ts.do(http.MethodPost, "/api/worlds", map[string]interface{}{
		"name": "Eldoria", "description": "A land of floating isles",
	}, "apikey", user.APIToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/users/me/worlds", nil, "apikey", user.APIToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var worlds []model.World
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &worlds))
	require.Len(t, worlds, 1)
	assert.Equal(t, "Eldoria", worlds[0].Name)
}

func TestOwnedWorldsNeedAKey(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(http.MethodGet, "/api/users/me/worlds", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNonCanonicalIDsAreRejected(t *testing.T) {
	ts := newTestServer(t, false)
	worldID := ts.createWorld("Eldoria")

	for _, path := range []string{
		"/api/worlds/01/regions",
		"/api/worlds/+1/regions",
		"/api/worlds/01",
		"/api/regions/01/locations",
		"/api/lore/01",
	} {
		rec := ts.do(http.MethodGet, path, nil)
		assert.Equalf(t, http.StatusBadRequest, rec.Code, "GET %s", path)
	}

	ts.create("/api/regions", map[string]interface{}{
		"name":        "Misty Mountains",
		"description": "Peaks wrapped in fog",
		"worldId":     worldID,
	})

	rec := ts.do(http.MethodGet, "/api/worlds/01/regions", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, ts.list(fmt.Sprintf("/api/worlds/%d/regions", worldID)), 1)
}

func TestGetRecordsByID(t *testing.T) {
	ts := newTestServer(t, false)
	worldID := ts.createWorld("Eldoria")

	region := ts.create("/api/regions", map[string]interface{}{
		"name": "Misty Mountains", "description": "Peaks wrapped in fog", "worldId": worldID,
	})

	created := map[string]map[string]interface{}{
		"/api/locations": ts.create("/api/locations", map[string]interface{}{
			"name": "Stormkeep", "description": "A fortress on the cliffs", "regionId": region["id"],
		}),
		"/api/characters": ts.create("/api/characters", map[string]interface{}{"name": "Aldric", "worldId": worldID}),
		"/api/creatures":  ts.create("/api/creatures", map[string]interface{}{"name": "Goblin", "worldId": worldID}),
		"/api/spells":     ts.create("/api/spells", map[string]interface{}{"name": "Fireball", "worldId": worldID}),
		"/api/lore": ts.create("/api/lore", map[string]interface{}{
			"title": "The Sundering", "content": "The moon split.", "category": "history", "worldId": worldID,
		}),
	}

	for base, record := range created {
		path := fmt.Sprintf("%s/%d", base, int(record["id"].(float64)))
		rec := ts.do(http.MethodGet, path, nil)
		require.Equalf(t, http.StatusOK, rec.Code, "GET %s: %s", path, rec.Body.String())

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, record["id"], got["id"])

		rec = ts.do(http.MethodGet, base+"/9999", nil)
		assert.Equalf(t, http.StatusNotFound, rec.Code, "GET %s/9999", base)
	}
}

func TestInvalidationsArePushed(t *testing.T) {
	ts := newTestServer(t, false)
	srv := httptest.NewServer(ts.e)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() notify.Event {
		var event notify.Event
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		require.NoError(t, conn.ReadJSON(&event))
		return event
	}

	assert.Equal(t, notify.EventConnected, read().Type)
	require.Eventually(t, func() bool { return ts.deps.Hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	ts.createWorld("Eldoria")

	event := read()
	assert.Equal(t, notify.EventInvalidate, event.Type)
	assert.Equal(t, []string{"/api/worlds"}, event.Keys)
}

func TestImageUploadAndFetch(t *testing.T) {
	ts := newTestServer(t, false)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "dragon.png")
	require.NoError(t, err)
	_, _ = fw.Write(png)
	require.NoError(t, w.WriteField("worldId", "1"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ImageURL string `json:"imageUrl"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.ImageURL, "/api/images/images/world-1/"), resp.ImageURL)

	rec = ts.do(http.MethodGet, resp.ImageURL, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec = ts.do(http.MethodGet, "/api/images/images/world-1/missing.png", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminLogging(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(http.MethodPut, "/admin/logging", map[string]string{"component": "qcache", "logLevel": "debug"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"qcache":"debug"`)

	rec = ts.do(http.MethodPut, "/admin/logging", map[string]string{"logLevel": "loud"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
