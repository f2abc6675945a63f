package realmclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
)

// Every Create* validates its input first and returns the *model.ValidationError
// without contacting the server when it fails.

func (c *Client) CreateWorld(ctx context.Context, in model.InsertWorld) (*model.World, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var world model.World
	err := c.send(ctx, http.MethodPost, "/api/worlds", in, &world, qcache.WorldCreatedKeys)
	if err != nil {
		return nil, err
	}

	return &world, nil
}

func (c *Client) CreateRegion(ctx context.Context, in model.InsertRegion) (*model.Region, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var region model.Region
	err := c.send(ctx, http.MethodPost, "/api/regions", in, &region, func() []string {
		return qcache.CollectionChangedKeys(region.WorldID, qcache.Regions)
	})
	if err != nil {
		return nil, err
	}

	return &region, nil
}

// CreateLocation needs the world the location's region belongs to, since a
// location record only names its region.
func (c *Client) CreateLocation(ctx context.Context, worldID int, in model.InsertLocation) (*model.Location, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var location model.Location
	err := c.send(ctx, http.MethodPost, "/api/locations", in, &location, func() []string {
		return qcache.LocationCreatedKeys(worldID, location.RegionID)
	})
	if err != nil {
		return nil, err
	}

	return &location, nil
}

func (c *Client) CreateCharacter(ctx context.Context, in model.InsertCharacter) (*model.Character, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var character model.Character
	err := c.send(ctx, http.MethodPost, "/api/characters", in, &character, func() []string {
		return qcache.CollectionChangedKeys(character.WorldID, qcache.Characters)
	})
	if err != nil {
		return nil, err
	}

	return &character, nil
}

func (c *Client) CreateCreature(ctx context.Context, in model.InsertCreature) (*model.Creature, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var creature model.Creature
	err := c.send(ctx, http.MethodPost, "/api/creatures", in, &creature, func() []string {
		return qcache.CollectionChangedKeys(creature.WorldID, qcache.Creatures)
	})
	if err != nil {
		return nil, err
	}

	return &creature, nil
}

func (c *Client) CreateSpell(ctx context.Context, in model.InsertSpell) (*model.Spell, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var spell model.Spell
	err := c.send(ctx, http.MethodPost, "/api/spells", in, &spell, func() []string {
		return qcache.CollectionChangedKeys(spell.WorldID, qcache.Spells)
	})
	if err != nil {
		return nil, err
	}

	return &spell, nil
}

func (c *Client) CreateLoreEntry(ctx context.Context, in model.InsertLoreEntry) (*model.LoreEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var entry model.LoreEntry
	err := c.send(ctx, http.MethodPost, "/api/lore", in, &entry, func() []string {
		return qcache.CollectionChangedKeys(entry.WorldID, qcache.Lore)
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (c *Client) UpdateLoreEntry(ctx context.Context, entryID int, in model.InsertLoreEntry) (*model.LoreEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var entry model.LoreEntry
	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/lore/%d", entryID), in, &entry, func() []string {
		return qcache.CollectionChangedKeys(entry.WorldID, qcache.Lore)
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// DeleteLoreEntry removes an entry from worldID's lore.
func (c *Client) DeleteLoreEntry(ctx context.Context, worldID, entryID int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/lore/%d", entryID), nil, nil, func() []string {
		return qcache.CollectionChangedKeys(worldID, qcache.Lore)
	})
}

type RegisteredUser struct {
	ID       int    `json:"id"`
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	APIToken string `json:"apiToken"`
}

func (c *Client) RegisterUser(ctx context.Context, in model.InsertUser) (*RegisteredUser, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var user RegisteredUser
	if err := c.send(ctx, http.MethodPost, "/api/users", in, &user, nil); err != nil {
		return nil, err
	}

	return &user, nil
}

// UploadImage stores an image and returns the URL to put in a record's imageUrl.
// worldID may be 0 for images not tied to a world.
func (c *Client) UploadImage(ctx context.Context, worldID int, filename string, r io.Reader) (string, error) {
	req := c.rc.R().SetContext(ctx).SetFileReader("file", filename, r)
	if worldID != 0 {
		req.SetFormData(map[string]string{"worldId": strconv.Itoa(worldID)})
	}

	var out struct {
		ImageURL string `json:"imageUrl"`
	}

	resp, err := req.SetResult(&out).Post("/api/images")
	if err != nil {
		return "", transportError(err)
	}

	if resp.IsError() {
		return "", toErrorFromResponse(resp)
	}

	return out.ImageURL, nil
}
