package realmclient

import (
	"context"
	"net/url"

	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
)

func (c *Client) Worlds(ctx context.Context) ([]model.World, error) {
	var worlds []model.World
	err := c.fetch(ctx, qcache.WorldsKey, &worlds)
	return worlds, err
}

func (c *Client) World(ctx context.Context, worldID int) (*model.World, error) {
	var world model.World
	if err := c.fetch(ctx, qcache.WorldKey(worldID), &world); err != nil {
		return nil, err
	}

	return &world, nil
}

func (c *Client) WorldBySlug(ctx context.Context, slug string) (*model.World, error) {
	var world model.World
	if err := c.fetch(ctx, qcache.WorldsKey+"/by-slug/"+url.PathEscape(slug), &world); err != nil {
		return nil, err
	}

	return &world, nil
}

// SelectWorld returns the world with worldID, or the first world when worldID is
// 0. It returns nil without error when there are no worlds.
func (c *Client) SelectWorld(ctx context.Context, worldID int) (*model.World, error) {
	if worldID != 0 {
		return c.World(ctx, worldID)
	}

	worlds, err := c.Worlds(ctx)
	if err != nil || len(worlds) == 0 {
		return nil, err
	}

	return &worlds[0], nil
}

func (c *Client) Regions(ctx context.Context, worldID int) ([]model.Region, error) {
	var regions []model.Region
	err := c.fetch(ctx, qcache.WorldCollectionKey(worldID, qcache.Regions), &regions)
	return regions, err
}

func (c *Client) Locations(ctx context.Context, worldID int) ([]model.Location, error) {
	var locations []model.Location
	err := c.fetch(ctx, qcache.WorldCollectionKey(worldID, qcache.Locations), &locations)
	return locations, err
}

func (c *Client) RegionLocations(ctx context.Context, regionID int) ([]model.Location, error) {
	var locations []model.Location
	err := c.fetch(ctx, qcache.RegionLocationsKey(regionID), &locations)
	return locations, err
}

func (c *Client) Characters(ctx context.Context, worldID int) ([]model.Character, error) {
	var characters []model.Character
	err := c.fetch(ctx, qcache.WorldCollectionKey(worldID, qcache.Characters), &characters)
	return characters, err
}

func (c *Client) Creatures(ctx context.Context, worldID int) ([]model.Creature, error) {
	var creatures []model.Creature
	err := c.fetch(ctx, qcache.WorldCollectionKey(worldID, qcache.Creatures), &creatures)
	return creatures, err
}

func (c *Client) Spells(ctx context.Context, worldID int) ([]model.Spell, error) {
	var spells []model.Spell
	err := c.fetch(ctx, qcache.WorldCollectionKey(worldID, qcache.Spells), &spells)
	return spells, err
}

func (c *Client) Lore(ctx context.Context, worldID int) ([]model.LoreEntry, error) {
	var entries []model.LoreEntry
	err := c.fetch(ctx, qcache.WorldCollectionKey(worldID, qcache.Lore), &entries)
	return entries, err
}
