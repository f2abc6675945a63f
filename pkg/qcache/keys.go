package qcache

import "fmt"

// Collection names used in world scoped keys.
const (
	Regions    = "regions"
	Locations  = "locations"
	Characters = "characters"
	Creatures  = "creatures"
	Spells     = "spells"
	Lore       = "lore"
)

const WorldsKey = "/api/worlds"

func WorldKey(worldID int) string {
	return fmt.Sprintf("/api/worlds/%d", worldID)
}

func WorldCollectionKey(worldID int, collection string) string {
	return fmt.Sprintf("/api/worlds/%d/%s", worldID, collection)
}

func RegionLocationsKey(regionID int) string {
	return fmt.Sprintf("/api/regions/%d/locations", regionID)
}

// The *Keys functions below name the keys made stale by a successful mutation.

func WorldCreatedKeys() []string {
	return []string{WorldsKey}
}

func CollectionChangedKeys(worldID int, collection string) []string {
	return []string{WorldCollectionKey(worldID, collection)}
}

func LocationCreatedKeys(worldID, regionID int) []string {
	return []string{
		WorldCollectionKey(worldID, Locations),
		RegionLocationsKey(regionID),
	}
}
