package stor

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"gorm.io/gorm"
)

type UserStor interface {
	CreateUser(user *model.User, password string) (*model.User, error)
	GetUserByID(userID int) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUserByAPIToken(apiToken string) (*model.User, error)
	CheckPassword(username, password string) (*model.User, error)
}

type WorldStor interface {
	CreateWorld(world *model.World) (*model.World, error)
	GetWorldByID(worldID int) (*model.World, error)
	GetWorldBySlug(slug string) (*model.World, error)
	ListWorlds() ([]model.World, error)
	ListWorldsForUser(userID int) ([]model.World, error)
}

type RegionStor interface {
	CreateRegion(region *model.Region) (*model.Region, error)
	GetRegionByID(regionID int) (*model.Region, error)
	ListRegionsForWorld(worldID int) ([]model.Region, error)
}

type LocationStor interface {
	CreateLocation(location *model.Location) (*model.Location, error)
	GetLocationByID(locationID int) (*model.Location, error)
	ListLocationsForWorld(worldID int) ([]model.Location, error)
	ListLocationsForRegion(regionID int) ([]model.Location, error)
}

type CharacterStor interface {
	CreateCharacter(character *model.Character) (*model.Character, error)
	GetCharacterByID(characterID int) (*model.Character, error)
	ListCharactersForWorld(worldID int) ([]model.Character, error)
}

type CreatureStor interface {
	CreateCreature(creature *model.Creature) (*model.Creature, error)
	GetCreatureByID(creatureID int) (*model.Creature, error)
	ListCreaturesForWorld(worldID int) ([]model.Creature, error)
}

type SpellStor interface {
	CreateSpell(spell *model.Spell) (*model.Spell, error)
	GetSpellByID(spellID int) (*model.Spell, error)
	ListSpellsForWorld(worldID int) ([]model.Spell, error)
}

type LoreEntryStor interface {
	CreateLoreEntry(entry *model.LoreEntry) (*model.LoreEntry, error)
	GetLoreEntryByID(entryID int) (*model.LoreEntry, error)
	ListLoreEntriesForWorld(worldID int) ([]model.LoreEntry, error)
	UpdateLoreEntry(entryID int, updates *model.LoreEntry) (*model.LoreEntry, error)
	DeleteLoreEntry(entryID int) (*model.LoreEntry, error)
}

type Stors struct {
	UserStor      UserStor
	WorldStor     WorldStor
	RegionStor    RegionStor
	LocationStor  LocationStor
	CharacterStor CharacterStor
	CreatureStor  CreatureStor
	SpellStor     SpellStor
	LoreEntryStor LoreEntryStor
}

func NewGormStors(db *gorm.DB) *Stors {
	return &Stors{
		UserStor:      NewGormUserStor(db),
		WorldStor:     NewGormWorldStor(db),
		RegionStor:    NewGormRegionStor(db),
		LocationStor:  NewGormLocationStor(db),
		CharacterStor: NewGormCharacterStor(db),
		CreatureStor:  NewGormCreatureStor(db),
		SpellStor:     NewGormSpellStor(db),
		LoreEntryStor: NewGormLoreEntryStor(db),
	}
}
