package stor

import (
	"testing"

	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int {
	return &v
}

func TestCreateRequiresExistingWorld(t *testing.T) {
	tc := newTestCase(t)

	_, err := tc.stors.RegionStor.CreateRegion(&model.Region{Name: "Nowhere", WorldID: 999})
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = tc.stors.CharacterStor.CreateCharacter(&model.Character{Name: "Ghost", WorldID: 999})
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = tc.stors.CreatureStor.CreateCreature(&model.Creature{Name: "Ghoul", WorldID: 999})
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = tc.stors.SpellStor.CreateSpell(&model.Spell{Name: "Void Bolt", WorldID: 999})
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = tc.stors.LoreEntryStor.CreateLoreEntry(&model.LoreEntry{Title: "Lost", WorldID: 999})
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = tc.stors.LocationStor.CreateLocation(&model.Location{Name: "Nowhere Inn", RegionID: 999})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestCreateRejectsReferencesIntoOtherWorlds(t *testing.T) {
	tc := newTestCase(t)
	other := tc.createWorld("Frostvale")

	_, err := tc.stors.CharacterStor.CreateCharacter(&model.Character{
		Name:     "Thorin",
		WorldID:  other.ID,
		RegionID: intp(tc.region.ID),
	})
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = tc.stors.CreatureStor.CreateCreature(&model.Creature{
		Name:     "Frost Wyrm",
		WorldID:  other.ID,
		RegionID: intp(tc.region.ID),
	})
	assert.ErrorIs(t, err, ErrInvalidReference)

	loc, err := tc.stors.LocationStor.CreateLocation(&model.Location{Name: "Stormkeep", RegionID: tc.region.ID})
	require.NoError(t, err)

	_, err = tc.stors.CharacterStor.CreateCharacter(&model.Character{
		Name:       "Thorin",
		WorldID:    other.ID,
		LocationID: intp(loc.ID),
	})
	assert.ErrorIs(t, err, ErrInvalidReference)

	c, err := tc.stors.CharacterStor.CreateCharacter(&model.Character{
		Name:       "Thorin",
		WorldID:    tc.world.ID,
		RegionID:   intp(tc.region.ID),
		LocationID: intp(loc.ID),
	})
	require.NoError(t, err)

	_, err = tc.stors.SpellStor.CreateSpell(&model.Spell{
		Name:               "Frost Lance",
		WorldID:            other.ID,
		CreatorCharacterID: intp(c.ID),
	})
	assert.ErrorIs(t, err, ErrInvalidReference)

	s, err := tc.stors.SpellStor.CreateSpell(&model.Spell{
		Name:               "Stone Ward",
		WorldID:            tc.world.ID,
		Level:              intp(2),
		CreatorCharacterID: intp(c.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, c.ID, *s.CreatorCharacterID)
}

func TestListsAreScopedToWorld(t *testing.T) {
	tc := newTestCase(t)
	other := tc.createWorld("Frostvale")

	otherRegion, err := tc.stors.RegionStor.CreateRegion(&model.Region{Name: "Ice Shelf", WorldID: other.ID})
	require.NoError(t, err)

	_, err = tc.stors.LocationStor.CreateLocation(&model.Location{Name: "Stormkeep", RegionID: tc.region.ID, MarkerType: model.MarkerQuest})
	require.NoError(t, err)
	_, err = tc.stors.LocationStor.CreateLocation(&model.Location{Name: "Glacier Camp", RegionID: otherRegion.ID})
	require.NoError(t, err)

	locations, err := tc.stors.LocationStor.ListLocationsForWorld(tc.world.ID)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Stormkeep", locations[0].Name)

	locations, err = tc.stors.LocationStor.ListLocationsForRegion(otherRegion.ID)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Glacier Camp", locations[0].Name)

	regions, err := tc.stors.RegionStor.ListRegionsForWorld(other.ID)
	require.NoError(t, err)
	require.Len(t, regions, 1)

	creatures, err := tc.stors.CreatureStor.ListCreaturesForWorld(other.ID)
	require.NoError(t, err)
	assert.NotNil(t, creatures)
	assert.Empty(t, creatures)
}

func TestCreatureJSONColumnsRoundTrip(t *testing.T) {
	tc := newTestCase(t)

	in := model.InsertCreature{
		Name:            "Red Dragon",
		WorldID:         model.IntOf(tc.world.ID),
		Rarity:          "Legendary",
		ChallengeRating: "24",
		Abilities:       model.AbilityInput{"STR": 27, "CHA": 21},
		SpecialAttacks:  model.StringList{"Fire Breath", "Frightful Presence"},
	}

	created, err := tc.stors.CreatureStor.CreateCreature(in.ToCreature())
	require.NoError(t, err)

	c, err := tc.stors.CreatureStor.GetCreatureByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RarityLegendary, c.Rarity)
	assert.Equal(t, 27, c.Abilities.Data()["STR"])
	assert.Equal(t, []string{"Fire Breath", "Frightful Presence"}, []string(c.SpecialAttacks))
	assert.Equal(t, "62,000", c.XP())
}
