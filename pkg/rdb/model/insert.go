package model

import (
	"strings"

	"gorm.io/datatypes"
)

// The Insert* types are the request bodies for creating records. Each has a
// Validate method, applied by the client before sending and again by the server,
// and a conversion to the stored model that fills in column defaults.

type InsertWorld struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UserID      NullInt `json:"userId"`
	ImageURL    string  `json:"imageUrl"`
}

func (w InsertWorld) Validate() error {
	v := NewValidationError()
	v.minLength("name", w.Name, 2, "World name must have at least 2 characters")
	v.minLength("description", w.Description, 10, "Please provide a more detailed description")
	v.required("userId", w.UserID)
	return v.Err()
}

func (w InsertWorld) ToWorld() *World {
	return &World{
		Name:        strings.TrimSpace(w.Name),
		Description: w.Description,
		UserID:      w.UserID.Int,
		ImageURL:    w.ImageURL,
	}
}

type InsertRegion struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	WorldID     NullInt `json:"worldId"`
	ImageURL    string  `json:"imageUrl"`
	Type        string  `json:"type"`
}

func (r InsertRegion) Validate() error {
	v := NewValidationError()
	v.minLength("name", r.Name, 2, "Region name must have at least 2 characters")
	v.minLength("description", r.Description, 10, "Please provide a more detailed description")
	v.required("worldId", r.WorldID)
	return v.Err()
}

func (r InsertRegion) ToRegion() *Region {
	return &Region{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		WorldID:     r.WorldID.Int,
		ImageURL:    r.ImageURL,
		Type:        r.Type,
	}
}

type InsertLocation struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	RegionID     NullInt `json:"regionId"`
	ImageURL     string  `json:"imageUrl"`
	LocationType string  `json:"locationType"`
	X            NullInt `json:"x"`
	Y            NullInt `json:"y"`
	MarkerType   string  `json:"markerType"`
}

func (l InsertLocation) Validate() error {
	v := NewValidationError()
	v.minLength("name", l.Name, 2, "Location name must have at least 2 characters")
	v.minLength("description", l.Description, 10, "Please provide a more detailed description")
	v.required("regionId", l.RegionID)
	v.oneOf("markerType", l.MarkerType, MarkerKinds)
	return v.Err()
}

func (l InsertLocation) ToLocation() *Location {
	markerType := l.MarkerType
	if markerType == "" {
		markerType = MarkerStandard
	}

	return &Location{
		Name:         strings.TrimSpace(l.Name),
		Description:  l.Description,
		RegionID:     l.RegionID.Int,
		ImageURL:     l.ImageURL,
		LocationType: l.LocationType,
		X:            l.X.Ptr(),
		Y:            l.Y.Ptr(),
		MarkerType:   markerType,
	}
}

type InsertCharacter struct {
	Name          string     `json:"name"`
	WorldID       NullInt    `json:"worldId"`
	RegionID      NullInt    `json:"regionId"`
	LocationID    NullInt    `json:"locationId"`
	Description   string     `json:"description"`
	Appearance    string     `json:"appearance"`
	Personality   string     `json:"personality"`
	Abilities     StringList `json:"abilities"`
	ImageURL      string     `json:"imageUrl"`
	Race          string     `json:"race"`
	CharacterType string     `json:"characterType"`
}

func (c InsertCharacter) Validate() error {
	v := NewValidationError()
	v.minLength("name", c.Name, 2, "Character name must have at least 2 characters")
	v.required("worldId", c.WorldID)
	v.oneOf("characterType", c.CharacterType, CharacterTypes)
	return v.Err()
}

func (c InsertCharacter) ToCharacter() *Character {
	characterType := c.CharacterType
	if characterType == "" {
		characterType = CharacterNPC
	}

	return &Character{
		Name:          strings.TrimSpace(c.Name),
		WorldID:       c.WorldID.Int,
		RegionID:      c.RegionID.Ptr(),
		LocationID:    c.LocationID.Ptr(),
		Description:   c.Description,
		Appearance:    c.Appearance,
		Personality:   c.Personality,
		Abilities:     datatypes.JSONSlice[string](cleanList(c.Abilities)),
		ImageURL:      c.ImageURL,
		Race:          c.Race,
		CharacterType: characterType,
	}
}

type InsertCreature struct {
	Name            string       `json:"name"`
	WorldID         NullInt      `json:"worldId"`
	RegionID        NullInt      `json:"regionId"`
	ImageURL        string       `json:"imageUrl"`
	Description     string       `json:"description"`
	CreatureType    string       `json:"creatureType"`
	Rarity          string       `json:"rarity"`
	ChallengeRating Text         `json:"challengeRating"`
	ArmorClass      NullInt      `json:"armorClass"`
	HitPoints       Text         `json:"hitPoints"`
	Speed           string       `json:"speed"`
	Abilities       AbilityInput `json:"abilities"`
	SpecialAttacks  StringList   `json:"specialAttacks"`
	ElementType     string       `json:"elementType"`
}

func (c InsertCreature) Validate() error {
	v := NewValidationError()
	v.minLength("name", c.Name, 2, "Creature name must have at least 2 characters")
	v.required("worldId", c.WorldID)
	if c.ArmorClass.Valid && c.ArmorClass.Int < 0 {
		v.Add("armorClass", "must not be negative")
	}
	return v.Err()
}

func (c InsertCreature) ToCreature() *Creature {
	rarity := strings.ToLower(strings.TrimSpace(c.Rarity))
	if rarity == "" {
		rarity = RarityCommon
	}

	abilities := AbilityScores{}
	for k, score := range c.Abilities {
		abilities[k] = score
	}

	return &Creature{
		Name:            strings.TrimSpace(c.Name),
		WorldID:         c.WorldID.Int,
		RegionID:        c.RegionID.Ptr(),
		ImageURL:        c.ImageURL,
		Description:     c.Description,
		CreatureType:    c.CreatureType,
		Rarity:          rarity,
		ChallengeRating: string(c.ChallengeRating),
		ArmorClass:      c.ArmorClass.Ptr(),
		HitPoints:       string(c.HitPoints),
		Speed:           c.Speed,
		Abilities:       datatypes.NewJSONType(abilities),
		SpecialAttacks:  datatypes.JSONSlice[string](cleanList(c.SpecialAttacks)),
		ElementType:     c.ElementType,
	}
}

type InsertSpell struct {
	Name               string  `json:"name"`
	WorldID            NullInt `json:"worldId"`
	Level              NullInt `json:"level"`
	School             string  `json:"school"`
	CastingTime        string  `json:"castingTime"`
	Range              string  `json:"range"`
	Components         string  `json:"components"`
	Duration           string  `json:"duration"`
	Description        string  `json:"description"`
	ImageURL           string  `json:"imageUrl"`
	CreatorCharacterID NullInt `json:"creatorCharacterId"`
}

func (s InsertSpell) Validate() error {
	v := NewValidationError()
	v.minLength("name", s.Name, 2, "Spell name must have at least 2 characters")
	v.required("worldId", s.WorldID)
	if s.Level.Valid && (s.Level.Int < 0 || s.Level.Int > 9) {
		v.Add("level", "must be between 0 and 9")
	}
	return v.Err()
}

func (s InsertSpell) ToSpell() *Spell {
	return &Spell{
		Name:               strings.TrimSpace(s.Name),
		WorldID:            s.WorldID.Int,
		Level:              s.Level.Ptr(),
		School:             s.School,
		CastingTime:        s.CastingTime,
		Range:              s.Range,
		Components:         s.Components,
		Duration:           s.Duration,
		Description:        s.Description,
		ImageURL:           s.ImageURL,
		CreatorCharacterID: s.CreatorCharacterID.Ptr(),
	}
}

// InsertLoreEntry is used both to create a lore entry and, via PUT, to replace one.
type InsertLoreEntry struct {
	Title    string  `json:"title"`
	WorldID  NullInt `json:"worldId"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	ImageURL string  `json:"imageUrl"`
}

func (l InsertLoreEntry) Validate() error {
	v := NewValidationError()
	v.minLength("title", l.Title, 1, "Title is required")
	v.minLength("content", l.Content, 1, "Content is required")
	v.minLength("category", l.Category, 1, "Category is required")
	v.required("worldId", l.WorldID)
	return v.Err()
}

func (l InsertLoreEntry) ToLoreEntry() *LoreEntry {
	return &LoreEntry{
		Title:    strings.TrimSpace(l.Title),
		WorldID:  l.WorldID.Int,
		Content:  l.Content,
		Category: strings.TrimSpace(l.Category),
		ImageURL: l.ImageURL,
	}
}

// InsertUser registers an account. The password is hashed by the store.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u InsertUser) Validate() error {
	v := NewValidationError()
	v.minLength("username", u.Username, 2, "Username must have at least 2 characters")
	v.minLength("password", u.Password, 8, "Password must have at least 8 characters")
	return v.Err()
}
