package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
)

type CharacterController struct {
	worldStor     stor.WorldStor
	characterStor stor.CharacterStor
	invalidator   *qcache.Invalidator
}

func NewCharacterController(stors *stor.Stors, invalidator *qcache.Invalidator) *CharacterController {
	return &CharacterController{
		worldStor:     stors.WorldStor,
		characterStor: stors.CharacterStor,
		invalidator:   invalidator,
	}
}

func (cc *CharacterController) ListCharactersForWorld(c echo.Context) error {
	return listForWorld(c, cc.worldStor, cc.characterStor.ListCharactersForWorld)
}

func (cc *CharacterController) GetCharacter(c echo.Context) error {
	return getByID(c, cc.characterStor.GetCharacterByID)
}

func (cc *CharacterController) CreateCharacter(c echo.Context) error {
	var req model.InsertCharacter
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	character, err := cc.characterStor.CreateCharacter(req.ToCharacter())
	if err != nil {
		return toHTTPError(err)
	}

	invalidate(c, cc.invalidator, qcache.CollectionChangedKeys(character.WorldID, qcache.Characters)...)

	return c.JSON(http.StatusCreated, character)
}
