package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
)

type SpellController struct {
	worldStor   stor.WorldStor
	spellStor   stor.SpellStor
	invalidator *qcache.Invalidator
}

func NewSpellController(stors *stor.Stors, invalidator *qcache.Invalidator) *SpellController {
	return &SpellController{
		worldStor:   stors.WorldStor,
		spellStor:   stors.SpellStor,
		invalidator: invalidator,
	}
}

func (sc *SpellController) ListSpellsForWorld(c echo.Context) error {
	return listForWorld(c, sc.worldStor, sc.spellStor.ListSpellsForWorld)
}

func (sc *SpellController) GetSpell(c echo.Context) error {
	return getByID(c, sc.spellStor.GetSpellByID)
}

func (sc *SpellController) CreateSpell(c echo.Context) error {
	var req model.InsertSpell
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	spell, err := sc.spellStor.CreateSpell(req.ToSpell())
	if err != nil {
		return toHTTPError(err)
	}

	invalidate(c, sc.invalidator, qcache.CollectionChangedKeys(spell.WorldID, qcache.Spells)...)

	return c.JSON(http.StatusCreated, spell)
}
