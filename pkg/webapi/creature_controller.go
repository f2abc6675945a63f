package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
)

type CreatureController struct {
	worldStor    stor.WorldStor
	creatureStor stor.CreatureStor
	invalidator  *qcache.Invalidator
}

func NewCreatureController(stors *stor.Stors, invalidator *qcache.Invalidator) *CreatureController {
	return &CreatureController{
		worldStor:    stors.WorldStor,
		creatureStor: stors.CreatureStor,
		invalidator:  invalidator,
	}
}

func (cc *CreatureController) ListCreaturesForWorld(c echo.Context) error {
	return listForWorld(c, cc.worldStor, cc.creatureStor.ListCreaturesForWorld)
}

func (cc *CreatureController) GetCreature(c echo.Context) error {
	return getByID(c, cc.creatureStor.GetCreatureByID)
}

func (cc *CreatureController) CreateCreature(c echo.Context) error {
	var req model.InsertCreature
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	creature, err := cc.creatureStor.CreateCreature(req.ToCreature())
	if err != nil {
		return toHTTPError(err)
	}

	invalidate(c, cc.invalidator, qcache.CollectionChangedKeys(creature.WorldID, qcache.Creatures)...)

	return c.JSON(http.StatusCreated, creature)
}
