package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
	"github.com/realmkeeper/realmkeeper/pkg/webapi/apimiddleware"
)

type WorldController struct {
	worldStor   stor.WorldStor
	invalidator *qcache.Invalidator
}

func NewWorldController(worldStor stor.WorldStor, invalidator *qcache.Invalidator) *WorldController {
	return &WorldController{worldStor: worldStor, invalidator: invalidator}
}

func (wc *WorldController) ListWorlds(c echo.Context) error {
	worlds, err := wc.worldStor.ListWorlds()
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, worlds)
}

func (wc *WorldController) GetWorld(c echo.Context) error {
	worldID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	world, err := wc.worldStor.GetWorldByID(worldID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, world)
}

func (wc *WorldController) GetWorldBySlug(c echo.Context) error {
	world, err := wc.worldStor.GetWorldBySlug(c.Param("slug"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, world)
}

// CreateWorld stores a new world. When the request is authenticated the world
// belongs to that user regardless of the userId in the body.
func (wc *WorldController) CreateWorld(c echo.Context) error {
	var req model.InsertWorld
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	if user := apimiddleware.UserFromContext(c); user != nil {
		req.UserID = model.IntOf(user.ID)
	}

	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	world, err := wc.worldStor.CreateWorld(req.ToWorld())
	if err != nil {
		return toHTTPError(err)
	}

	invalidate(c, wc.invalidator, qcache.WorldCreatedKeys()...)

	return c.JSON(http.StatusCreated, world)
}
