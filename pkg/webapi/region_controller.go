package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
)

type RegionController struct {
	worldStor   stor.WorldStor
	regionStor  stor.RegionStor
	invalidator *qcache.Invalidator
}

func NewRegionController(stors *stor.Stors, invalidator *qcache.Invalidator) *RegionController {
	return &RegionController{
		worldStor:   stors.WorldStor,
		regionStor:  stors.RegionStor,
		invalidator: invalidator,
	}
}

func (rc *RegionController) ListRegionsForWorld(c echo.Context) error {
	return listForWorld(c, rc.worldStor, rc.regionStor.ListRegionsForWorld)
}

func (rc *RegionController) CreateRegion(c echo.Context) error {
	var req model.InsertRegion
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	region, err := rc.regionStor.CreateRegion(req.ToRegion())
	if err != nil {
		return toHTTPError(err)
	}

	invalidate(c, rc.invalidator, qcache.CollectionChangedKeys(region.WorldID, qcache.Regions)...)

	return c.JSON(http.StatusCreated, region)
}
