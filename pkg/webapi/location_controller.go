package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
)

type LocationController struct {
	worldStor    stor.WorldStor
	regionStor   stor.RegionStor
	locationStor stor.LocationStor
	invalidator  *qcache.Invalidator
}

func NewLocationController(stors *stor.Stors, invalidator *qcache.Invalidator) *LocationController {
	return &LocationController{
		worldStor:    stors.WorldStor,
		regionStor:   stors.RegionStor,
		locationStor: stors.LocationStor,
		invalidator:  invalidator,
	}
}

func (lc *LocationController) ListLocationsForWorld(c echo.Context) error {
	return listForWorld(c, lc.worldStor, lc.locationStor.ListLocationsForWorld)
}

func (lc *LocationController) GetLocation(c echo.Context) error {
	return getByID(c, lc.locationStor.GetLocationByID)
}

func (lc *LocationController) ListLocationsForRegion(c echo.Context) error {
	regionID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := lc.regionStor.GetRegionByID(regionID); err != nil {
		return toHTTPError(err)
	}

	locations, err := lc.locationStor.ListLocationsForRegion(regionID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, locations)
}

func (lc *LocationController) CreateLocation(c echo.Context) error {
	var req model.InsertLocation
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	location, err := lc.locationStor.CreateLocation(req.ToLocation())
	if err != nil {
		return toHTTPError(err)
	}

	// Locations only know their region; the world list is found through it.
	if region, err := lc.regionStor.GetRegionByID(location.RegionID); err == nil {
		invalidate(c, lc.invalidator, qcache.LocationCreatedKeys(region.WorldID, region.ID)...)
	} else {
		invalidate(c, lc.invalidator, qcache.RegionLocationsKey(location.RegionID))
	}

	return c.JSON(http.StatusCreated, location)
}
