package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
)

// LoreController is the only entity controller with update and delete; the
// other collections are create-only over HTTP.
type LoreController struct {
	worldStor     stor.WorldStor
	loreEntryStor stor.LoreEntryStor
	invalidator   *qcache.Invalidator
}

func NewLoreController(stors *stor.Stors, invalidator *qcache.Invalidator) *LoreController {
	return &LoreController{
		worldStor:     stors.WorldStor,
		loreEntryStor: stors.LoreEntryStor,
		invalidator:   invalidator,
	}
}

func (lc *LoreController) ListLoreForWorld(c echo.Context) error {
	return listForWorld(c, lc.worldStor, lc.loreEntryStor.ListLoreEntriesForWorld)
}

func (lc *LoreController) GetLoreEntry(c echo.Context) error {
	return getByID(c, lc.loreEntryStor.GetLoreEntryByID)
}

func (lc *LoreController) CreateLoreEntry(c echo.Context) error {
	var req model.InsertLoreEntry
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	entry, err := lc.loreEntryStor.CreateLoreEntry(req.ToLoreEntry())
	if err != nil {
		return toHTTPError(err)
	}

	invalidate(c, lc.invalidator, qcache.CollectionChangedKeys(entry.WorldID, qcache.Lore)...)

	return c.JSON(http.StatusCreated, entry)
}

func (lc *LoreController) UpdateLoreEntry(c echo.Context) error {
	entryID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req model.InsertLoreEntry
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	entry, err := lc.loreEntryStor.UpdateLoreEntry(entryID, req.ToLoreEntry())
	if err != nil {
		return toHTTPError(err)
	}

	invalidate(c, lc.invalidator, qcache.CollectionChangedKeys(entry.WorldID, qcache.Lore)...)

	return c.JSON(http.StatusOK, entry)
}

func (lc *LoreController) DeleteLoreEntry(c echo.Context) error {
	entryID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	entry, err := lc.loreEntryStor.DeleteLoreEntry(entryID)
	if err != nil {
		return toHTTPError(err)
	}

	invalidate(c, lc.invalidator, qcache.CollectionChangedKeys(entry.WorldID, qcache.Lore)...)

	return c.NoContent(http.StatusNoContent)
}
