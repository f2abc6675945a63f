package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/clog"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
)

// toHTTPError maps store and validation errors onto the API's error responses.
// Anything unrecognised is logged and reported as a 500 without detail.
func toHTTPError(err error) error {
	var verr *model.ValidationError

	switch {
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, echo.Map{
			"message": "validation failed",
			"fields":  verr.Fields,
		})
	case errors.Is(err, stor.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, stor.ErrInvalidReference):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, stor.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		clog.For("api").Errorf("Request failed: %s", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

// bindError keeps echo's own 400s and turns decoding errors from the coercing
// field types (NullInt, StringList...) into 400s too.
func bindError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

// idParam reads a positive id path parameter. Only the canonical decimal form is
// accepted ("01" and "+1" are rejected) so each record has one URL, which is the
// URL cache invalidation clears.
func idParam(c echo.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 || strconv.Itoa(id) != raw {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}

// getByID serves a single record looked up by the :id path parameter.
func getByID[T any](c echo.Context, get func(id int) (*T, error)) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	record, err := get(id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, record)
}

// worldIDParam reads the :id path parameter and checks the world exists, so
// collection lists for a missing world are a 404 rather than an empty list.
func worldIDParam(c echo.Context, worldStor stor.WorldStor) (int, error) {
	worldID, err := idParam(c, "id")
	if err != nil {
		return 0, err
	}

	if _, err := worldStor.GetWorldByID(worldID); err != nil {
		return 0, toHTTPError(err)
	}

	return worldID, nil
}

func listForWorld[T any](c echo.Context, worldStor stor.WorldStor, list func(worldID int) ([]T, error)) error {
	worldID, err := worldIDParam(c, worldStor)
	if err != nil {
		return err
	}

	items, err := list(worldID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, items)
}
