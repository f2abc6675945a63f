package webapi

import (
	"github.com/labstack/echo/v4"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
)

// invalidate drops cached responses after a committed change. The change already
// happened, so failures are logged by the invalidator and not returned.
func invalidate(c echo.Context, inv *qcache.Invalidator, keys ...string) {
	if inv == nil {
		return
	}

	_ = inv.Invalidate(c.Request().Context(), keys...)
}
