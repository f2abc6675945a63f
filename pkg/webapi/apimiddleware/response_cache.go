package apimiddleware

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/realmkeeper/realmkeeper/pkg/clog"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
)

const HeaderXCache = "X-Cache"

type ResponseCacheConfig struct {
	Skipper     middleware.Skipper
	Invalidator *qcache.Invalidator
}

// ResponseCache serves GET responses from the cache keyed by URL path, and stores
// successful responses on a miss. The lookup, handler and store all run under the
// key's lock, so an Invalidate for the key either sees the stored body or runs
// before the handler reads the database.
func ResponseCache(config ResponseCacheConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet || config.Skipper(c) {
				return next(c)
			}

			key := c.Request().URL.Path
			ctx := c.Request().Context()
			cache := config.Invalidator.Cache()

			return config.Invalidator.WithKeyLock(key, func() error {
				body, found, err := cache.Get(ctx, key)
				if err != nil {
					clog.For("qcache").Warnf("Cache get %s failed: %s", key, err)
				}

				if found {
					c.Response().Header().Set(HeaderXCache, "HIT")
					return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, body)
				}

				c.Response().Header().Set(HeaderXCache, "MISS")
				rec := &bodyRecorder{ResponseWriter: c.Response().Writer}
				c.Response().Writer = rec
				defer func() { c.Response().Writer = rec.ResponseWriter }()

				if err := next(c); err != nil {
					return err
				}

				if c.Response().Status == http.StatusOK {
					if err := cache.Set(ctx, key, rec.body.Bytes()); err != nil {
						clog.For("qcache").Warnf("Cache set %s failed: %s", key, err)
					}
				}

				return nil
			})
		}
	}
}

type bodyRecorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
