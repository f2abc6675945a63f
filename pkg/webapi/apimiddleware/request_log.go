package apimiddleware

import (
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/realmkeeper/realmkeeper/pkg/clog"
)

// RequestLog writes one line per request to the "http" component logger. Put it
// after middleware.RequestID so the id is available.
func RequestLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Let echo write the error response so the logged status is the real one.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			entry := clog.For("http").WithFields(log.Fields{
				"method":      req.Method,
				"path":        req.URL.Path,
				"status":      res.Status,
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  res.Header().Get(echo.HeaderXRequestID),
			})

			if cacheStatus := res.Header().Get(HeaderXCache); cacheStatus != "" {
				entry = entry.WithField("cache", cacheStatus)
			}

			if res.Status >= 500 {
				entry.Error("http_request")
			} else {
				entry.Info("http_request")
			}

			return nil
		}
	}
}
