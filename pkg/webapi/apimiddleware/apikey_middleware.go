package apimiddleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
)

// UserContextKey is where APIKeyAuth stores the authenticated *model.User.
const UserContextKey = "user"

type GetUserByAPIKeyFN func(string) (*model.User, error)

type APIKeyConfig struct {
	Skipper         middleware.Skipper
	Keyname         string
	GetUserByAPIKey GetUserByAPIKeyFN

	// Optional lets requests without a key through anonymously. A key that is
	// present but unknown is still rejected.
	Optional bool
}

func APIKeyAuth(config APIKeyConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			value, err := getAPIKeyFromRequest(config.Keyname, c)
			switch {
			case err != nil && config.Optional:
				return next(c)
			case err != nil:
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			user, err := config.GetUserByAPIKey(value)
			switch {
			case err != nil:
				return echo.ErrUnauthorized
			case user == nil:
				return echo.ErrUnauthorized
			default:
				c.Set(UserContextKey, user)
				return next(c)
			}
		}
	}
}

// UserFromContext returns the user set by APIKeyAuth, or nil for anonymous requests.
func UserFromContext(c echo.Context) *model.User {
	user, _ := c.Get(UserContextKey).(*model.User)
	return user
}

func getAPIKeyFromRequest(key string, c echo.Context) (string, error) {
	if value, err := keyFromBearer(c); err == nil {
		return value, nil
	}

	if value, err := keyFromHeader(key, c); err == nil {
		return value, nil
	}

	if value, err := keyFromQuery(key, c); err == nil {
		return value, nil
	}

	return "", fmt.Errorf("no apikey '%s' as query param or header", key)
}

func keyFromBearer(c echo.Context) (string, error) {
	scheme, token, found := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", fmt.Errorf("no bearer token")
	}
	return token, nil
}

func keyFromHeader(key string, c echo.Context) (string, error) {
	value := c.Request().Header.Get(key)
	if value == "" {
		return "", fmt.Errorf("no apikey '%s' as header", key)
	}
	return value, nil
}

func keyFromQuery(key string, c echo.Context) (string, error) {
	value := c.QueryParam(key)
	if value == "" {
		return "", fmt.Errorf("no apikey '%s' as query param", key)
	}
	return value, nil
}
