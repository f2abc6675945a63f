package webapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
	"github.com/realmkeeper/realmkeeper/pkg/webapi/apimiddleware"
)

type UserController struct {
	userStor  stor.UserStor
	worldStor stor.WorldStor
}

func NewUserController(stors *stor.Stors) *UserController {
	return &UserController{userStor: stors.UserStor, worldStor: stors.WorldStor}
}

// RegisteredUser is the registration and login response. These are the only
// responses that carry the API token.
type RegisteredUser struct {
	ID       int    `json:"id"`
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	APIToken string `json:"apiToken"`
}

func (uc *UserController) CreateUser(c echo.Context) error {
	var req model.InsertUser
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	if err := req.Validate(); err != nil {
		return toHTTPError(err)
	}

	user, err := uc.userStor.CreateUser(&model.User{Username: strings.TrimSpace(req.Username)}, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, toRegisteredUser(user))
}

// Login returns the API token for a username and password. Unknown users and
// wrong passwords get the same 401.
func (uc *UserController) Login(c echo.Context) error {
	var req model.InsertUser
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	user, err := uc.userStor.CheckPassword(strings.TrimSpace(req.Username), req.Password)
	switch {
	case errors.Is(err, stor.ErrNotFound):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	case err != nil:
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, toRegisteredUser(user))
}

// ListMyWorlds lists the worlds owned by the user the API key belongs to.
func (uc *UserController) ListMyWorlds(c echo.Context) error {
	user := apimiddleware.UserFromContext(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "an api key is required")
	}

	worlds, err := uc.worldStor.ListWorldsForUser(user.ID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, worlds)
}

func toRegisteredUser(user *model.User) RegisteredUser {
	return RegisteredUser{
		ID:       user.ID,
		UUID:     user.UUID,
		Username: user.Username,
		APIToken: user.APIToken,
	}
}
