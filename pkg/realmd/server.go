// Package realmd assembles the realmkeeper HTTP API: middleware, controllers and
// the invalidation fan-out.
package realmd

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/realmkeeper/realmkeeper/pkg/clog"
	"github.com/realmkeeper/realmkeeper/pkg/imagestore"
	"github.com/realmkeeper/realmkeeper/pkg/notify"
	"github.com/realmkeeper/realmkeeper/pkg/obj"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
	"github.com/realmkeeper/realmkeeper/pkg/webapi"
	"github.com/realmkeeper/realmkeeper/pkg/webapi/apimiddleware"
)

// Deps are the services the server routes to. Hub and Images are optional; without
// them /api/ws and /api/images are not registered.
type Deps struct {
	Stors         *stor.Stors
	Invalidator   *qcache.Invalidator
	Hub           *notify.Hub
	Images        imagestore.ObjectStore
	Loggers       *clog.Loggers
	RequireAPIKey bool
}

type Server struct {
	e    *echo.Echo
	deps Deps
}

func NewServer(e *echo.Echo, deps Deps) *Server {
	if deps.Loggers == nil {
		deps.Loggers = clog.Default()
	}

	return &Server{e: e, deps: deps}
}

func (s *Server) Init() error {
	s.e.Use(middleware.Recover())
	s.e.Use(middleware.RequestID())
	s.e.Use(apimiddleware.RequestLog())

	apikeyCache := apimiddleware.NewAPIKeyCache(s.deps.Stors.UserStor)
	s.e.Use(apimiddleware.APIKeyAuth(apimiddleware.APIKeyConfig{
		Skipper:         skipAuth,
		Keyname:         "apikey",
		GetUserByAPIKey: apikeyCache.GetUserByAPIKey,
		Optional:        !s.deps.RequireAPIKey,
	}))

	s.e.Use(apimiddleware.ResponseCache(apimiddleware.ResponseCacheConfig{
		Skipper:     skipCache,
		Invalidator: s.deps.Invalidator,
	}))

	if !obj.IsNil(s.deps.Hub) {
		s.deps.Invalidator.OnInvalidate(s.deps.Hub.BroadcastInvalidate)
	}

	s.setupRoutes()
	return nil
}

func (s *Server) setupRoutes() {
	s.e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	g := s.e.Group("/api")
	inv := s.deps.Invalidator
	stors := s.deps.Stors

	worldController := webapi.NewWorldController(stors.WorldStor, inv)
	g.GET("/worlds", worldController.ListWorlds)
	g.POST("/worlds", worldController.CreateWorld)
	g.GET("/worlds/by-slug/:slug", worldController.GetWorldBySlug)
	g.GET("/worlds/:id", worldController.GetWorld)

	regionController := webapi.NewRegionController(stors, inv)
	g.GET("/worlds/:id/regions", regionController.ListRegionsForWorld)
	g.POST("/regions", regionController.CreateRegion)

	locationController := webapi.NewLocationController(stors, inv)
	g.GET("/worlds/:id/locations", locationController.ListLocationsForWorld)
	g.GET("/regions/:id/locations", locationController.ListLocationsForRegion)
	g.GET("/locations/:id", locationController.GetLocation)
	g.POST("/locations", locationController.CreateLocation)

	characterController := webapi.NewCharacterController(stors, inv)
	g.GET("/worlds/:id/characters", characterController.ListCharactersForWorld)
	g.GET("/characters/:id", characterController.GetCharacter)
	g.POST("/characters", characterController.CreateCharacter)

	creatureController := webapi.NewCreatureController(stors, inv)
	g.GET("/worlds/:id/creatures", creatureController.ListCreaturesForWorld)
	g.GET("/creatures/:id", creatureController.GetCreature)
	g.POST("/creatures", creatureController.CreateCreature)

	spellController := webapi.NewSpellController(stors, inv)
	g.GET("/worlds/:id/spells", spellController.ListSpellsForWorld)
	g.GET("/spells/:id", spellController.GetSpell)
	g.POST("/spells", spellController.CreateSpell)

	loreController := webapi.NewLoreController(stors, inv)
	g.GET("/worlds/:id/lore", loreController.ListLoreForWorld)
	g.GET("/lore/:id", loreController.GetLoreEntry)
	g.POST("/lore", loreController.CreateLoreEntry)
	g.PUT("/lore/:id", loreController.UpdateLoreEntry)
	g.DELETE("/lore/:id", loreController.DeleteLoreEntry)

	userController := webapi.NewUserController(stors)
	g.POST("/users", userController.CreateUser)
	g.POST("/users/login", userController.Login)
	g.GET("/users/me/worlds", userController.ListMyWorlds)

	if !obj.IsNil(s.deps.Images) {
		imageController := webapi.NewImageController(s.deps.Images)
		g.POST("/images", imageController.UploadImage)
		g.GET("/images/*", imageController.GetImage)
	}

	if !obj.IsNil(s.deps.Hub) {
		g.GET("/ws", echo.WrapHandler(http.HandlerFunc(s.deps.Hub.ServeWS)))
	}

	logController := webapi.NewLogController(s.deps.Loggers)
	admin := s.e.Group("/admin")
	admin.GET("/logging", logController.ShowCurrentLogging)
	admin.PUT("/logging", logController.SetLogging)
}

// skipAuth lets health checks, registration and login through without a key.
func skipAuth(c echo.Context) bool {
	path := c.Request().URL.Path
	if path == "/healthz" {
		return true
	}

	return c.Request().Method == http.MethodPost && (path == "/api/users" || path == "/api/users/login")
}

// skipCache limits response caching to the world and region collection reads.
func skipCache(c echo.Context) bool {
	path := c.Request().URL.Path
	return !strings.HasPrefix(path, "/api/worlds") && !strings.HasPrefix(path, "/api/regions")
}
