/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/clog"
	"github.com/realmkeeper/realmkeeper/pkg/config"
	"github.com/realmkeeper/realmkeeper/pkg/imagestore"
	"github.com/realmkeeper/realmkeeper/pkg/notify"
	"github.com/realmkeeper/realmkeeper/pkg/qcache"
	"github.com/realmkeeper/realmkeeper/pkg/rdb"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/stor"
	"github.com/realmkeeper/realmkeeper/pkg/realmd"
	"github.com/spf13/cobra"
)

var (
	inMemory    bool
	autoMigrate bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "realmd",
	Short: "Run the realmkeeper API server",
	Long: `Run the realmkeeper API server. Configuration comes from the environment,
optionally loaded from the dotenv file named by REALM_DOTENV_PATH.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		c := config.NewMapConfig(flagOverrides(cmd)).WithFallback(config.MustLoadFromDotenv())
		if err := Run(ctx, c); err != nil {
			log.Fatalf("realmd: %s", err)
		}
	},
}

// flagOverrides returns the config keys set explicitly on the command line.
func flagOverrides(cmd *cobra.Command) map[string]string {
	overrides := map[string]string{}
	flagKeys := map[string]string{
		"port":           "REALM_PORT",
		"log-level":      "REALM_LOG_LEVEL",
		"require-apikey": "REALM_REQUIRE_APIKEY",
	}

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	return overrides
}

func Run(ctx context.Context, c config.Configer) error {
	if err := clog.Setup(c.GetKeyWithDefault("REALM_LOG_LEVEL", "info")); err != nil {
		return errors.Wrap(err, "REALM_LOG_LEVEL")
	}

	deps, err := buildDeps(c)
	if err != nil {
		return err
	}

	go deps.Hub.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if err := realmd.NewServer(e, deps).Init(); err != nil {
		return err
	}

	addr := ":" + c.GetKeyWithDefault("REALM_PORT", "5000")
	go func() {
		log.Infof("realmd listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Unable to start server: %s", err)
		}
	}()

	<-ctx.Done()
	log.Infof("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func buildDeps(c config.Configer) (realmd.Deps, error) {
	cacheTTL := time.Duration(c.GetIntKeyWithDefault("REALM_CACHE_TTL", 300)) * time.Second

	if inMemory {
		log.Infof("Using in-memory database, cache and image store")
		deps, err := realmd.NewMemoryDeps(cacheTTL)
		deps.RequireAPIKey = c.GetBoolKeyWithDefault("REALM_REQUIRE_APIKEY", false)
		return deps, err
	}

	db := rdb.MustConnectToDB(c)
	if autoMigrate {
		if err := rdb.RunMigrations(db); err != nil {
			return realmd.Deps{}, errors.Wrap(err, "migrations failed")
		}
	}

	cache, err := newCache(c, cacheTTL)
	if err != nil {
		return realmd.Deps{}, err
	}

	deps := realmd.Deps{
		Stors:         stor.NewGormStors(db),
		Invalidator:   qcache.NewInvalidator(cache),
		Hub:           notify.NewHub(),
		RequireAPIKey: c.GetBoolKeyWithDefault("REALM_REQUIRE_APIKEY", false),
	}

	if endpoint := c.GetKey("REALM_MINIO_ENDPOINT"); endpoint != "" {
		images, err := imagestore.NewMinioStore(endpoint,
			c.MustGetKey("REALM_MINIO_ACCESS_KEY"),
			c.MustGetKey("REALM_MINIO_SECRET_KEY"),
			c.GetKeyWithDefault("REALM_MINIO_BUCKET", "realmkeeper"),
			c.GetBoolKeyWithDefault("REALM_MINIO_SSL", false))
		if err != nil {
			return realmd.Deps{}, err
		}
		deps.Images = images
	} else {
		log.Infof("REALM_MINIO_ENDPOINT not set, image uploads disabled")
	}

	return deps, nil
}

// newCache uses redis when REALM_REDIS_ADDR is set so that several realmd
// instances share one response cache.
func newCache(c config.Configer, ttl time.Duration) (qcache.Cache, error) {
	addr := c.GetKey("REALM_REDIS_ADDR")
	if addr == "" {
		return qcache.NewMemoryCache(ttl), nil
	}

	cache := qcache.NewRedisCache(addr, c.GetKey("REALM_REDIS_PASSWORD"), ttl)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		return nil, errors.Wrapf(err, "redis at %s", addr)
	}

	log.Infof("Using redis response cache at %s", addr)
	return cache, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&inMemory, "memory", false, "Run against an in-memory database (nothing is saved)")
	rootCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "Run database migrations before serving")
	rootCmd.Flags().String("port", "5000", "Port to listen on (overrides REALM_PORT)")
	rootCmd.Flags().String("log-level", "info", "Default log level (overrides REALM_LOG_LEVEL)")
	rootCmd.Flags().Bool("require-apikey", false, "Reject requests without an API key (overrides REALM_REQUIRE_APIKEY)")
}
