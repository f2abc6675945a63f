package rdb

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/realmkeeper/realmkeeper/pkg/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSqlite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// SqliteInMemoryDSN opens a private in-memory database. Callers must limit the pool
// to a single connection or each connection sees its own empty database.
const SqliteInMemoryDSN = ":memory:"

func MakeMySQLDSN(c config.Configer) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.GetKey("DB_USERNAME"),
		c.GetKey("DB_PASSWORD"),
		c.GetKeyWithDefault("DB_HOST", "127.0.0.1"),
		c.GetKeyWithDefault("DB_PORT", "3306"),
		c.GetKey("DB_DATABASE"))
}

func MakePostgresDSN(c config.Configer) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.GetKeyWithDefault("DB_HOST", "127.0.0.1"),
		c.GetKeyWithDefault("DB_PORT", "5432"),
		c.GetKey("DB_USERNAME"),
		c.GetKey("DB_PASSWORD"),
		c.GetKey("DB_DATABASE"),
		c.GetKeyWithDefault("DB_SSLMODE", "disable"))
}

// Dialector picks the gorm driver named by REALM_DB_DRIVER (sqlite by default).
func Dialector(c config.Configer) (gorm.Dialector, error) {
	switch driver := c.GetKeyWithDefault("REALM_DB_DRIVER", DriverSqlite); driver {
	case DriverSqlite:
		return sqlite.Open(c.GetKeyWithDefault("REALM_SQLITE_PATH", "realm.db")), nil
	case DriverMySQL:
		return mysql.Open(MakeMySQLDSN(c)), nil
	case DriverPostgres:
		return postgres.Open(MakePostgresDSN(c)), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
}

const maxDBRetries = 5

// MustConnectToDB will attempt to connect to the database maxDBRetries times. If it isn't successful
// after that number of retries then it will call log.Fatalf(), which will cause the server to exit.
// Between retry attempts it will sleep for 3 seconds.
func MustConnectToDB(c config.Configer) *gorm.DB {
	dialector, err := Dialector(c)
	if err != nil {
		log.Fatalf("Unable to configure db: %s", err)
	}

	retryCount := 1
	for {
		db, err := gorm.Open(dialector, gormConfig())
		switch {
		case err == nil:
			if dialector.Name() == DriverSqlite {
				// sqlite allows a single writer; serialize through one connection.
				limitToOneConnection(db)
			}
			return db
		case retryCount >= maxDBRetries:
			log.Fatalf("Failed to open %s db: %s", dialector.Name(), err)
		default:
			retryCount++
			log.Warnf("Failed to open %s db (attempt %d): %s", dialector.Name(), retryCount-1, err)
			time.Sleep(3 * time.Second)
		}
	}
}

// OpenSqliteInMemory returns a migrated, empty in-memory database. It is used by
// tests and by `realmd serve --memory`.
func OpenSqliteInMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(SqliteInMemoryDSN), gormConfig())
	if err != nil {
		return nil, err
	}

	limitToOneConnection(db)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func limitToOneConnection(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
}
