package db

import (
	"database/sql"
	"fmt"

	"deepsheep/internal/config"
	"deepsheep/internal/util"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/sirupsen/logrus"

	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                // needed
)

var instance *sql.DB

// Instance returns a database instance
// It panics if the database cannot be reached.
func Instance() *sql.DB {
	if instance == nil {
		LoadInstance()
	}

	return instance
}

// DSN returns the connection string, PG_DSN takes precedence over the configuration
func DSN() string {
	return util.Getenv("PG_DSN", config.Instance().PGDSN)
}

// LoadInstance will load the database instance
func LoadInstance() {
	db, err := sql.Open("postgres", DSN())
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		panic(err)
	}

	instance = db
}

// Migrate runs the migrations
func Migrate() error {
	migrationsPath := util.Getenv("MIGRATIONS_PATH", config.Instance().MigrationsPath)
	db := Instance()

	logrus.WithField("migrationsPath", migrationsPath).Info("running migrations")
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}

// Scanner is an interface that sql should've provided
// No snark here...
type Scanner interface {
	Scan(...interface{}) error
}
