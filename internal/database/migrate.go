package database

import (
	"embed"
	"errors"
	"fmt"
	"log"

	migrate "github.com/golang-migrate/migrate/v4"
	// Registers the postgres driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"warehouse/internal/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func newMigrator(cfg config.DatabaseConfig) (*migrate.Migrate, error) {
	if cfg.Driver != DriverPostgres && cfg.Driver != "" {
		return nil, fmt.Errorf("sql migrations require postgres, got %q (use DB_AUTO_MIGRATE for sqlite)", cfg.Driver)
	}
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", src, cfg.URL())
}

// MigrateUp applies every pending migration
func MigrateUp(cfg config.DatabaseConfig) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	version, dirty, _ := m.Version()
	log.Printf("migrations applied: version=%d dirty=%v", version, dirty)
	return nil
}

// MigrateDown rolls back the given number of migrations
func MigrateDown(cfg config.DatabaseConfig, steps int) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if steps <= 0 {
		steps = 1
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	log.Printf("rolled back %d migration(s)", steps)
	return nil
}
