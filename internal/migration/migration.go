// Package migration applies the embedded SQL migrations: one set for the
// shared default schema (tenant registry, cross-tenant identity) and one
// set replayed into every tenant schema during provisioning.
package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/default/*.sql sql/tenant/*.sql
var embeddedMigrations embed.FS

const (
	defaultMigrationsDir = "sql/default"
	tenantMigrationsDir  = "sql/tenant"
)

// RunDefaultMigrations applies the default-schema migrations so the tenant
// registry is usable out of the box.
func RunDefaultMigrations(db *sql.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	source, err := newSource(defaultMigrationsDir)
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}
	// Do not call migrator.Close here because it would close the shared *sql.DB.

	return nil
}

func newSource(dir string) (source.Driver, error) {
	sub, err := fs.Sub(embeddedMigrations, dir)
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return nil, fmt.Errorf("create migration source: %w", err)
	}
	return source, nil
}
