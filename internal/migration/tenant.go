package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/kgsoft/estoque/pkg/db"
)

var schemaNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// TenantMigrator replays the tenant-schema migration set into a single
// schema. Running it against an already-migrated schema is a no-op, which
// makes provisioning retries safe.
type TenantMigrator struct {
	cfg db.Config
}

func NewTenantMigrator(cfg db.Config) *TenantMigrator {
	return &TenantMigrator{cfg: cfg}
}

// Migrate creates the schema if needed and applies the tenant table set.
// A dedicated connection pool pinned to the schema's search_path is used
// so the shared pool never observes a non-default search_path.
func (m *TenantMigrator) Migrate(ctx context.Context, schema string) error {
	if !schemaNamePattern.MatchString(schema) {
		return fmt.Errorf("invalid schema name %q", schema)
	}
	// single-schema development database, nothing to replay
	if m.cfg.Type != "postgres" {
		return nil
	}

	sqlDB, err := sql.Open("pgx", m.dsn(schema))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer sqlDB.Close()

	// schema passed the identifier pattern above, quoting is safe
	if _, err := sqlDB.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %q", schema)); err != nil {
		return fmt.Errorf("create schema %s: %w", schema, err)
	}

	source, err := newSource(tenantMigrationsDir)
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{SchemaName: schema})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply tenant migrations to %s: %w", schema, upErr)
	}

	return nil
}

// Drop removes a tenant schema and everything in it. Used to undo a
// provisioning attempt that failed after the schema was created.
func (m *TenantMigrator) Drop(ctx context.Context, schema string) error {
	if !schemaNamePattern.MatchString(schema) {
		return fmt.Errorf("invalid schema name %q", schema)
	}
	if m.cfg.Type != "postgres" {
		return nil
	}

	sqlDB, err := sql.Open("pgx", m.dsn(""))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer sqlDB.Close()

	if _, err := sqlDB.ExecContext(ctx, fmt.Sprintf("DROP SCHEMA IF EXISTS %q CASCADE", schema)); err != nil {
		return fmt.Errorf("drop schema %s: %w", schema, err)
	}
	return nil
}

func (m *TenantMigrator) dsn(searchPath string) string {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		m.cfg.User,
		m.cfg.Password,
		m.cfg.Host,
		m.cfg.Port,
		m.cfg.Name,
		m.cfg.SSLMode,
	)
	if searchPath != "" {
		dsn += "&search_path=" + searchPath
	}
	return dsn
}
