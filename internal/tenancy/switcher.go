package tenancy

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

// SchemaSwitcher changes the active schema of a checked-out connection.
// It is the one dialect-specific seam of the router, which keeps the
// checkout/release invariants testable without a PostgreSQL instance.
type SchemaSwitcher interface {
	// Use points conn at schema.
	Use(ctx context.Context, conn *sql.Conn, schema string) error
	// Reset points conn back at the default schema. Must succeed before
	// the connection may rejoin the shared pool.
	Reset(ctx context.Context, conn *sql.Conn) error
}

var schemaIdentifier = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// searchPathSwitcher switches schemas with SET search_path.
type searchPathSwitcher struct {
	defaultSchema string
}

func NewSearchPathSwitcher(defaultSchema string) SchemaSwitcher {
	return &searchPathSwitcher{defaultSchema: defaultSchema}
}

func (s *searchPathSwitcher) Use(ctx context.Context, conn *sql.Conn, schema string) error {
	if !schemaIdentifier.MatchString(schema) {
		return fmt.Errorf("invalid schema name %q", schema)
	}
	if _, err := conn.ExecContext(ctx, fmt.Sprintf("SET search_path TO %q", schema)); err != nil {
		return fmt.Errorf("set search_path to %s: %w", schema, err)
	}
	return nil
}

func (s *searchPathSwitcher) Reset(ctx context.Context, conn *sql.Conn) error {
	if _, err := conn.ExecContext(ctx, fmt.Sprintf("SET search_path TO %q", s.defaultSchema)); err != nil {
		return fmt.Errorf("reset search_path: %w", err)
	}
	return nil
}
