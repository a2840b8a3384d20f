package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	pkgdb "actor-catalog/pkg/database"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(255) PRIMARY KEY,
    applied_at TIMESTAMPTZ  NOT NULL DEFAULT now()
)`

// createSchemaStatement returns the DDL for a non-default schema, or "" for public.
func createSchemaStatement(schema string) string {
	if schema == "" {
		return ""
	}
	return "CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(schema)
}

// Migration is one embedded SQL file.
type Migration struct {
	Version string
	SQL     string
}

// LoadMigrations returns the embedded migrations sorted by file name.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationFiles, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	var out []Migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		body, err := fs.ReadFile(fsys, dir+"/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", e.Name(), err)
		}
		out = append(out, Migration{
			Version: strings.TrimSuffix(e.Name(), ".sql"),
			SQL:     string(body),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Migrate applies every pending embedded migration, each in its own transaction.
// A non-empty schema is created first. It returns the versions applied by this call.
func Migrate(ctx context.Context, db pkgdb.Beginner, schema string) ([]string, error) {
	migrations, err := LoadMigrations()
	if err != nil {
		return nil, err
	}

	if err := pkgdb.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		if stmt := createSchemaStatement(schema); stmt != "" {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		_, err := tx.Exec(ctx, createMigrationsTable)
		return err
	}); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var applied []string
	for _, m := range migrations {
		done, err := pkgdb.WithTransactionResult(ctx, db, func(tx pgx.Tx) (bool, error) {
			var exists bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, m.Version,
			).Scan(&exists); err != nil {
				return false, err
			}
			if exists {
				return false, nil
			}
			if _, err := tx.Exec(ctx, m.SQL); err != nil {
				return false, err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version)
			return err == nil, err
		})
		if err != nil {
			return applied, fmt.Errorf("migration %s: %w", m.Version, err)
		}
		if done {
			log.Info().Str("version", m.Version).Msg("[DATABASE] migration applied")
			applied = append(applied, m.Version)
		}
	}

	return applied, nil
}
