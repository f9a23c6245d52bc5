// Package sqlite reads table definitions out of existing SQLite databases.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/koagen/internal/ports/secondary"
)

// DDLSource implements secondary.StatementSource by reading the CREATE TABLE
// text SQLite keeps in sqlite_master. SQLite stores the statement as it was
// written, so backtick-quoted identifiers survive.
type DDLSource struct {
	path  string
	table string
}

// NewDDLSource creates a source for table in the database file at path.
func NewDDLSource(path, table string) *DDLSource {
	return &DDLSource{path: path, table: table}
}

// Name describes the source.
func (s *DDLSource) Name() string {
	return fmt.Sprintf("sqlite:%s#%s", s.path, s.table)
}

// ReadStatement returns the stored CREATE TABLE statement for the table.
func (s *DDLSource) ReadStatement(ctx context.Context) (string, error) {
	if s.table == "" {
		return "", fmt.Errorf("table name is required")
	}

	db, err := openReadOnly(s.path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	var ddl sql.NullString
	err = db.QueryRowContext(ctx,
		"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", s.table,
	).Scan(&ddl)
	if errors.Is(err, sql.ErrNoRows) {
		tables, listErr := listTables(ctx, db)
		if listErr != nil {
			return "", fmt.Errorf("table %q not found in %s", s.table, s.path)
		}
		return "", fmt.Errorf("table %q not found in %s (tables: %v)", s.table, s.path, tables)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read table definition: %w", err)
	}
	if !ddl.Valid {
		return "", fmt.Errorf("table %q has no stored definition", s.table)
	}

	return ddl.String, nil
}

// ListTables returns the user tables of the database, ordered by name.
func (s *DDLSource) ListTables(ctx context.Context) ([]string, error) {
	db, err := openReadOnly(s.path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return listTables(ctx, db)
}

// openReadOnly opens an existing database file without the ability to
// create or modify it.
func openReadOnly(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func listTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// Ensure DDLSource implements the interface
var _ secondary.StatementSource = (*DDLSource)(nil)
