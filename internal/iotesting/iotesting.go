// Package iotesting provides shared test utilities for integration
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/filmsurvey/ratedb/internal/iodb"
	"github.com/filmsurvey/ratedb/pkg/config"
	"github.com/filmsurvey/ratedb/pkg/db"
)

// SQLiteConfig returns a configuration pointing at a fresh SQLite
// database file under the test's temporary directory. The file
// disappears with the directory when the test finishes, so tests never
// touch a real store.
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseEngine("sqlite"),
		config.OptDatabasePath(filepath.Join(t.TempDir(), "test.sqlite")),
	})
	return cfg
}

// Operator returns a connected SQLite operator over a fresh temporary
// database. The connection is closed via t.Cleanup.
func Operator(t *testing.T) (db.Operator, *config.Config) {
	t.Helper()

	cfg := SQLiteConfig(t)
	op := iodb.NewSQLiteOperator()
	if err := op.Connect(context.Background(), cfg); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { op.Close() })
	return op, cfg
}
