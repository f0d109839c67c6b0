// Package db defines the contract for storage engine access.
package db

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/filmsurvey/ratedb/pkg/config"
)

// Engine names accepted by the operators and shared SQL builders.
const (
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
)

// Operator defines the interface for basic database management
// operations. It provides connection lifecycle management and exposes a
// *sql.DB handle for the lifecycle components (SchemaManager, Ingestor,
// Loader) to execute their specialized SQL internally.
//
// Design rationale:
// - Keeps interface minimal to avoid bloat with mixed semantics
//   - DB() lets components share one SQL path across both engines
//     (the postgres operator adapts its pgx pool via stdlib)
//   - Schema creation on postgres is handled by GORM AutoMigrate via
//     SchemaManager
type Operator interface {
	// Connect acquires the store handle: opens the SQLite file or
	// establishes a connection pool to PostgreSQL.
	Connect(context.Context, *config.Config) error

	// Close releases the store handle. Safe to call when not connected.
	Close() error

	// DB returns the database handle for components to execute
	// transactions, bulk inserts and join queries. Nil before Connect.
	DB() *sql.DB

	// Engine returns which storage backend this operator drives,
	// EngineSQLite or EnginePostgres.
	Engine() string

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any user tables.
	// Used to determine if schema creation should prompt for
	// confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all user tables.
	// Used during schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error
}

// Placeholder returns the bind-parameter placeholder for the engine:
// "?" for sqlite, "$n" for postgres. n is 1-based.
func Placeholder(engine string, n int) string {
	if engine == EnginePostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}
