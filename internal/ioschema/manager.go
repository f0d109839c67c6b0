// Package ioschema implements the SchemaManager contract for both
// storage engines. On SQLite the tables come from the models' ddl
// tags; on PostgreSQL it wraps GORM AutoMigrate. This is an impure
// I/O package.
package ioschema

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/filmsurvey/ratedb/pkg/db"
	"github.com/filmsurvey/ratedb/pkg/ratedb"
	"github.com/filmsurvey/ratedb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the ratedb.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) ratedb.SchemaManager {
	return &manager{operator: op}
}

// Create creates the movies and ratings tables if they are absent.
// The operation is idempotent; an existing table with incompatible
// column types fails instead of being altered.
func (m *manager) Create(ctx context.Context) error {
	if m.operator.DB() == nil {
		return NotConnectedError()
	}

	if m.operator.Engine() == db.EnginePostgres {
		return m.createPostgres()
	}
	return m.createSQLite(ctx)
}

// Verify checks that both tables exist with compatible columns.
func (m *manager) Verify(ctx context.Context) error {
	if m.operator.DB() == nil {
		return NotConnectedError()
	}

	for _, model := range schema.Models() {
		exists, err := m.operator.TableExists(ctx, model.TableName())
		if err != nil {
			return err
		}
		if !exists {
			return VerifyError(model.TableName())
		}
		if m.operator.Engine() == db.EngineSQLite {
			if err := m.verifyColumns(ctx, model); err != nil {
				return err
			}
		}
	}
	return nil
}

// createSQLite creates tables from the models' ddl tags. Existing
// tables are verified column by column first, so a conflicting schema
// surfaces before any DDL runs.
func (m *manager) createSQLite(ctx context.Context) error {
	handle := m.operator.DB()

	for _, model := range schema.Models() {
		exists, err := m.operator.TableExists(ctx, model.TableName())
		if err != nil {
			return err
		}
		if exists {
			if err := m.verifyColumns(ctx, model); err != nil {
				return err
			}
		}

		if _, err := handle.ExecContext(ctx, model.TableDDL()); err != nil {
			return CreateError(model.TableName(), err)
		}
		for _, idx := range model.IndexDDL() {
			if _, err := handle.ExecContext(ctx, idx); err != nil {
				return CreateError(model.TableName(), err)
			}
		}
	}
	return nil
}

// createPostgres delegates to GORM AutoMigrate over the already open
// connection pool.
func (m *manager) createPostgres() error {
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: m.operator.DB()}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateError("", err)
	}

	return nil
}

// verifyColumns compares an existing SQLite table against the model's
// ddl tags: every declared column must be present with the same
// storage type.
func (m *manager) verifyColumns(
	ctx context.Context,
	model schema.DDLGenerator,
) error {
	// PRAGMA does not take bound parameters; table names come from the
	// models, not from user input.
	query := fmt.Sprintf("PRAGMA table_info(%q)", model.TableName())

	rows, err := m.operator.DB().QueryContext(ctx, query)
	if err != nil {
		return VerifyQueryError(model.TableName(), err)
	}
	defer rows.Close()

	existing := make(map[string]string)
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, colType    string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return VerifyQueryError(model.TableName(), err)
		}
		existing[name] = strings.ToUpper(colType)
	}
	if err := rows.Err(); err != nil {
		return VerifyQueryError(model.TableName(), err)
	}

	types := schema.StorageTypes(model)
	for _, col := range model.Columns() {
		want := types[col]
		got, ok := existing[col]
		if !ok {
			return IncompatibleError(model.TableName(), col, want, "missing")
		}
		if got != want {
			return IncompatibleError(model.TableName(), col, want, got)
		}
	}
	return nil
}
