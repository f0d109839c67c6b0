package iodb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/filmsurvey/ratedb/pkg/config"
	"github.com/filmsurvey/ratedb/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// pgxOperator implements db.Operator using pgxpool for connection
// pooling. The pool is adapted to *sql.DB via pgx's stdlib wrapper so
// the lifecycle components share one SQL path across engines.
type pgxOperator struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// NewPgxOperator creates a new PostgreSQL database operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL.
// Uses sensible hardcoded pool settings that work well for
// most use cases.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.Config,
) error {
	dbCfg := cfg.Database
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.Database,
		dbCfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(db.EnginePostgres,
			fmt.Sprintf("%s:%d/%s", dbCfg.Host, dbCfg.Port, dbCfg.Database),
			err)
	}

	// Hardcoded pool settings (can be made configurable later if
	// needed)
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(db.EnginePostgres,
			fmt.Sprintf("%s:%d/%s", dbCfg.Host, dbCfg.Port, dbCfg.Database),
			err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(db.EnginePostgres,
			fmt.Sprintf("%s:%d/%s", dbCfg.Host, dbCfg.Port, dbCfg.Database),
			err)
	}

	p.pool = pool
	p.sqlDB = stdlib.OpenDBFromPool(pool)
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.sqlDB != nil {
		p.sqlDB.Close()
	}
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// DB returns the pool adapted to *sql.DB.
func (p *pgxOperator) DB() *sql.DB {
	return p.sqlDB
}

// Engine reports the backend name.
func (p *pgxOperator) Engine() string {
	return db.EnginePostgres
}

// TableExists checks if a table exists in the current database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.sqlDB == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	err := p.sqlDB.QueryRowContext(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// HasTables checks if the database has any tables in the public
// schema.
func (p *pgxOperator) HasTables(
	ctx context.Context,
) (bool, error) {
	if p.sqlDB == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
		)
	`

	var hasTables bool
	err := p.sqlDB.QueryRowContext(ctx, query).Scan(&hasTables)
	if err != nil {
		return false, TableCheckError(err)
	}

	return hasTables, nil
}

// DropAllTables drops all tables in the public schema.
func (p *pgxOperator) DropAllTables(ctx context.Context) error {
	if p.sqlDB == nil {
		return NotConnectedError()
	}

	query := `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
	`

	rows, err := p.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return QueryTablesError(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return ScanTableError(err)
		}
		tables = append(tables, tableName)
	}

	if err := rows.Err(); err != nil {
		return ScanTableError(err)
	}

	for _, table := range tables {
		dropSQL := fmt.Sprintf(
			"DROP TABLE IF EXISTS %s CASCADE", table)
		if _, err := p.sqlDB.ExecContext(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}

	return nil
}
