package ioschema

import (
	"fmt"

	"github.com/filmsurvey/ratedb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when schema management is
// attempted without a database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for a failed GORM session over
// the existing pool.
func GORMConnectionError(err error) error {
	msg := `Cannot open GORM session for schema migration

<em>Possible causes:</em>
  - The connection pool was closed
  - PostgreSQL stopped accepting connections`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to open GORM session: %w", err),
	}
}

// CreateError creates an error for failed schema creation. tableName
// may be empty when the whole AutoMigrate run failed.
func CreateError(tableName string, err error) error {
	msg := `Cannot create database schema

<em>Table:</em> %s

<em>How to fix:</em>
  1. Check the database is writable
  2. Run 'ratedb create --force' to rebuild from scratch`

	if tableName == "" {
		tableName = "(all)"
	}
	vars := []any{tableName}

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to create schema for %s: %w", tableName, err),
	}
}

// IncompatibleError creates an error for a pre-existing table whose
// columns conflict with the expected schema.
func IncompatibleError(tableName, column, want, got string) error {
	msg := `Existing schema is incompatible

<em>Table:</em> %s
<em>Column:</em> %s
<em>Expected type:</em> %s
<em>Found:</em> %s

The store was created by something else. Point RateDB at a different
database file, or rebuild with 'ratedb create --force'.`

	vars := []any{tableName, column, want, got}

	return &gn.Error{
		Code: errcode.SchemaIncompatibleError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"incompatible schema: %s.%s expected %s, found %s",
			tableName, column, want, got),
	}
}

// VerifyError creates an error for a missing table during schema
// verification.
func VerifyError(tableName string) error {
	msg := `Database schema is not ready

<em>Missing table:</em> %s

Run 'ratedb create' before populating.`

	vars := []any{tableName}

	return &gn.Error{
		Code: errcode.SchemaVerifyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table %s does not exist", tableName),
	}
}

// VerifyQueryError creates an error for a failed column inspection.
func VerifyQueryError(tableName string, err error) error {
	msg := `Cannot inspect table columns

<em>Table:</em> %s`

	vars := []any{tableName}

	return &gn.Error{
		Code: errcode.SchemaVerifyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to inspect columns of %s: %w",
			tableName, err),
	}
}
