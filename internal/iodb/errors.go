package iodb

import (
	"fmt"

	"github.com/filmsurvey/ratedb/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError creates an error for a failed store connection.
// target is the SQLite file path or the host:port/database triple.
func ConnectionError(engine, target string, err error) error {
	msg := `Cannot connect to the ratings store

<em>Engine:</em> %s
<em>Target:</em> %s

<em>Possible causes:</em>
  - The database server is not running (postgres)
  - The database file location is not writable (sqlite)
  - Connection settings are incorrect

<em>How to fix:</em>
  1. Check the database section of config.yaml
  2. For postgres, verify the server accepts connections`

	vars := []any{engine, target}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s store at %s: %w",
			engine, target, err),
	}
}

// NotConnectedError creates an error for an operation attempted before
// Connect.
func NotConnectedError() error {
	msg := "Store operation attempted without a database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError creates an error for a failed table presence check.
func TableCheckError(err error) error {
	msg := "Could not verify database state"

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}

// TableExistsCheckError creates an error for a failed single-table
// existence check.
func TableExistsCheckError(tableName string, err error) error {
	msg := `Could not check whether table exists

<em>Table:</em> %s`

	vars := []any{tableName}

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to check table %s: %w",
			tableName, err),
	}
}

// QueryTablesError creates an error for a failed table listing.
func QueryTablesError(err error) error {
	msg := "Could not list database tables"

	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// ScanTableError creates an error for a failed table name scan.
func ScanTableError(err error) error {
	msg := "Could not read database table names"

	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to scan table name: %w", err),
	}
}

// DropTableError creates an error for a failed DROP TABLE.
func DropTableError(tableName string, err error) error {
	msg := `Could not drop table

<em>Table:</em> %s`

	vars := []any{tableName}

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to drop table %s: %w", tableName, err),
	}
}
