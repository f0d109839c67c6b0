package ioload

import (
	"fmt"

	"github.com/filmsurvey/ratedb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when a load is attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Load operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// JoinError creates an error for a failed join query.
func JoinError(err error) error {
	msg := `Cannot load the joined ratings relation

<em>How to fix:</em>
  1. Run 'ratedb create' if the schema is missing
  2. Run 'ratedb populate' if the store is empty`

	return &gn.Error{
		Code: errcode.LoadJoinError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to execute join query: %w", err),
	}
}

// ScanError creates an error for a failed row scan during the join
// read.
func ScanError(err error) error {
	msg := "Cannot read a row of the joined relation"

	return &gn.Error{
		Code: errcode.LoadScanError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to scan joined row: %w", err),
	}
}
