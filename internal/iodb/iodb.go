package iodb

import (
	"github.com/filmsurvey/ratedb/pkg/db"
)

// NewOperator returns the operator for the configured engine. Anything
// other than postgres falls back to the embedded SQLite store; config
// validation already warns on unknown engine names.
func NewOperator(engine string) db.Operator {
	if engine == db.EnginePostgres {
		return NewPgxOperator()
	}
	return NewSQLiteOperator()
}
