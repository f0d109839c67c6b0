// Package schema provides database schema models for RateDB.
// The ddl tags target the embedded SQLite engine; the gorm tags drive
// AutoMigrate on the PostgreSQL engine.
package schema

import (
	"database/sql"
)

// DDLGenerator defines how Go models generate SQLite DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string

	// Columns returns the column names in declaration order.
	Columns() []string
}

// Movie is one entry of the fixed movie catalog.
// Movies are created once at ingestion, are immutable, and are never
// deleted.
type Movie struct {
	// ID is assigned by the store, sequential from 1 in insertion order
	// on a fresh database.
	ID int64 `db:"id" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT" gorm:"column:id;primaryKey;autoIncrement"`

	// UUID is a deterministic v5 identifier derived from the title,
	// stable across stores.
	UUID string `db:"uuid" ddl:"TEXT NOT NULL" gorm:"column:uuid;type:uuid;not null"`

	// Title of the movie. Never null.
	Title string `db:"title" ddl:"TEXT NOT NULL" gorm:"column:title;not null"`
}

// Rating is a single survey observation: one rater's rating of one
// movie, possibly absent. Multiple rows per (movie, person) pair are
// allowed; no uniqueness is assumed.
type Rating struct {
	// ID is assigned by the store.
	ID int64 `db:"id" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT" gorm:"column:id;primaryKey;autoIncrement"`

	// MovieID references movies.id. Referential integrity is enforced
	// by the store.
	MovieID int64 `db:"movie_id" ddl:"INTEGER NOT NULL REFERENCES movies (id)" gorm:"column:movie_id;not null"`

	// Person identifies the rater.
	Person string `db:"person" ddl:"TEXT NOT NULL" gorm:"column:person;not null"`

	// Rating is an integer in [1,5], or NULL when the observation is
	// absent. Absent is a real NULL, never zero.
	Rating sql.NullInt16 `db:"rating" ddl:"INTEGER CHECK (rating BETWEEN 1 AND 5)" gorm:"column:rating;check:rating BETWEEN 1 AND 5"`
}

// TableName returns the gorm table name for Movie.
func (Movie) TableName() string { return "movies" }

// TableName returns the gorm table name for Rating.
func (Rating) TableName() string { return "ratings" }
