// Package ratedb defines the core contracts of the survey-ratings
// pipeline. Implementations live in internal/io* packages; this package
// stays free of I/O.
package ratedb

import (
	"context"

	"github.com/filmsurvey/ratedb/pkg/survey"
)

// SchemaManager defines the interface for database schema management.
// Schema creation is idempotent - safe to run multiple times. An existing
// schema with incompatible column types is an error, never silently
// altered.
type SchemaManager interface {
	// Create creates the movies and ratings tables if they are absent.
	// Fails when an existing table carries incompatible columns.
	Create(ctx context.Context) error

	// Verify checks that both tables exist with compatible columns.
	// Used before ingestion so constraint violations surface early.
	Verify(ctx context.Context) error
}

// Ingestor defines the interface for bulk loading survey observations
// into the store.
type Ingestor interface {
	// InsertMovies inserts the catalog titles in order and returns the
	// assigned ids, sequential from 1 on a fresh store. An empty title
	// fails with a constraint error naming the offending position.
	InsertMovies(ctx context.Context, titles []string) ([]int64, error)

	// InsertRatings inserts rating observations in bulk. Each row's
	// movie reference (1-based position into movieIDs) must resolve;
	// otherwise it fails with a referential error naming the row.
	// Absent ratings are stored as SQL NULL.
	InsertRatings(ctx context.Context, movieIDs []int64, rows []survey.RatingRow) (int, error)

	// Ingest inserts the whole survey (movies, then ratings) inside a
	// single transaction. Returns the number of movies and ratings
	// inserted.
	Ingest(ctx context.Context, s *survey.Survey) (*IngestSummary, error)
}

// IngestSummary reports what a successful Ingest call wrote.
type IngestSummary struct {
	Movies  int
	Ratings int
}

// Loader defines the interface for reading the joined relation.
type Loader interface {
	// LoadJoined performs an inner join of ratings to movies and returns
	// one JoinedObservation per rating row. Result order follows rating
	// insertion order (ORDER BY ratings.id) and is stable across calls
	// on unchanged data.
	LoadJoined(ctx context.Context) ([]JoinedObservation, error)
}

// Pipeline runs the whole survey pipeline: ensure schema, ingest,
// load the joined relation, impute missing ratings, standardize.
type Pipeline interface {
	// Run executes all stages sequentially and returns the fully
	// populated, standardized observations. The store handle is
	// acquired before the first stage and released on every exit path.
	Run(ctx context.Context, s *survey.Survey) ([]JoinedObservation, error)
}
