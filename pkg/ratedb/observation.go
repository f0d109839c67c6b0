package ratedb

import (
	"database/sql"
)

// JoinedObservation is one row of the joined movies/ratings relation.
// It is produced fresh on every load and never persisted back.
// Rating and ZScore use nullable types: an absent rating is a NULL,
// never a sentinel number, so a rating of 0 can never be confused with
// "no rating".
type JoinedObservation struct {
	// Title of the rated movie.
	Title string

	// Person identifies the rater.
	Person string

	// Rating is the observed value in [1,5], or the imputed global mean
	// after imputation. Invalid means the observation is absent.
	Rating sql.NullFloat64

	// ZScore is the per-movie standardized rating. Invalid until the
	// standardizer runs.
	ZScore sql.NullFloat64
}
