// Package stats holds the pure numeric stages of the pipeline:
// global-mean imputation and per-movie standardization. No I/O here;
// both stages take joined observations and return new slices, leaving
// their input untouched.
package stats

import (
	"database/sql"

	"github.com/filmsurvey/ratedb/pkg/ratedb"
)

// Impute replaces every absent rating with the global mean of all
// present ratings and returns the result as a new slice with the same
// length and order as the input. Present values pass through
// unchanged; absent values do not count toward the mean's denominator.
//
// The mean is global across the whole dataset, not per movie and not
// per rater. Running Impute on fully populated data is a no-op (same
// values back), so the operation is idempotent.
//
// When no present rating exists anywhere, the mean is undefined and
// Impute fails; it never substitutes a silent default.
func Impute(rows []ratedb.JoinedObservation) ([]ratedb.JoinedObservation, error) {
	var sum float64
	var n int
	for _, row := range rows {
		if row.Rating.Valid {
			sum += row.Rating.Float64
			n++
		}
	}
	if n == 0 {
		return nil, NoObservationsError(len(rows))
	}
	mean := sum / float64(n)

	res := make([]ratedb.JoinedObservation, len(rows))
	copy(res, rows)
	for i := range res {
		if !res[i].Rating.Valid {
			res[i].Rating = sql.NullFloat64{Float64: mean, Valid: true}
		}
	}
	return res, nil
}
