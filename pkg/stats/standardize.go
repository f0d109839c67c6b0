package stats

import (
	"database/sql"
	"math"

	"github.com/filmsurvey/ratedb/pkg/ratedb"
)

type groupStat struct {
	mean, sd float64
}

// Standardize computes per-movie z-scores and returns the result as a
// new slice with the same length and order as the input. Rows are
// partitioned by exact title equality; for each group the mean and the
// sample standard deviation (N-1 denominator) are accumulated over the
// group's values in input order, then every row gets
// z = (rating - mean) / sd.
//
// Policy for degenerate groups is fail-fast, applied uniformly: a
// group with fewer than two rows, a group whose variance is zero, or
// any row still missing a rating fails the whole run. No NaN markers
// are ever emitted.
func Standardize(rows []ratedb.JoinedObservation) ([]ratedb.JoinedObservation, error) {
	for i, row := range rows {
		if !row.Rating.Valid {
			return nil, MissingRatingError(i+1, row.Title, row.Person)
		}
	}

	// Partition by title, keeping both the per-group values in input
	// order and the first-seen order of groups, so failures are
	// reported deterministically.
	values := make(map[string][]float64)
	var titles []string
	for _, row := range rows {
		if _, ok := values[row.Title]; !ok {
			titles = append(titles, row.Title)
		}
		values[row.Title] = append(values[row.Title], row.Rating.Float64)
	}

	stats := make(map[string]groupStat, len(titles))
	for _, title := range titles {
		vv := values[title]
		if len(vv) < 2 {
			return nil, GroupSizeError(title, len(vv))
		}

		var sum float64
		for _, v := range vv {
			sum += v
		}
		mean := sum / float64(len(vv))

		var ss float64
		for _, v := range vv {
			d := v - mean
			ss += d * d
		}
		sd := math.Sqrt(ss / float64(len(vv)-1))
		if sd == 0 {
			return nil, ZeroVarianceError(title, len(vv))
		}

		stats[title] = groupStat{mean: mean, sd: sd}
	}

	res := make([]ratedb.JoinedObservation, len(rows))
	copy(res, rows)
	for i := range res {
		st := stats[res[i].Title]
		z := (res[i].Rating.Float64 - st.mean) / st.sd
		res[i].ZScore = sql.NullFloat64{Float64: z, Valid: true}
	}
	return res, nil
}
