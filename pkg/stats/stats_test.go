package stats_test

import (
	"database/sql"
	"math"
	"testing"

	"github.com/filmsurvey/ratedb/pkg/errcode"
	"github.com/filmsurvey/ratedb/pkg/ratedb"
	"github.com/filmsurvey/ratedb/pkg/stats"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(title, person string, rating float64) ratedb.JoinedObservation {
	return ratedb.JoinedObservation{
		Title:  title,
		Person: person,
		Rating: sql.NullFloat64{Float64: rating, Valid: true},
	}
}

func absent(title, person string) ratedb.JoinedObservation {
	return ratedb.JoinedObservation{Title: title, Person: person}
}

func TestImpute(t *testing.T) {
	rows := []ratedb.JoinedObservation{
		obs("Jurassic Park", "alice", 4),
		absent("Jurassic Park", "ben"),
		obs("Spirited Away", "alice", 2),
	}

	res, err := stats.Impute(rows)
	require.NoError(t, err)
	require.Len(t, res, 3)

	// Present values pass through bit-identical, the absent one gets
	// the global mean (4+2)/2.
	assert.Equal(t, 4.0, res[0].Rating.Float64)
	assert.Equal(t, 2.0, res[2].Rating.Float64)
	require.True(t, res[1].Rating.Valid)
	assert.Equal(t, 3.0, res[1].Rating.Float64)

	// The input slice stays untouched.
	assert.False(t, rows[1].Rating.Valid)
}

func TestImputeIdempotent(t *testing.T) {
	rows := []ratedb.JoinedObservation{
		obs("Jurassic Park", "alice", 4),
		obs("Jurassic Park", "ben", 3),
	}

	res, err := stats.Impute(rows)
	require.NoError(t, err)
	assert.Equal(t, rows, res,
		"imputing fully populated data should change nothing")
}

func TestImputeAllAbsent(t *testing.T) {
	rows := []ratedb.JoinedObservation{
		absent("Jurassic Park", "alice"),
		absent("Jurassic Park", "ben"),
	}

	_, err := stats.Impute(rows)
	require.Error(t, err,
		"mean of zero observations is undefined")
	assertCode(t, err, errcode.ImputeNoObservationsError)
}

func TestImputeEmpty(t *testing.T) {
	_, err := stats.Impute(nil)
	require.Error(t, err)
	assertCode(t, err, errcode.ImputeNoObservationsError)
}

func TestStandardize(t *testing.T) {
	rows := []ratedb.JoinedObservation{
		obs("Jurassic Park", "alice", 2),
		obs("Jurassic Park", "ben", 4),
		obs("Jurassic Park", "carla", 6),
		obs("Spirited Away", "alice", 1),
		obs("Spirited Away", "ben", 3),
	}

	res, err := stats.Standardize(rows)
	require.NoError(t, err)
	require.Len(t, res, 5)

	// Jurassic Park: mean 4, sample sd 2.
	assert.InDelta(t, -1.0, res[0].ZScore.Float64, 1e-12)
	assert.InDelta(t, 0.0, res[1].ZScore.Float64, 1e-12)
	assert.InDelta(t, 1.0, res[2].ZScore.Float64, 1e-12)

	// Spirited Away: mean 2, sample sd sqrt(2).
	sd := math.Sqrt2
	assert.InDelta(t, -1.0/sd, res[3].ZScore.Float64, 1e-12)
	assert.InDelta(t, 1.0/sd, res[4].ZScore.Float64, 1e-12)

	// Ratings pass through unchanged; only ZScore is added.
	assert.Equal(t, 2.0, res[0].Rating.Float64)
	assert.False(t, rows[0].ZScore.Valid, "input stays untouched")
}

func TestStandardizeProperties(t *testing.T) {
	rows := []ratedb.JoinedObservation{
		obs("The Room", "alice", 1),
		obs("The Room", "ben", 2),
		obs("The Room", "carla", 2),
		obs("The Room", "dmitri", 5),
	}

	res, err := stats.Standardize(rows)
	require.NoError(t, err)

	// Within a group, z-scores have mean 0 and sample sd 1.
	var sum float64
	for _, r := range res {
		sum += r.ZScore.Float64
	}
	mean := sum / float64(len(res))
	assert.InDelta(t, 0.0, mean, 1e-12)

	var ss float64
	for _, r := range res {
		d := r.ZScore.Float64 - mean
		ss += d * d
	}
	sd := math.Sqrt(ss / float64(len(res)-1))
	assert.InDelta(t, 1.0, sd, 1e-12)
}

func TestStandardizeSingleRowGroup(t *testing.T) {
	rows := []ratedb.JoinedObservation{
		obs("Jurassic Park", "alice", 2),
		obs("Jurassic Park", "ben", 4),
		obs("Plan 9 from Outer Space", "alice", 1),
	}

	_, err := stats.Standardize(rows)
	require.Error(t, err,
		"sample stddev needs at least two rows per movie")
	assertCode(t, err, errcode.StandardizeGroupSizeError)
}

func TestStandardizeZeroVariance(t *testing.T) {
	rows := []ratedb.JoinedObservation{
		obs("The Room", "alice", 3),
		obs("The Room", "ben", 3),
		obs("The Room", "carla", 3),
	}

	_, err := stats.Standardize(rows)
	require.Error(t, err, "identical ratings leave z undefined")
	assertCode(t, err, errcode.StandardizeZeroVarianceError)
}

func TestStandardizeMissingRating(t *testing.T) {
	rows := []ratedb.JoinedObservation{
		obs("The Room", "alice", 3),
		absent("The Room", "ben"),
	}

	_, err := stats.Standardize(rows)
	require.Error(t, err,
		"standardization requires imputed input")
	assertCode(t, err, errcode.StandardizeMissingRatingError)
}

func assertCode(t *testing.T, err error, code gn.ErrorCode) {
	t.Helper()
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, code, gnErr.Code)
}
