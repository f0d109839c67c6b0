package iopipeline_test

import (
	"context"
	"math"
	"testing"

	"github.com/filmsurvey/ratedb/internal/iopipeline"
	"github.com/filmsurvey/ratedb/internal/iotesting"
	"github.com/filmsurvey/ratedb/pkg/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReference(t *testing.T) {
	cfg := iotesting.SQLiteConfig(t)
	ctx := context.Background()

	rows, err := iopipeline.New(cfg).Run(ctx, survey.Reference())
	require.NoError(t, err)
	require.Len(t, rows, 60)

	// The reference dataset has 54 present values summing to 176, so
	// every absent observation receives 176/54.
	mean := 176.0 / 54.0
	var imputed int
	for _, row := range rows {
		require.True(t, row.Rating.Valid,
			"no NULL survives imputation")
		require.True(t, row.ZScore.Valid,
			"every row gets a z-score")
		if row.Rating.Float64 == mean {
			imputed++
		}
	}
	assert.Equal(t, 6, imputed,
		"each of the six absent observations gets the global mean")
}

func TestRunStandardizedGroups(t *testing.T) {
	cfg := iotesting.SQLiteConfig(t)
	ctx := context.Background()

	rows, err := iopipeline.New(cfg).Run(ctx, survey.Reference())
	require.NoError(t, err)

	groups := make(map[string][]float64)
	for _, row := range rows {
		groups[row.Title] = append(groups[row.Title], row.ZScore.Float64)
	}
	require.Len(t, groups, 6)

	// After standardization every movie group has z mean 0 and sample
	// standard deviation 1.
	for title, zz := range groups {
		require.Len(t, zz, 10, title)

		var sum float64
		for _, z := range zz {
			sum += z
		}
		mean := sum / float64(len(zz))
		assert.InDelta(t, 0.0, mean, 1e-9, "mean of %s", title)

		var ss float64
		for _, z := range zz {
			d := z - mean
			ss += d * d
		}
		sd := math.Sqrt(ss / float64(len(zz)-1))
		assert.InDelta(t, 1.0, sd, 1e-9, "sd of %s", title)
	}
}

func TestRunIdempotentSchema(t *testing.T) {
	cfg := iotesting.SQLiteConfig(t)
	ctx := context.Background()

	p := iopipeline.New(cfg)

	_, err := p.Run(ctx, survey.Reference())
	require.NoError(t, err)

	// A second run against the same store reuses the schema and
	// appends another survey; the relation doubles.
	rows, err := p.Run(ctx, survey.Reference())
	require.NoError(t, err)
	assert.Len(t, rows, 120)
}

func TestRunInvalidSurvey(t *testing.T) {
	cfg := iotesting.SQLiteConfig(t)
	ctx := context.Background()

	nine := 9
	s := &survey.Survey{
		Movies: []string{"Jurassic Park"},
		Ratings: []survey.RatingRow{
			{Movie: 1, Person: "alice", Rating: &nine},
		},
	}

	_, err := iopipeline.New(cfg).Run(ctx, s)
	assert.Error(t, err, "validation failure aborts the run")
}
