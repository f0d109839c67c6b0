package cmd

import (
	"bytes"
	"database/sql"
	"os"
	"testing"

	"github.com/filmsurvey/ratedb/pkg/ratedb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetStatsCmd_Exists verifies getStatsCmd returns
// a valid command.
func TestGetStatsCmd_Exists(t *testing.T) {
	cmd := getStatsCmd()
	require.NotNil(t, cmd, "Stats command should exist")
	assert.Equal(t, "stats", cmd.Use,
		"Command name should be stats")
}

// TestGetStatsCmd_FormatFlag verifies --format flag exists
// with csv default.
func TestGetStatsCmd_FormatFlag(t *testing.T) {
	cmd := getStatsCmd()

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag,
		"--format flag should exist")

	assert.Equal(t, "f", formatFlag.Shorthand,
		"Short form should be -f")
	assert.Equal(t, "csv", formatFlag.DefValue,
		"Default format should be csv")
}

// TestGetStatsCmd_Descriptions verifies the pipeline stages
// appear in the long description.
func TestGetStatsCmd_Descriptions(t *testing.T) {
	cmd := getStatsCmd()

	assert.Contains(t, cmd.Long, "Imputes",
		"Long description should mention imputation")
	assert.Contains(t, cmd.Long, "Standardizes",
		"Long description should mention standardization")
	assert.Contains(t, cmd.Long, "fail-fast",
		"Long description should document the failure policy")
}

// TestGetRunCmd_Exists verifies getRunCmd returns
// a valid command.
func TestGetRunCmd_Exists(t *testing.T) {
	cmd := getRunCmd()
	require.NotNil(t, cmd, "Run command should exist")
	assert.Equal(t, "run", cmd.Use,
		"Command name should be run")

	require.NotNil(t, cmd.Flags().Lookup("survey"))
	require.NotNil(t, cmd.Flags().Lookup("format"))
}

// TestRenderObservations_JSON verifies JSON output shape.
func TestRenderObservations_JSON(t *testing.T) {
	rows := []ratedb.JoinedObservation{
		{
			Title:  "Jurassic Park",
			Person: "alice",
			Rating: sql.NullFloat64{Float64: 4, Valid: true},
			ZScore: sql.NullFloat64{Float64: 0.5, Valid: true},
		},
	}

	out := captureStdout(t, func() {
		err := renderObservations(rows, "json")
		require.NoError(t, err)
	})

	assert.Contains(t, out, `"title"`)
	assert.Contains(t, out, "Jurassic Park")
	assert.Contains(t, out, `"zScore"`)
}

// TestRenderObservations_CSV verifies CSV output shape.
func TestRenderObservations_CSV(t *testing.T) {
	rows := []ratedb.JoinedObservation{
		{
			Title:  "Jurassic Park",
			Person: "alice",
			Rating: sql.NullFloat64{Float64: 4, Valid: true},
			ZScore: sql.NullFloat64{Float64: 0.5, Valid: true},
		},
	}

	out := captureStdout(t, func() {
		err := renderObservations(rows, "csv")
		require.NoError(t, err)
	})

	assert.Contains(t, out, "title,person,rating,z_score")
	assert.Contains(t, out, "Jurassic Park,alice,4,0.5")
}

// captureStdout runs fn while collecting everything written to
// os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}
