package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/filmsurvey/ratedb/internal/iodb"
	"github.com/filmsurvey/ratedb/internal/ioload"
	"github.com/filmsurvey/ratedb/internal/ioschema"
	"github.com/filmsurvey/ratedb/pkg/ratedb"
	"github.com/filmsurvey/ratedb/pkg/stats"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getStatsCmd returns the stats command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getStatsCmd() *cobra.Command {
	var format string

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute standardized scores from the stored ratings",
		Long: `Read the stored ratings and run the numeric stages of the pipeline.

This command:
  1. Loads the joined (title, person, rating) relation from the store
  2. Imputes absent ratings with the global mean of present ratings
  3. Standardizes ratings per movie (z-scores, sample stddev)
  4. Prints one row per observation in CSV or JSON

Standardization is fail-fast: a movie with fewer than two ratings or
with zero variance aborts the run with an error naming the movie.

Examples:
  ratedb stats
  ratedb stats --format json
  ratedb stats -f csv > scores.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStats(format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	statsCmd.Flags().StringVarP(
		&format, "format", "f", "csv",
		"output format: csv or json",
	)

	return statsCmd
}

func runStats(format string) error {
	ctx := context.Background()

	op := iodb.NewOperator(cfg.Database.Engine)
	if err := op.Connect(ctx, cfg); err != nil {
		return err
	}
	defer op.Close()

	if err := ioschema.NewManager(op).Verify(ctx); err != nil {
		return err
	}

	rows, err := ioload.New(op).LoadJoined(ctx)
	if err != nil {
		return err
	}

	rows, err = stats.Impute(rows)
	if err != nil {
		return err
	}

	rows, err = stats.Standardize(rows)
	if err != nil {
		return err
	}

	return renderObservations(rows, format)
}

// scoreRow is the output shape of one standardized observation.
type scoreRow struct {
	Title  string  `json:"title"`
	Person string  `json:"person"`
	Rating float64 `json:"rating"`
	ZScore float64 `json:"zScore"`
}

// renderObservations prints the standardized observations to stdout.
// After imputation and standardization every Rating and ZScore is
// populated, so the NULL branches never fire on pipeline output.
func renderObservations(rows []ratedb.JoinedObservation, format string) error {
	out := make([]scoreRow, len(rows))
	for i, row := range rows {
		out[i] = scoreRow{
			Title:  row.Title,
			Person: row.Person,
			Rating: row.Rating.Float64,
			ZScore: row.ZScore.Float64,
		}
	}

	if format == "json" {
		enc := gnfmt.GNjson{Pretty: true}
		data, err := enc.Encode(out)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"title", "person", "rating", "z_score"}); err != nil {
		return err
	}
	for _, row := range out {
		rec := []string{
			row.Title,
			row.Person,
			strconv.FormatFloat(row.Rating, 'f', -1, 64),
			strconv.FormatFloat(row.ZScore, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
