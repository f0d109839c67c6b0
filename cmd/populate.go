package cmd

import (
	"context"

	"github.com/filmsurvey/ratedb/internal/iodb"
	"github.com/filmsurvey/ratedb/internal/iofs"
	"github.com/filmsurvey/ratedb/internal/ioingest"
	"github.com/filmsurvey/ratedb/internal/ioschema"
	"github.com/filmsurvey/ratedb/pkg/config"
	"github.com/filmsurvey/ratedb/pkg/survey"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getPopulateCmd() *cobra.Command {
	var surveyFile string

	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Ingest a survey file into the ratings store",
		Long: `Ingest movie ratings from a YAML survey file.

This command:
  1. Connects to the configured engine (SQLite file or PostgreSQL)
  2. Verifies that the schema exists and is compatible
  3. Validates the survey before any SQL runs
  4. Inserts the movie catalog, then the rating observations, inside
     a single transaction

A survey row with 'rating: null' records an absent observation and is
stored as SQL NULL; absence is part of the data, never a sentinel
number. A failed ingest rolls back completely.

The default survey lives at ~/.config/ratedb/survey.yaml; a reference
survey is generated there on first run.

Examples:
  # Ingest the default survey file
  ratedb populate

  # Ingest a specific file
  ratedb populate --survey ./survey-2026.yaml
  ratedb populate -s ./survey-2026.yaml`,
		Aliases: []string{"ingest"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPopulate(cmd, surveyFile)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	populateCmd.Flags().StringVarP(
		&surveyFile, "survey", "s", "",
		"survey YAML file (default ~/.config/ratedb/survey.yaml)",
	)

	return populateCmd
}

func runPopulate(cmd *cobra.Command, surveyFile string) error {
	ctx := context.Background()

	s, err := readSurvey(surveyFile)
	if err != nil {
		return err
	}

	op := iodb.NewOperator(cfg.Database.Engine)
	if err := op.Connect(ctx, cfg); err != nil {
		return err
	}
	defer op.Close()

	printConnected(op.Engine())

	// Constraint violations should surface before data moves.
	if err := ioschema.NewManager(op).Verify(ctx); err != nil {
		return err
	}

	ing := ioingest.New(cfg, op)

	gn.Info("Starting survey ingestion...")
	if _, err := ing.Ingest(ctx, s); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>ratedb stats</em>' to compute standardized scores
	 - Run '<em>ratedb populate -s FILE</em>' to ingest another survey
`)

	return nil
}

// readSurvey loads and validates a survey file. An empty path falls
// back to the generated template in the config directory.
func readSurvey(path string) (*survey.Survey, error) {
	if path == "" {
		path = config.SurveyFilePath(homeDir)
	}

	data, err := iofs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return survey.Parse(data)
}
