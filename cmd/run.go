package cmd

import (
	"context"

	"github.com/filmsurvey/ratedb/internal/iodb"
	"github.com/filmsurvey/ratedb/internal/iopipeline"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getRunCmd() *cobra.Command {
	var (
		surveyFile string
		format     string
		force      bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the whole pipeline from a survey file",
		Long: `Run every pipeline stage in one shot.

This command:
  1. Creates the schema if it does not exist yet
  2. Ingests the survey file transactionally
  3. Loads the joined relation
  4. Imputes absent ratings with the global mean
  5. Standardizes ratings per movie and prints the scores

Equivalent to 'create', 'populate' and 'stats' back to back against a
store that is empty or compatible. With --force any existing tables
are dropped first, so the run starts from a fresh store. The store
handle is released on every exit path, success or failure.

Examples:
  ratedb run
  ratedb run --force
  ratedb run -s ./survey-2026.yaml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPipeline(surveyFile, format, force)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	runCmd.Flags().StringVarP(
		&surveyFile, "survey", "s", "",
		"survey YAML file (default ~/.config/ratedb/survey.yaml)",
	)
	runCmd.Flags().StringVarP(
		&format, "format", "f", "csv",
		"output format: csv or json",
	)
	runCmd.Flags().BoolVar(
		&force, "force", false,
		"drop existing tables before running",
	)

	return runCmd
}

func runPipeline(surveyFile, format string, force bool) error {
	ctx := context.Background()

	s, err := readSurvey(surveyFile)
	if err != nil {
		return err
	}

	if force {
		if err := dropTables(ctx); err != nil {
			return err
		}
	}

	rows, err := iopipeline.New(cfg).Run(ctx, s)
	if err != nil {
		return err
	}

	return renderObservations(rows, format)
}

// dropTables clears the store before a forced run.
func dropTables(ctx context.Context) error {
	op := iodb.NewOperator(cfg.Database.Engine)
	if err := op.Connect(ctx, cfg); err != nil {
		return err
	}
	defer op.Close()

	return op.DropAllTables(ctx)
}
