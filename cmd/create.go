package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/filmsurvey/ratedb/internal/iodb"
	"github.com/filmsurvey/ratedb/internal/ioschema"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create the ratings store schema",
		Long: `Create the movies and ratings tables from scratch.

This command:
  1. Connects to the configured engine (SQLite file or PostgreSQL)
  2. Checks for existing tables and prompts for confirmation
  3. Creates the movies and ratings tables with their indexes
  4. Enforces referential integrity from ratings to movies

Schema creation is idempotent: running it against a store that already
carries a compatible schema changes nothing. A pre-existing table with
incompatible columns is an error, never silently altered.

Use --force to skip confirmation and drop existing tables.

Examples:
  ratedb create
  ratedb create --force
  ratedb create -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, forceCreate)
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(
	_ *cobra.Command,
	_ []string,
	force bool,
) error {
	ctx := context.Background()

	op := iodb.NewOperator(cfg.Database.Engine)
	if err := op.Connect(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	printConnected(op.Engine())

	// Check if database has existing tables
	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Handle existing tables
	if hasTables && !force {
		gn.Warn("\nWarning: Database contains existing tables.")
		gn.Warn("Recreating the schema will drop ALL existing tables and data.")
		fmt.Print("\nDo you want to continue? (yes/no): ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			gn.Warn("Failed to read user input")
			return err
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "yes" && response != "y" {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}

	if hasTables {
		gn.Info("Dropping all existing tables...")
		if err := op.DropAllTables(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("All tables dropped")
	}

	sm := ioschema.NewManager(op)

	gn.Info("Creating movies and ratings tables...")
	if err := sm.Create(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("\nDatabase schema creation complete!")
	gn.Info("\nNext steps:")
	gn.Info("  - Run '<em>ratedb populate</em>' to ingest a survey")
	gn.Info("  - Run '<em>ratedb stats</em>' to compute standardized scores")

	return nil
}

// printConnected reports where the store lives for the active engine.
func printConnected(engine string) {
	if engine == "postgres" {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
		return
	}
	gn.Info("Connected to database: <em>%s</em>", cfg.DatabasePath())
}
