// Package iopipeline wires the pipeline stages together: schema,
// ingestion, join load, imputation, standardization. Stages run in a
// fixed linear order; each consumes the previous stage's output.
package iopipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/filmsurvey/ratedb/internal/iodb"
	"github.com/filmsurvey/ratedb/internal/ioingest"
	"github.com/filmsurvey/ratedb/internal/ioload"
	"github.com/filmsurvey/ratedb/internal/ioschema"
	"github.com/filmsurvey/ratedb/pkg/config"
	"github.com/filmsurvey/ratedb/pkg/ratedb"
	"github.com/filmsurvey/ratedb/pkg/stats"
	"github.com/filmsurvey/ratedb/pkg/survey"
	"github.com/gnames/gnfmt"
)

// pipeline implements the ratedb.Pipeline interface.
type pipeline struct {
	cfg *config.Config
}

// New creates a new Pipeline.
func New(cfg *config.Config) ratedb.Pipeline {
	return &pipeline{cfg: cfg}
}

// Run acquires the store handle, executes every stage in order, and
// releases the handle on all exit paths. The first stage failure
// aborts the run; later stages never see partial input.
func (p *pipeline) Run(
	ctx context.Context,
	s *survey.Survey,
) ([]ratedb.JoinedObservation, error) {
	start := time.Now()

	op := iodb.NewOperator(p.cfg.Database.Engine)
	if err := op.Connect(ctx, p.cfg); err != nil {
		return nil, err
	}
	defer op.Close()

	if err := ioschema.NewManager(op).Create(ctx); err != nil {
		return nil, err
	}

	if _, err := ioingest.New(p.cfg, op).Ingest(ctx, s); err != nil {
		return nil, err
	}

	rows, err := ioload.New(op).LoadJoined(ctx)
	if err != nil {
		return nil, err
	}

	rows, err = stats.Impute(rows)
	if err != nil {
		return nil, err
	}

	rows, err = stats.Standardize(rows)
	if err != nil {
		return nil, err
	}

	slog.Info("Pipeline finished",
		"rows", len(rows),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return rows, nil
}
