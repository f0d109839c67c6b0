// Package ioingest implements the Ingestor contract: bulk loading of
// the movie catalog and the rating observations. This is an impure
// I/O package that performs batched, transactional inserts.
package ioingest

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/filmsurvey/ratedb/pkg/config"
	"github.com/filmsurvey/ratedb/pkg/db"
	"github.com/filmsurvey/ratedb/pkg/ratedb"
	"github.com/filmsurvey/ratedb/pkg/survey"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
)

// ingestor implements the ratedb.Ingestor interface.
type ingestor struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Ingestor.
func New(cfg *config.Config, op db.Operator) ratedb.Ingestor {
	return &ingestor{cfg: cfg, operator: op}
}

// Ingest inserts the whole survey inside a single transaction:
// movies first (so rating rows can resolve their references), then
// ratings. A failure at any point rolls the batch back, leaving the
// store untouched.
func (p *ingestor) Ingest(
	ctx context.Context,
	s *survey.Survey,
) (*ratedb.IngestSummary, error) {
	if p.operator.DB() == nil {
		return nil, NotConnectedError()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	slog.Info("Starting survey ingestion",
		"movies", len(s.Movies),
		"ratings", len(s.Ratings),
		"absent", s.Absent(),
	)

	tx, err := p.operator.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, TxError("begin", err)
	}
	defer tx.Rollback()

	movieIDs, err := p.insertMovies(ctx, tx, s.Movies)
	if err != nil {
		return nil, err
	}

	inserted, err := p.insertRatings(ctx, tx, movieIDs, s.Ratings)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, TxError("commit", err)
	}

	elapsed := time.Since(start)
	slog.Info("Survey ingested",
		"movies", len(movieIDs),
		"ratings", inserted,
		"duration", gnfmt.TimeString(elapsed.Seconds()),
	)
	gn.Message("<em>Ingested %s movies and %s ratings</em>",
		humanize.Comma(int64(len(movieIDs))),
		humanize.Comma(int64(inserted)),
	)

	return &ratedb.IngestSummary{
		Movies:  len(movieIDs),
		Ratings: inserted,
	}, nil
}

// InsertMovies inserts the catalog titles in order inside one
// transaction and returns the assigned ids.
func (p *ingestor) InsertMovies(
	ctx context.Context,
	titles []string,
) ([]int64, error) {
	if p.operator.DB() == nil {
		return nil, NotConnectedError()
	}

	tx, err := p.operator.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, TxError("begin", err)
	}
	defer tx.Rollback()

	ids, err := p.insertMovies(ctx, tx, titles)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, TxError("commit", err)
	}
	return ids, nil
}

// InsertRatings inserts rating observations in bulk inside one
// transaction.
func (p *ingestor) InsertRatings(
	ctx context.Context,
	movieIDs []int64,
	rows []survey.RatingRow,
) (int, error) {
	if p.operator.DB() == nil {
		return 0, NotConnectedError()
	}

	tx, err := p.operator.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, TxError("begin", err)
	}
	defer tx.Rollback()

	n, err := p.insertRatings(ctx, tx, movieIDs, rows)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, TxError("commit", err)
	}
	return n, nil
}

// insertMovies writes the catalog one row at a time, capturing each
// assigned id via RETURNING so the ids come back in insertion order
// regardless of engine. On a fresh store they are sequential from 1.
func (p *ingestor) insertMovies(
	ctx context.Context,
	tx *sql.Tx,
	titles []string,
) ([]int64, error) {
	engine := p.operator.Engine()
	query := fmt.Sprintf(
		"INSERT INTO movies (uuid, title) VALUES (%s, %s) RETURNING id",
		db.Placeholder(engine, 1),
		db.Placeholder(engine, 2),
	)

	ids := make([]int64, 0, len(titles))
	for i, title := range titles {
		if title == "" {
			return nil, survey.EmptyTitleError(i + 1)
		}

		// Deterministic identity: the same title always maps to the
		// same UUID v5, in any store.
		id := gnuuid.New(title).String()

		var movieID int64
		err := tx.QueryRowContext(ctx, query, id, title).Scan(&movieID)
		if err != nil {
			return nil, MoviesError(title, err)
		}
		ids = append(ids, movieID)
	}

	slog.Info("Movie catalog inserted", "count", len(ids))
	return ids, nil
}

// insertRatings writes observations with multi-row inserts, resolving
// each row's 1-based movie reference against the freshly assigned
// movie ids. Absent ratings become SQL NULL.
func (p *ingestor) insertRatings(
	ctx context.Context,
	tx *sql.Tx,
	movieIDs []int64,
	rows []survey.RatingRow,
) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	batchSize := p.cfg.Database.BatchSize
	if batchSize <= 0 {
		batchSize = 5_000
	}

	engine := p.operator.Engine()

	bar := pb.Full.Start(len(rows))
	bar.Set("prefix", "Ingesting ratings: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	var total int
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		batch := rows[start:end]

		var valueStrings []string
		var valueArgs []any
		argIdx := 1

		for i, row := range batch {
			if row.Movie < 1 || row.Movie > len(movieIDs) {
				return 0, MovieRefError(start+i+1, row.Movie, len(movieIDs))
			}

			var rating sql.NullInt16
			if row.Rating != nil {
				rating = sql.NullInt16{Int16: int16(*row.Rating), Valid: true}
			}

			valueStrings = append(valueStrings, fmt.Sprintf("(%s, %s, %s)",
				db.Placeholder(engine, argIdx),
				db.Placeholder(engine, argIdx+1),
				db.Placeholder(engine, argIdx+2),
			))
			valueArgs = append(valueArgs,
				movieIDs[row.Movie-1], row.Person, rating)
			argIdx += 3
		}

		insertQuery := fmt.Sprintf(
			"INSERT INTO ratings (movie_id, person, rating) VALUES %s",
			strings.Join(valueStrings, ", "),
		)

		if _, err := tx.ExecContext(ctx, insertQuery, valueArgs...); err != nil {
			return 0, RatingsError(start+1, err)
		}

		total += len(batch)
		bar.Add(len(batch))
	}

	slog.Info("Ratings inserted", "count", total)
	return total, nil
}
