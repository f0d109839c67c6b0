package ioingest

import (
	"fmt"

	"github.com/filmsurvey/ratedb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when ingestion is attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Ingest operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TxError creates an error for a failed transaction boundary.
func TxError(stage string, err error) error {
	msg := `Ingestion transaction failed

<em>Stage:</em> %s

No partial data was written; the batch rolled back.`

	vars := []any{stage}

	return &gn.Error{
		Code: errcode.IngestTxError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("ingest transaction %s failed: %w", stage, err),
	}
}

// MoviesError creates an error for a failed movie insert.
func MoviesError(title string, err error) error {
	msg := `Cannot insert movie

<em>Title:</em> %s`

	vars := []any{title}

	return &gn.Error{
		Code: errcode.IngestMoviesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to insert movie %q: %w", title, err),
	}
}

// RatingsError creates an error for a failed ratings batch insert.
// row is the 1-based position of the batch's first row.
func RatingsError(row int, err error) error {
	msg := `Cannot insert ratings batch

<em>Batch starts at row:</em> %d

<em>Possible causes:</em>
  - A rating value violates the [1,5] range constraint
  - A movie reference violates referential integrity`

	vars := []any{row}

	return &gn.Error{
		Code: errcode.IngestRatingsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to insert ratings batch at row %d: %w", row, err),
	}
}

// MovieRefError creates an error for a rating row whose movie
// reference does not resolve to an inserted movie.
func MovieRefError(row, ref, movies int) error {
	msg := `Rating row references an unknown movie

<em>Rating row:</em> %d
<em>Movie reference:</em> %d
<em>Movies inserted:</em> %d`

	vars := []any{row, ref, movies}

	return &gn.Error{
		Code: errcode.IngestMovieRefError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"rating row %d references movie %d of %d", row, ref, movies),
	}
}
