// Package ioload implements the Loader contract: reading the joined
// movies/ratings relation into memory. This is an impure I/O package.
package ioload

import (
	"context"
	"log/slog"

	"github.com/filmsurvey/ratedb/pkg/db"
	"github.com/filmsurvey/ratedb/pkg/ratedb"
)

// loader implements the ratedb.Loader interface.
type loader struct {
	operator db.Operator
}

// New creates a new Loader.
func New(op db.Operator) ratedb.Loader {
	return &loader{operator: op}
}

// LoadJoined performs an inner join of ratings to movies on
// movie_id = movies.id, projecting (title, person, rating). Inner-join
// semantics mean a rating without a matching movie would be excluded,
// though referential integrity guarantees none exists. Rows come back
// in rating insertion order (ORDER BY ratings.id), which is stable
// across repeated calls on unchanged data.
func (l *loader) LoadJoined(
	ctx context.Context,
) ([]ratedb.JoinedObservation, error) {
	if l.operator.DB() == nil {
		return nil, NotConnectedError()
	}

	query := `
		SELECT m.title, r.person, r.rating
		FROM ratings r
		JOIN movies m ON m.id = r.movie_id
		ORDER BY r.id
	`

	rows, err := l.operator.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, JoinError(err)
	}
	defer rows.Close()

	var res []ratedb.JoinedObservation
	for rows.Next() {
		var obs ratedb.JoinedObservation
		if err := rows.Scan(&obs.Title, &obs.Person, &obs.Rating); err != nil {
			return nil, ScanError(err)
		}
		res = append(res, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, ScanError(err)
	}

	slog.Info("Joined relation loaded", "rows", len(res))
	return res, nil
}
