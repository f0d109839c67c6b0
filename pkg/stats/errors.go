package stats

import (
	"fmt"

	"github.com/filmsurvey/ratedb/pkg/errcode"
	"github.com/gnames/gn"
)

// NoObservationsError creates an error for when the global mean is
// undefined because no present rating exists anywhere.
func NoObservationsError(total int) error {
	msg := `Cannot impute: no present ratings in the dataset

<em>Rows loaded:</em> %d

The global mean of an empty set is undefined, so there is nothing to
substitute for the absent values.`

	vars := []any{total}

	return &gn.Error{
		Code: errcode.ImputeNoObservationsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"cannot compute global mean: 0 present ratings in %d rows",
			total),
	}
}

// GroupSizeError creates an error for a movie group too small to
// standardize.
func GroupSizeError(title string, size int) error {
	msg := `Cannot standardize: movie group is too small

<em>Movie:</em> %s
<em>Rows:</em> %d

Sample standard deviation needs at least two rows per group.`

	vars := []any{title, size}

	return &gn.Error{
		Code: errcode.StandardizeGroupSizeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"group %q has %d row(s), need at least 2", title, size),
	}
}

// ZeroVarianceError creates an error for a movie group whose ratings
// are all identical, making the z-score undefined.
func ZeroVarianceError(title string, size int) error {
	msg := `Cannot standardize: movie group has zero variance

<em>Movie:</em> %s
<em>Rows:</em> %d

All ratings in the group are identical, so the standard deviation is
zero and z-scores are undefined.`

	vars := []any{title, size}

	return &gn.Error{
		Code: errcode.StandardizeZeroVarianceError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"group %q has zero variance across %d rows", title, size),
	}
}

// MissingRatingError creates an error for a row that reached the
// standardizer without a rating value. The imputer must run first.
func MissingRatingError(row int, title, person string) error {
	msg := `Cannot standardize: dataset still has absent ratings

<em>Row:</em> %d
<em>Movie:</em> %s
<em>Person:</em> %s

Run imputation before standardization.`

	vars := []any{row, title, person}

	return &gn.Error{
		Code: errcode.StandardizeMissingRatingError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"absent rating at row %d (%s / %s)", row, title, person),
	}
}
