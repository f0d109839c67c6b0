package survey

import (
	"fmt"

	"github.com/filmsurvey/ratedb/pkg/errcode"
	"github.com/gnames/gn"
)

// ParseError creates an error for malformed survey YAML.
func ParseError(err error) error {
	msg := `Cannot parse survey file

<em>Possible causes:</em>
  - Malformed YAML syntax
  - Wrong field types (rating must be an integer or null)

<em>How to fix:</em>
  1. Validate the YAML syntax
  2. Compare against the generated survey.yaml template`

	return &gn.Error{
		Code: errcode.SurveyParseError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to parse survey: %w", err),
	}
}

// EmptyTitleError creates an error for a movie catalog entry without
// a title. Position is 1-based.
func EmptyTitleError(position int) error {
	msg := `Movie title cannot be empty

<em>Catalog position:</em> %d`

	vars := []any{position}

	return &gn.Error{
		Code: errcode.SurveyEmptyTitleError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("empty movie title at position %d", position),
	}
}

// EmptyPersonError creates an error for a rating row without a rater.
// Row is 1-based.
func EmptyPersonError(row int) error {
	msg := `Rating row has no rater

<em>Rating row:</em> %d`

	vars := []any{row}

	return &gn.Error{
		Code: errcode.SurveyEmptyPersonError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("empty person at rating row %d", row),
	}
}

// MovieRefError creates an error for a rating row whose movie
// reference does not resolve to a catalog entry.
func MovieRefError(row, ref, catalogSize int) error {
	msg := `Rating row references a movie outside the catalog

<em>Rating row:</em> %d
<em>Movie reference:</em> %d
<em>Catalog size:</em> %d

Movie references are 1-based positions in the movies list.`

	vars := []any{row, ref, catalogSize}

	return &gn.Error{
		Code: errcode.SurveyMovieRefError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"rating row %d references movie %d, catalog has %d",
			row, ref, catalogSize),
	}
}

// RatingRangeError creates an error for a present rating value
// outside [1,5].
func RatingRangeError(row, rating int) error {
	msg := `Rating value out of range

<em>Rating row:</em> %d
<em>Value:</em> %d

Present ratings must lie in [%d,%d]; use null for absent ones.`

	vars := []any{row, rating, RatingMin, RatingMax}

	return &gn.Error{
		Code: errcode.SurveyRatingRangeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"rating %d out of [%d,%d] at row %d",
			rating, RatingMin, RatingMax, row),
	}
}

// ReadError creates an error for an unreadable survey file.
func ReadError(path string, err error) error {
	msg := `Cannot read survey file

<em>File path:</em> %s`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SurveyReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read survey file %s: %w", path, err),
	}
}
