// Package survey defines the ingestion input for RateDB: a fixed
// catalog of movie titles plus rating observations, some of which may
// be absent. Surveys arrive as YAML files; see survey.yaml in the
// config directory for the reference layout.
package survey

import (
	"gopkg.in/yaml.v3"
)

// RatingLimits bound a present rating value.
const (
	RatingMin = 1
	RatingMax = 5
)

// Survey represents one survey input file.
type Survey struct {
	// Movies is the ordered movie catalog. Position in this list is the
	// movie reference used by Ratings (1-based).
	Movies []string `yaml:"movies"`

	// Ratings are the observations, in the order they were collected.
	Ratings []RatingRow `yaml:"ratings"`
}

// RatingRow is a single observation of the survey.
type RatingRow struct {
	// Movie is the 1-based position of the rated movie in the catalog.
	Movie int `yaml:"movie"`

	// Person identifies the rater.
	Person string `yaml:"person"`

	// Rating is an integer in [1,5]; nil marks an absent observation.
	// YAML null maps to nil, so "rating: null" (or omitting the key)
	// records a missing value without any sentinel number.
	Rating *int `yaml:"rating"`
}

// Parse reads a survey from YAML bytes and validates it.
func Parse(data []byte) (*Survey, error) {
	var s Survey
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, ParseError(err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the survey invariants before any SQL runs:
// non-empty titles and persons, resolvable movie references, ratings
// within [1,5]. The first violation is returned with the offending
// position.
func (s *Survey) Validate() error {
	for i, title := range s.Movies {
		if title == "" {
			return EmptyTitleError(i + 1)
		}
	}

	for i, row := range s.Ratings {
		if row.Person == "" {
			return EmptyPersonError(i + 1)
		}
		if row.Movie < 1 || row.Movie > len(s.Movies) {
			return MovieRefError(i+1, row.Movie, len(s.Movies))
		}
		if row.Rating != nil &&
			(*row.Rating < RatingMin || *row.Rating > RatingMax) {
			return RatingRangeError(i+1, *row.Rating)
		}
	}
	return nil
}

// Absent returns the number of observations without a rating value.
func (s *Survey) Absent() int {
	var n int
	for _, row := range s.Ratings {
		if row.Rating == nil {
			n++
		}
	}
	return n
}
