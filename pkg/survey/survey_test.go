package survey_test

import (
	"testing"

	"github.com/filmsurvey/ratedb/pkg/errcode"
	"github.com/filmsurvey/ratedb/pkg/survey"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
movies:
  - Jurassic Park
  - Spirited Away

ratings:
  - movie: 1
    person: alice
    rating: 4
  - movie: 2
    person: alice
    rating: null
  - movie: 1
    person: ben
`)

	s, err := survey.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jurassic Park", "Spirited Away"}, s.Movies)
	require.Len(t, s.Ratings, 3)

	require.NotNil(t, s.Ratings[0].Rating)
	assert.Equal(t, 4, *s.Ratings[0].Rating)

	// Both explicit null and an omitted key record an absent
	// observation.
	assert.Nil(t, s.Ratings[1].Rating, "explicit null should be absent")
	assert.Nil(t, s.Ratings[2].Rating, "omitted rating should be absent")
	assert.Equal(t, 2, s.Absent())
}

func TestParseBadYAML(t *testing.T) {
	_, err := survey.Parse([]byte("movies: [unclosed"))
	require.Error(t, err)
	assertCode(t, err, errcode.SurveyParseError)
}

func TestValidate(t *testing.T) {
	four := 4
	nine := 9

	tests := []struct {
		name string
		s    survey.Survey
		code gn.ErrorCode
	}{
		{
			name: "empty movie title",
			s: survey.Survey{
				Movies: []string{"Jurassic Park", ""},
			},
			code: errcode.SurveyEmptyTitleError,
		},
		{
			name: "empty person",
			s: survey.Survey{
				Movies:  []string{"Jurassic Park"},
				Ratings: []survey.RatingRow{{Movie: 1, Rating: &four}},
			},
			code: errcode.SurveyEmptyPersonError,
		},
		{
			name: "movie reference out of range",
			s: survey.Survey{
				Movies: []string{"Jurassic Park"},
				Ratings: []survey.RatingRow{
					{Movie: 2, Person: "alice", Rating: &four},
				},
			},
			code: errcode.SurveyMovieRefError,
		},
		{
			name: "movie reference is zero",
			s: survey.Survey{
				Movies: []string{"Jurassic Park"},
				Ratings: []survey.RatingRow{
					{Movie: 0, Person: "alice", Rating: &four},
				},
			},
			code: errcode.SurveyMovieRefError,
		},
		{
			name: "rating above range",
			s: survey.Survey{
				Movies: []string{"Jurassic Park"},
				Ratings: []survey.RatingRow{
					{Movie: 1, Person: "alice", Rating: &nine},
				},
			},
			code: errcode.SurveyRatingRangeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			require.Error(t, err)
			assertCode(t, err, tt.code)
		})
	}
}

func TestValidateAbsentRating(t *testing.T) {
	// An absent rating is valid data, not a violation.
	s := survey.Survey{
		Movies: []string{"Jurassic Park"},
		Ratings: []survey.RatingRow{
			{Movie: 1, Person: "alice"},
		},
	}
	assert.NoError(t, s.Validate())
}

func TestReference(t *testing.T) {
	s := survey.Reference()
	require.NoError(t, s.Validate())

	assert.Len(t, s.Movies, 6)
	assert.Len(t, s.Ratings, 60, "10 raters x 6 movies")
	assert.Equal(t, 6, s.Absent(), "one absent observation per movie")

	// One absent observation per movie, not just six in total.
	absentPerMovie := make(map[int]int)
	var sum int
	for _, row := range s.Ratings {
		if row.Rating == nil {
			absentPerMovie[row.Movie]++
			continue
		}
		sum += *row.Rating
	}
	for movie := 1; movie <= 6; movie++ {
		assert.Equal(t, 1, absentPerMovie[movie],
			"movie %d should have exactly one absent rating", movie)
	}

	// The present values sum to 176, giving the documented global mean
	// of 176/54.
	assert.Equal(t, 176, sum)
}

func assertCode(t *testing.T, err error, code gn.ErrorCode) {
	t.Helper()
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, code, gnErr.Code)
}
