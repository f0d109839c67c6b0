package survey

// Reference returns the built-in reference survey: 6 movies rated by
// 10 people, with exactly one absent rating per movie (60 rows total,
// 54 present, 6 absent). The 54 present values sum to 176, so the
// global mean is 176/54 ≈ 3.2593. Every movie group keeps nonzero
// variance after imputation.
//
// The same dataset ships as the generated survey.yaml template.
func Reference() *Survey {
	movies := []string{
		"The Shawshank Redemption",
		"Jurassic Park",
		"Spirited Away",
		"The Room",
		"The Godfather",
		"Plan 9 from Outer Space",
	}

	people := []string{
		"alice", "ben", "carla", "dmitri", "elena",
		"fuad", "grace", "henry", "iris", "jack",
	}

	// One row per person per movie; 0 marks the observation each rater
	// skipped and becomes a nil Rating below.
	scores := map[string][6]int{
		"alice":  {0, 3, 4, 2, 4, 1},
		"ben":    {5, 4, 3, 3, 5, 2},
		"carla":  {4, 0, 4, 2, 4, 1},
		"dmitri": {5, 2, 5, 1, 4, 2},
		"elena":  {4, 3, 0, 3, 3, 1},
		"fuad":   {5, 4, 4, 2, 5, 3},
		"grace":  {3, 3, 3, 0, 4, 2},
		"henry":  {5, 2, 4, 3, 4, 2},
		"iris":   {4, 4, 4, 2, 0, 2},
		"jack":   {5, 3, 3, 2, 5, 0},
	}

	var rows []RatingRow
	for _, person := range people {
		for i := range movies {
			row := RatingRow{Movie: i + 1, Person: person}
			if v := scores[person][i]; v > 0 {
				rating := v
				row.Rating = &rating
			}
			rows = append(rows, row)
		}
	}

	return &Survey{Movies: movies, Ratings: rows}
}
