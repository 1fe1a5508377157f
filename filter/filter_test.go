package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/arrkit/radarr"
	"github.com/s0up4200/arrkit/sonarr"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasTag("action")`,
		},
		{
			name:        "empty expression",
			expression:  "  ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasTag("unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `hasTag("action") and year > 2020 and daysSince(added) > 30`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestMatchMovie(t *testing.T) {
	movie := radarr.Movie{
		ID:        1,
		Title:     "Test Movie",
		Year:      2023,
		Added:     time.Now().AddDate(-1, 0, 0),
		HasFile:   true,
		Monitored: true,
		Tags:      []int{1, 3},
		Genres:    []string{"Action", "Science Fiction"},
	}
	tags := map[int]string{1: "action", 2: "comedy", 3: "Sci-Fi"}

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{name: "tag match", expression: `hasTag("action")`, want: true},
		{name: "tag case insensitive", expression: `hasTag("sci-fi")`, want: true},
		{name: "tag not on movie", expression: `hasTag("comedy")`, want: false},
		{name: "unknown tag", expression: `hasTag("horror")`, want: false},
		{name: "year comparison", expression: `year >= 2023`, want: true},
		{name: "bool fields", expression: `monitored && hasFile`, want: true},
		{name: "added before", expression: `added < monthsAgo(6)`, want: true},
		{name: "added after", expression: `added > daysAgo(30)`, want: false},
		{name: "days since", expression: `daysSince(added) >= 364`, want: true},
		{name: "title helper", expression: `icontains(title, "test")`, want: true},
		{name: "starts with", expression: `istartsWith(title, "TEST")`, want: true},
		{name: "ends with", expression: `iendsWith(title, "MOVIE")`, want: true},
		{name: "ends with mismatch", expression: `iendsWith(title, "show")`, want: false},
		{name: "starts with operator", expression: `title startsWith "Test"`, want: true},
		{name: "builtin lower", expression: `lower(title) == "test movie"`, want: true},
		{name: "genre membership", expression: `"Action" in genres`, want: true},
		{name: "parse date", expression: `added > parseDate("2000-01-01")`, want: true},
		{name: "combined", expression: `hasTag("action") and not hasTag("comedy") and year > 2020`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression, WithTags(tags))
			require.NoError(t, err)

			got, err := f.Match(movie)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchNestedFields(t *testing.T) {
	series := sonarr.Series{
		Title:      "Show",
		Statistics: &sonarr.SeriesStatistics{EpisodeFileCount: 4, EpisodeCount: 10},
	}

	f, err := Compile(`statistics.episodeFileCount < statistics.episodeCount`)
	require.NoError(t, err)

	got, err := f.Match(series)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestHasTagWithoutLabels(t *testing.T) {
	f, err := Compile(`hasTag("action")`)
	require.NoError(t, err)

	got, err := f.Match(radarr.Movie{Title: "A", Tags: []int{1}})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestMatchEvaluationError(t *testing.T) {
	f, err := Compile(`title > 5`)
	require.NoError(t, err)

	_, err = f.Match(radarr.Movie{Title: "Broken"})
	require.Error(t, err)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "Broken", evalErr.Item)
	assert.Contains(t, err.Error(), "Broken")
}

func TestMatchNonObject(t *testing.T) {
	f, err := Compile(`true`)
	require.NoError(t, err)

	_, err = f.Match([]int{1, 2})
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	movies := []radarr.Movie{
		{ID: 1, Title: "Old", Year: 1975},
		{ID: 2, Title: "New", Year: 2024},
		{ID: 3, Title: "Older", Year: 1960},
	}

	f, err := Compile(`year < 1980`)
	require.NoError(t, err)

	selected := Select(f, movies, nil)
	require.Len(t, selected, 2)
	assert.Equal(t, int64(1), selected[0].ID)
	assert.Equal(t, int64(3), selected[1].ID)
}

func TestSelectReportsErrors(t *testing.T) {
	movies := []radarr.Movie{{Title: "A"}, {Title: "B"}}

	f, err := Compile(`title > 5`)
	require.NoError(t, err)

	var errs []error
	selected := Select(f, movies, func(err error) { errs = append(errs, err) })
	assert.Empty(t, selected)
	assert.Len(t, errs, 2)
}

func TestToItem(t *testing.T) {
	added := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	item, err := ToItem(radarr.Movie{Title: "1984", Added: added})
	require.NoError(t, err)

	assert.Equal(t, "1984", item["title"])
	assert.Equal(t, "1984", item.Name())
	assert.True(t, added.Equal(item["added"].(time.Time)))
	// unset dates become nil rather than year one
	assert.Nil(t, item["inCinemas"])
}
