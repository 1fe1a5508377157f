package filter

import (
	"fmt"
	"testing"
	"time"

	"github.com/s0up4200/arrkit/radarr"
)

func generateTestMovies(n int) []radarr.Movie {
	movies := make([]radarr.Movie, n)
	for i := range movies {
		movies[i] = radarr.Movie{
			ID:        int64(i + 1),
			Title:     fmt.Sprintf("Movie %d", i),
			Year:      1980 + i%45,
			Added:     time.Now().AddDate(0, 0, -i),
			Monitored: i%2 == 0,
			HasFile:   i%3 == 0,
			Tags:      []int{i % 4},
		}
	}
	return movies
}

func BenchmarkCompile(b *testing.B) {
	expressions := []struct {
		name string
		expr string
	}{
		{"simple", `hasTag("action")`},
		{"complex", `hasTag("action") and year > 2022 and daysSince(added) > 30`},
	}

	for _, tc := range expressions {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Compile(tc.expr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSelect(b *testing.B) {
	movies := generateTestMovies(1000)
	f, err := Compile(`hasTag("action") and year > 2000`, WithTags(map[int]string{1: "action"}))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Select(f, movies, nil)
	}
}
