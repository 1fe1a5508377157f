package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/arrkit/arr"
	"github.com/s0up4200/arrkit/radarr"
)

func newRadarrCmd() *cobra.Command {
	parent := managerCmd("radarr", "Radarr", func() *arr.Client {
		if radarrClient == nil {
			return nil
		}
		return radarrClient.Client
	})

	parent.AddCommand(radarrListCmd(), radarrLookupCmd(), radarrAddCmd(), radarrDeleteCmd(), upgradeCmd())
	return parent
}

func requireRadarr() (*radarr.Client, error) {
	if radarrClient == nil {
		return nil, fmt.Errorf("Radarr is not enabled in config (set radarr.enabled)")
	}
	return radarrClient, nil
}

func movieTable(movies []radarr.Movie, empty string) *table {
	t := &table{
		headers: []string{"ID", "Title", "Year", "Added", "File", "Monitored"},
		data:    movies,
		empty:   empty,
	}
	for _, m := range movies {
		t.append(formatID(m.ID), m.Title, strconv.Itoa(m.Year), formatDate(m.Added), formatBool(m.HasFile), formatBool(m.Monitored))
	}
	return t
}

// filteredMovies fetches the collection and applies the --filter expression
func filteredMovies(cmd *cobra.Command, c *radarr.Client) ([]radarr.Movie, error) {
	f, err := compileFilter(cmd, c.Client)
	if err != nil {
		return nil, err
	}

	movies, err := c.GetMovies(cmd.Context())
	if err != nil {
		return nil, err
	}
	return applyFilter(f, movies), nil
}

func radarrListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movies, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRadarr()
			if err != nil {
				return err
			}

			movies, err := filteredMovies(cmd, c)
			if err != nil {
				return err
			}
			return render(os.Stdout, outputFormat, movieTable(movies, "No movies found matching the filter criteria."))
		},
	}
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	return cmd
}

func radarrLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup TERM",
		Short: "Search for movies to add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRadarr()
			if err != nil {
				return err
			}

			results, err := c.LookupMovie(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			t := &table{headers: []string{"TMDB ID", "Title", "Year", "Studio", "In Library"}, data: results, empty: "No movies found."}
			for _, m := range results {
				t.append(formatID(m.TmdbID), m.Title, strconv.Itoa(m.Year), m.Studio, formatBool(m.ID != 0))
			}
			return render(os.Stdout, outputFormat, t)
		},
	}
}

func radarrAddCmd() *cobra.Command {
	var (
		flags        addFlags
		availability string
	)

	cmd := &cobra.Command{
		Use:   "add TMDB_ID",
		Short: "Add a movie by its TMDB id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRadarr()
			if err != nil {
				return err
			}

			tmdbID, err := parseID(args[0])
			if err != nil {
				return err
			}

			movie, err := c.AddMovie(cmd.Context(), tmdbID, radarr.AddMovieOptions{
				QualityProfileID:    flags.qualityProfile,
				RootFolderPath:      flags.rootFolder,
				Monitored:           !flags.unmonitored,
				MinimumAvailability: availability,
				Tags:                flags.tags,
				SearchForMovie:      flags.search,
			})
			if err != nil {
				return err
			}

			logger.Info().Int64("id", movie.ID).Str("title", movie.Title).Msg("Movie added")
			return render(os.Stdout, outputFormat, movieTable([]radarr.Movie{*movie}, ""))
		},
	}
	flags.register(cmd, false)
	cmd.Flags().StringVar(&availability, "availability", radarr.AvailabilityReleased, "minimum availability: announced, inCinemas or released")
	return cmd
}

func radarrDeleteCmd() *cobra.Command {
	var flags deleteFlags

	cmd := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete one or more movies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRadarr()
			if err != nil {
				return err
			}

			movies := make([]radarr.Movie, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				movies = append(movies, radarr.Movie{ID: id, Title: arg})
			}

			result := c.BatchDeleteMovies(cmd.Context(), movies, flags.deleteFiles, flags.exclude)
			for _, id := range result.Successful {
				fmt.Printf("✓ Deleted movie %d\n", id)
			}
			for _, failure := range result.Failed {
				fmt.Printf("✗ %v\n", failure)
			}
			if len(result.Failed) > 0 {
				return fmt.Errorf("failed to delete %d of %d movies", len(result.Failed), result.Requested)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
