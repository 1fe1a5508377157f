package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/arrkit/arr"
	"github.com/s0up4200/arrkit/sonarr"
)

func newSonarrCmd() *cobra.Command {
	parent := managerCmd("sonarr", "Sonarr", func() *arr.Client {
		if sonarrClient == nil {
			return nil
		}
		return sonarrClient.Client
	})

	parent.AddCommand(sonarrListCmd(), sonarrLookupCmd(), sonarrAddCmd(), sonarrDeleteCmd())
	return parent
}

func requireSonarr() (*sonarr.Client, error) {
	if sonarrClient == nil {
		return nil, fmt.Errorf("Sonarr is not enabled in config (set sonarr.enabled)")
	}
	return sonarrClient, nil
}

func seriesTable(series []sonarr.Series, empty string) *table {
	t := &table{
		headers: []string{"ID", "Title", "Year", "Seasons", "Episodes", "Monitored"},
		data:    series,
		empty:   empty,
	}
	for _, s := range series {
		episodes := "-"
		if s.Statistics != nil {
			episodes = fmt.Sprintf("%d/%d", s.Statistics.EpisodeFileCount, s.Statistics.EpisodeCount)
		}
		t.append(formatID(s.ID), s.Title, strconv.Itoa(s.Year), strconv.Itoa(len(s.Seasons)), episodes, formatBool(s.Monitored))
	}
	return t
}

func sonarrListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List series, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSonarr()
			if err != nil {
				return err
			}

			f, err := compileFilter(cmd, c.Client)
			if err != nil {
				return err
			}

			series, err := c.GetSeries(cmd.Context())
			if err != nil {
				return err
			}
			series = applyFilter(f, series)

			return render(os.Stdout, outputFormat, seriesTable(series, "No series found matching the filter criteria."))
		},
	}
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	return cmd
}

func sonarrLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup TERM",
		Short: "Search for series to add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSonarr()
			if err != nil {
				return err
			}

			results, err := c.LookupSeries(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			t := &table{headers: []string{"TVDB ID", "Title", "Year", "Network", "In Library"}, data: results, empty: "No series found."}
			for _, s := range results {
				t.append(formatID(s.TvdbID), s.Title, strconv.Itoa(s.Year), s.Network, formatBool(s.ID != 0))
			}
			return render(os.Stdout, outputFormat, t)
		},
	}
}

func sonarrAddCmd() *cobra.Command {
	var (
		flags        addFlags
		languageProf int64
		seriesType   string
		monitor      string
	)

	cmd := &cobra.Command{
		Use:   "add TVDB_ID",
		Short: "Add a series by its TVDB id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSonarr()
			if err != nil {
				return err
			}

			tvdbID, err := parseID(args[0])
			if err != nil {
				return err
			}

			series, err := c.AddSeries(cmd.Context(), tvdbID, sonarr.AddSeriesOptions{
				QualityProfileID:         flags.qualityProfile,
				LanguageProfileID:        languageProf,
				RootFolderPath:           flags.rootFolder,
				Monitored:                !flags.unmonitored,
				SeasonFolder:             true,
				SeriesType:               seriesType,
				Tags:                     flags.tags,
				Monitor:                  monitor,
				SearchForMissingEpisodes: flags.search,
			})
			if err != nil {
				return err
			}

			logger.Info().Int64("id", series.ID).Str("title", series.Title).Msg("Series added")
			return render(os.Stdout, outputFormat, seriesTable([]sonarr.Series{*series}, ""))
		},
	}
	flags.register(cmd, false)
	cmd.Flags().Int64Var(&languageProf, "language-profile", 0, "language profile id (Sonarr v3)")
	cmd.Flags().StringVar(&seriesType, "type", sonarr.SeriesTypeStandard, "series type: standard, daily or anime")
	cmd.Flags().StringVar(&monitor, "monitor", sonarr.MonitorAll, "episodes to monitor")
	return cmd
}

func sonarrDeleteCmd() *cobra.Command {
	var flags deleteFlags

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireSonarr()
			if err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := c.DeleteSeries(cmd.Context(), id, flags.deleteFiles, flags.exclude); err != nil {
				return err
			}
			fmt.Printf("✓ Deleted series %d\n", id)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
