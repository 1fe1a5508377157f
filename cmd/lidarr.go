package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/arrkit/arr"
	"github.com/s0up4200/arrkit/lidarr"
)

func newLidarrCmd() *cobra.Command {
	parent := managerCmd("lidarr", "Lidarr", func() *arr.Client {
		if lidarrClient == nil {
			return nil
		}
		return lidarrClient.Client
	})

	parent.AddCommand(lidarrListCmd(), lidarrLookupCmd(), lidarrAddCmd(), lidarrDeleteCmd())
	return parent
}

func requireLidarr() (*lidarr.Client, error) {
	if lidarrClient == nil {
		return nil, fmt.Errorf("Lidarr is not enabled in config (set lidarr.enabled)")
	}
	return lidarrClient, nil
}

func artistTable(artists []lidarr.Artist, empty string) *table {
	t := &table{
		headers: []string{"ID", "Artist", "Tracks", "Added", "Monitored"},
		data:    artists,
		empty:   empty,
	}
	for _, a := range artists {
		tracks := "-"
		if a.Statistics != nil {
			tracks = fmt.Sprintf("%d/%d", a.Statistics.TrackFileCount, a.Statistics.TrackCount)
		}
		t.append(formatID(a.ID), a.ArtistName, tracks, formatDate(a.Added), formatBool(a.Monitored))
	}
	return t
}

func lidarrListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List artists, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLidarr()
			if err != nil {
				return err
			}

			f, err := compileFilter(cmd, c.Client)
			if err != nil {
				return err
			}

			artists, err := c.GetArtists(cmd.Context())
			if err != nil {
				return err
			}
			artists = applyFilter(f, artists)

			return render(os.Stdout, outputFormat, artistTable(artists, "No artists found matching the filter criteria."))
		},
	}
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	return cmd
}

func lidarrLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup TERM",
		Short: "Search for artists to add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLidarr()
			if err != nil {
				return err
			}

			results, err := c.LookupArtist(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			t := &table{headers: []string{"Foreign ID", "Artist", "In Library"}, data: results, empty: "No artists found."}
			for _, a := range results {
				t.append(a.ForeignArtistID, a.ArtistName, formatBool(a.ID != 0))
			}
			return render(os.Stdout, outputFormat, t)
		},
	}
}

func lidarrAddCmd() *cobra.Command {
	var (
		flags   addFlags
		monitor string
	)

	cmd := &cobra.Command{
		Use:   "add TERM",
		Short: "Add the first artist matching a lookup term, e.g. lidarr:MBID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLidarr()
			if err != nil {
				return err
			}

			artist, err := c.AddArtist(cmd.Context(), args[0], lidarr.AddArtistOptions{
				QualityProfileID:      flags.qualityProfile,
				MetadataProfileID:     flags.metadataProfile,
				RootFolderPath:        flags.rootFolder,
				Monitored:             !flags.unmonitored,
				Tags:                  flags.tags,
				Monitor:               monitor,
				SearchForMissingAlbums: flags.search,
			})
			if err != nil {
				return err
			}

			logger.Info().Int64("id", artist.ID).Str("artist", artist.ArtistName).Msg("Artist added")
			return render(os.Stdout, outputFormat, artistTable([]lidarr.Artist{*artist}, ""))
		},
	}
	flags.register(cmd, true)
	cmd.Flags().StringVar(&monitor, "monitor", lidarr.MonitorAll, "existing albums to monitor")
	return cmd
}

func lidarrDeleteCmd() *cobra.Command {
	var flags deleteFlags

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an artist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLidarr()
			if err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := c.DeleteArtist(cmd.Context(), id, flags.deleteFiles, flags.exclude); err != nil {
				return err
			}
			fmt.Printf("✓ Deleted artist %d\n", id)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
