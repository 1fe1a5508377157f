package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/arrkit/arr"
	"github.com/s0up4200/arrkit/readarr"
)

func newReadarrCmd() *cobra.Command {
	parent := managerCmd("readarr", "Readarr", func() *arr.Client {
		if readarrClient == nil {
			return nil
		}
		return readarrClient.Client
	})

	parent.AddCommand(readarrListCmd(), readarrLookupCmd(), readarrAddCmd(), readarrDeleteCmd())
	return parent
}

func requireReadarr() (*readarr.Client, error) {
	if readarrClient == nil {
		return nil, fmt.Errorf("Readarr is not enabled in config (set readarr.enabled)")
	}
	return readarrClient, nil
}

func authorTable(authors []readarr.Author, empty string) *table {
	t := &table{
		headers: []string{"ID", "Author", "Books", "Added", "Monitored"},
		data:    authors,
		empty:   empty,
	}
	for _, a := range authors {
		books := "-"
		if a.Statistics != nil {
			books = fmt.Sprintf("%d/%d", a.Statistics.BookFileCount, a.Statistics.BookCount)
		}
		t.append(formatID(a.ID), a.AuthorName, books, formatDate(a.Added), formatBool(a.Monitored))
	}
	return t
}

func readarrListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List authors, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireReadarr()
			if err != nil {
				return err
			}

			f, err := compileFilter(cmd, c.Client)
			if err != nil {
				return err
			}

			authors, err := c.GetAuthors(cmd.Context())
			if err != nil {
				return err
			}
			authors = applyFilter(f, authors)

			return render(os.Stdout, outputFormat, authorTable(authors, "No authors found matching the filter criteria."))
		},
	}
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	return cmd
}

func readarrLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup TERM",
		Short: "Search for authors to add",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireReadarr()
			if err != nil {
				return err
			}

			results, err := c.LookupAuthor(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			t := &table{headers: []string{"Foreign ID", "Author", "In Library"}, data: results, empty: "No authors found."}
			for _, a := range results {
				t.append(a.ForeignAuthorID, a.AuthorName, formatBool(a.ID != 0))
			}
			return render(os.Stdout, outputFormat, t)
		},
	}
}

func readarrAddCmd() *cobra.Command {
	var (
		flags   addFlags
		monitor string
	)

	cmd := &cobra.Command{
		Use:   "add TERM",
		Short: "Add the first author matching a lookup term, e.g. readarr:ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireReadarr()
			if err != nil {
				return err
			}

			author, err := c.AddAuthor(cmd.Context(), args[0], readarr.AddAuthorOptions{
				QualityProfileID:      flags.qualityProfile,
				MetadataProfileID:     flags.metadataProfile,
				RootFolderPath:        flags.rootFolder,
				Monitored:             !flags.unmonitored,
				Tags:                  flags.tags,
				Monitor:               monitor,
				SearchForMissingBooks: flags.search,
			})
			if err != nil {
				return err
			}

			logger.Info().Int64("id", author.ID).Str("author", author.AuthorName).Msg("Author added")
			return render(os.Stdout, outputFormat, authorTable([]readarr.Author{*author}, ""))
		},
	}
	flags.register(cmd, true)
	cmd.Flags().StringVar(&monitor, "monitor", readarr.MonitorAll, "existing books to monitor")
	return cmd
}

func readarrDeleteCmd() *cobra.Command {
	var flags deleteFlags

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireReadarr()
			if err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := c.DeleteAuthor(cmd.Context(), id, flags.deleteFiles, flags.exclude); err != nil {
				return err
			}
			fmt.Printf("✓ Deleted author %d\n", id)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
