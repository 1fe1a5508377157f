package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/arrkit/arr"
	"github.com/s0up4200/arrkit/filter"
)

// managerCmd builds the parent command of one application together with the
// subcommands every application shares. base returns the shared client, nil
// when the application is not enabled.
func managerCmd(name, title string, base func() *arr.Client) *cobra.Command {
	parent := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Manage a %s instance", title),
	}

	requireClient := func() (*arr.Client, error) {
		c := base()
		if c == nil {
			return nil, fmt.Errorf("%s is not enabled in config (set %s.enabled)", title, name)
		}
		return c, nil
	}

	parent.AddCommand(queueCmd(requireClient))
	parent.AddCommand(tagsCmd(requireClient))
	parent.AddCommand(rootFoldersCmd(requireClient))
	parent.AddCommand(profilesCmd(requireClient))

	return parent
}

func queueCmd(client func() (*arr.Client, error)) *cobra.Command {
	var includeUnknown bool

	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Show the download queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}

			records, err := c.GetAllQueue(cmd.Context(), arr.QueueParams{IncludeUnknown: includeUnknown})
			if err != nil {
				return err
			}

			t := &table{
				headers: []string{"ID", "Title", "Status", "Progress", "Time Left", "Client"},
				data:    records,
				empty:   "Queue is empty.",
			}
			for _, r := range records {
				progress := "-"
				if r.Size > 0 {
					progress = fmt.Sprintf("%.0f%% of %s", (r.Size-r.Sizeleft)/r.Size*100, formatSize(r.Size))
				}
				t.append(formatID(r.ID), r.Title, r.Status, progress, r.Timeleft, r.DownloadClient)
			}
			return render(os.Stdout, outputFormat, t)
		},
	}
	cmd.Flags().BoolVar(&includeUnknown, "include-unknown", false, "include downloads not matched to the collection")
	return cmd
}

func tagsCmd(client func() (*arr.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}

			tags, err := c.GetTags(cmd.Context())
			if err != nil {
				return err
			}

			t := &table{headers: []string{"ID", "Label"}, data: tags, empty: "No tags found."}
			for _, tag := range tags {
				t.append(strconv.Itoa(tag.ID), tag.Label)
			}
			return render(os.Stdout, outputFormat, t)
		},
	}
}

func rootFoldersCmd(client func() (*arr.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "rootfolders",
		Short: "List root folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}

			folders, err := c.GetRootFolders(cmd.Context())
			if err != nil {
				return err
			}

			t := &table{headers: []string{"ID", "Path", "Free Space", "Accessible"}, data: folders, empty: "No root folders found."}
			for _, f := range folders {
				t.append(formatID(f.ID), f.Path, formatSize(float64(f.FreeSpace)), formatBool(f.Accessible))
			}
			return render(os.Stdout, outputFormat, t)
		},
	}
}

func profilesCmd(client func() (*arr.Client, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List quality profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client()
			if err != nil {
				return err
			}

			profiles, err := c.GetQualityProfiles(cmd.Context())
			if err != nil {
				return err
			}

			t := &table{headers: []string{"ID", "Name", "Upgrades"}, data: profiles, empty: "No quality profiles found."}
			for _, p := range profiles {
				t.append(formatID(p.ID), p.Name, formatBool(p.UpgradeAllowed))
			}
			return render(os.Stdout, outputFormat, t)
		},
	}
}

// compileFilter compiles the --filter expression with tag labels of c, nil
// when no expression was given
func compileFilter(cmd *cobra.Command, c *arr.Client) (*filter.Filter, error) {
	if strings.TrimSpace(filterExpr) == "" {
		return nil, nil
	}

	tags, err := c.GetTags(cmd.Context())
	if err != nil {
		return nil, err
	}
	labels := make(map[int]string, len(tags))
	for _, tag := range tags {
		labels[tag.ID] = tag.Label
	}

	f, err := filter.Compile(filterExpr, filter.WithTags(labels))
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	logger.Debug().Str("filter", f.String()).Msg("Filtering collection")
	return f, nil
}

// applyFilter keeps the items matching f, all items when f is nil
func applyFilter[T any](f *filter.Filter, items []T) []T {
	if f == nil {
		return items
	}
	return filter.Select(f, items, func(err error) {
		logger.Warn().Err(err).Msg("Skipping item")
	})
}

// addFlags are the flags shared by the add subcommands
type addFlags struct {
	qualityProfile  int64
	metadataProfile int64
	rootFolder      string
	tags            []int
	unmonitored     bool
	search          bool
}

func (f *addFlags) register(cmd *cobra.Command, metadata bool) {
	cmd.Flags().Int64Var(&f.qualityProfile, "quality-profile", 0, "quality profile id")
	cmd.Flags().StringVar(&f.rootFolder, "root-folder", "", "root folder path")
	cmd.Flags().IntSliceVar(&f.tags, "tag", nil, "tag id, may be repeated")
	cmd.Flags().BoolVar(&f.unmonitored, "unmonitored", false, "add without monitoring")
	cmd.Flags().BoolVar(&f.search, "search", false, "search for missing items right away")
	_ = cmd.MarkFlagRequired("quality-profile")
	_ = cmd.MarkFlagRequired("root-folder")
	if metadata {
		cmd.Flags().Int64Var(&f.metadataProfile, "metadata-profile", 0, "metadata profile id")
		_ = cmd.MarkFlagRequired("metadata-profile")
	}
}

// deleteFlags are the flags shared by the delete subcommands
type deleteFlags struct {
	deleteFiles bool
	exclude     bool
}

func (f *deleteFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.deleteFiles, "delete-files", false, "also delete files from disk")
	cmd.Flags().BoolVar(&f.exclude, "exclude", false, "add an import exclusion so it is not re-added")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id '%s': must be a positive integer", arg)
	}
	return id, nil
}
