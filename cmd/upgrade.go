package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/arrkit/radarr"
)

// defaultUpgradeFilter selects movies that have a file and are still wanted
const defaultUpgradeFilter = `hasFile && monitored`

func upgradeCmd() *cobra.Command {
	var (
		unattendedCount int
		monitor         bool
		dryRun          bool
	)

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Trigger upgrade searches for movies matching a filter",
		Long: `Select movies with a filter expression and trigger searches for better releases.

Movies are picked interactively, or at random with --unattended N. Searches are
sent in batches of ten movies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireRadarr()
			if err != nil {
				return err
			}

			if filterExpr == "" {
				filterExpr = defaultUpgradeFilter
			}
			logger.Info().Str("filter", filterExpr).Msg("Scanning for movies to upgrade...")

			candidates, err := filteredMovies(cmd, c)
			if err != nil {
				return err
			}

			if len(candidates) == 0 {
				fmt.Println("✓ No movies match the filter!")
				return nil
			}

			printCandidates(candidates)

			var selected []radarr.Movie
			if unattendedCount > 0 {
				selected = pickRandom(candidates, unattendedCount)
				fmt.Printf("\n[UNATTENDED MODE] Upgrading %d %s\n", len(selected), plural(len(selected), "movie"))
			} else {
				selected, err = promptSelection(candidates)
				if err != nil {
					return err
				}
				if len(selected) == 0 {
					fmt.Println("No movies selected for upgrade.")
					return nil
				}
			}

			if dryRun {
				fmt.Println("[DRY RUN] Would trigger upgrade searches for:")
				for _, m := range selected {
					fmt.Printf("  - %s (%d)", m.Title, m.Year)
					if monitor && !m.Monitored {
						fmt.Printf(" [would enable monitoring]")
					}
					fmt.Println()
				}
				return nil
			}

			ids := make([]int64, len(selected))
			var unmonitored []int64
			for i, m := range selected {
				ids[i] = m.ID
				if !m.Monitored {
					unmonitored = append(unmonitored, m.ID)
				}
			}

			if monitor && len(unmonitored) > 0 {
				fmt.Printf("→ Enabling monitoring for %d %s... ", len(unmonitored), plural(len(unmonitored), "movie"))
				enabled := true
				if _, err := c.EditMovies(cmd.Context(), radarr.MovieEditor{MovieIDs: unmonitored, Monitored: &enabled}); err != nil {
					logger.Error().Err(err).Msg("Failed to enable monitoring")
					fmt.Printf("✗ Failed: %v\n", err)
				} else {
					fmt.Printf("✓ Enabled\n")
				}
			}

			fmt.Printf("\nTriggering upgrade searches for %d %s...\n", len(ids), plural(len(ids), "movie"))
			if err := c.BatchSearchMovies(cmd.Context(), ids); err != nil {
				return err
			}
			fmt.Printf("✓ Successfully triggered searches for %d %s\n", len(ids), plural(len(ids), "movie"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression (default \""+defaultUpgradeFilter+"\")")
	cmd.Flags().IntVar(&unattendedCount, "unattended", 0, "run in unattended mode, upgrading N random movies")
	cmd.Flags().BoolVar(&monitor, "monitor", true, "monitor selected movies before searching")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "show what would be searched without doing it")
	return cmd
}

func printCandidates(movies []radarr.Movie) {
	fmt.Printf("Found %d %s:\n\n", len(movies), plural(len(movies), "movie"))

	fmt.Println(strings.Repeat("━", 85))
	fmt.Printf("%-4s %-50s %-6s %s\n", "#", "MOVIE", "YEAR", "QUALITY")
	fmt.Println(strings.Repeat("━", 85))

	for i, m := range movies {
		quality := "None"
		if m.MovieFile != nil && m.MovieFile.Quality.Quality.Name != "" {
			quality = m.MovieFile.Quality.Quality.Name
		}

		fmt.Printf("%-4d %-50s %-6d %s\n", i+1, shortTitle(m.Title), m.Year, quality)
	}
	fmt.Println(strings.Repeat("━", 85))
}

// shortTitle cuts titles longer than 48 characters on a rune boundary
func shortTitle(title string) string {
	runes := []rune(title)
	if len(runes) > 48 {
		return string(runes[:45]) + "..."
	}
	return title
}

func pickRandom(movies []radarr.Movie, count int) []radarr.Movie {
	count = min(count, len(movies))
	if count == len(movies) {
		return movies
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selected := make([]radarr.Movie, 0, count)
	for _, idx := range rng.Perm(len(movies))[:count] {
		selected = append(selected, movies[idx])
	}
	return selected
}

func promptSelection(movies []radarr.Movie) ([]radarr.Movie, error) {
	fmt.Printf("\nEnter movie numbers to upgrade (comma-separated, e.g. 1,3,5) or 'all' for all [Enter to cancel]: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		// No input (Ctrl+D or similar)
		return nil, nil
	}

	return parseSelection(scanner.Text(), movies)
}

// parseSelection resolves a comma-separated list of 1-based numbers, or
// "all", against movies. Duplicates are ignored.
func parseSelection(input string, movies []radarr.Movie) ([]radarr.Movie, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	if strings.EqualFold(input, "all") {
		return movies, nil
	}

	var selected []radarr.Movie
	seen := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		num, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid number '%s': must be a positive integer", part)
		}
		if num < 1 || num > len(movies) {
			return nil, fmt.Errorf("invalid movie number %d: must be between 1 and %d", num, len(movies))
		}

		if !seen[num] {
			seen[num] = true
			selected = append(selected, movies[num-1])
		}
	}
	return selected, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
