package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repository = "s0up4200/arrkit"

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the build information reported by the version command
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

func init() {
	rootCmd.AddCommand(skipInit(versionCmd))
	rootCmd.AddCommand(skipInit(updateCmd))
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("arrkit %s (built %s, %s/%s)\n", version, buildTime, runtime.GOOS, runtime.GOARCH)
	},
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update arrkit to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentVersion()
		if err != nil {
			return err
		}

		latest, found, err := selfupdate.DetectLatest(cmd.Context(), selfupdate.ParseSlug(repository))
		if err != nil {
			return fmt.Errorf("failed to detect latest release: %w", err)
		}
		if !found {
			return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
		}

		if latest.LessOrEqual(current.String()) {
			fmt.Printf("✓ arrkit %s is up to date\n", current)
			return nil
		}

		if err := applyUpdate(cmd.Context(), latest); err != nil {
			return err
		}
		fmt.Printf("✓ Updated arrkit %s → %s\n", current, latest.Version())
		return nil
	},
}

// currentVersion parses the build version. Development builds cannot be
// updated.
func currentVersion() (semver.Version, error) {
	if version == "dev" {
		return semver.Version{}, fmt.Errorf("development builds cannot be updated")
	}
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid build version %q: %w", version, err)
	}
	return v, nil
}

func applyUpdate(ctx context.Context, release *selfupdate.Release) error {
	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	fmt.Fprintf(os.Stderr, "→ Downloading %s...\n", release.AssetName)
	if err := selfupdate.UpdateTo(ctx, release.AssetURL, release.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}
	return nil
}
