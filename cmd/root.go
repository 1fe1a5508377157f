package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/arrkit/arr"
	"github.com/s0up4200/arrkit/config"
	"github.com/s0up4200/arrkit/lidarr"
	"github.com/s0up4200/arrkit/logging"
	"github.com/s0up4200/arrkit/radarr"
	"github.com/s0up4200/arrkit/readarr"
	"github.com/s0up4200/arrkit/sonarr"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	appLog  *logging.Logger

	sonarrClient  *sonarr.Client
	radarrClient  *radarr.Client
	readarrClient *readarr.Client
	lidarrClient  *lidarr.Client

	// Command flags
	outputFormat string
	filterExpr   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "arrkit",
	Short: "A command line client for Sonarr, Radarr, Readarr and Lidarr",
	Long: `arrkit talks to the HTTP APIs of your Sonarr, Radarr, Readarr and Lidarr
instances. List and filter collections, look up and add new items, inspect the
download queue and check the health of every configured instance.`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table, json or yaml")

	// Add subcommands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(newSonarrCmd())
	rootCmd.AddCommand(newRadarrCmd())
	rootCmd.AddCommand(newReadarrCmd())
	rootCmd.AddCommand(newLidarrCmd())
}

// initializeApp initializes the configuration, logger and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := validateOutput(outputFormat); err != nil {
		return err
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	appLog, err = logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	logger = appLog.Logger

	if cfg.Sonarr.Enabled {
		if sonarrClient, err = sonarr.NewClient(cfg.Sonarr.URL, cfg.Sonarr.APIKey, logger, clientOptions(cfg.Sonarr)...); err != nil {
			return fmt.Errorf("failed to create Sonarr client: %w", err)
		}
	}
	if cfg.Radarr.Enabled {
		if radarrClient, err = radarr.NewClient(cfg.Radarr.URL, cfg.Radarr.APIKey, logger, clientOptions(cfg.Radarr)...); err != nil {
			return fmt.Errorf("failed to create Radarr client: %w", err)
		}
	}
	if cfg.Readarr.Enabled {
		if readarrClient, err = readarr.NewClient(cfg.Readarr.URL, cfg.Readarr.APIKey, logger, clientOptions(cfg.Readarr)...); err != nil {
			return fmt.Errorf("failed to create Readarr client: %w", err)
		}
	}
	if cfg.Lidarr.Enabled {
		if lidarrClient, err = lidarr.NewClient(cfg.Lidarr.URL, cfg.Lidarr.APIKey, logger, clientOptions(cfg.Lidarr)...); err != nil {
			return fmt.Errorf("failed to create Lidarr client: %w", err)
		}
	}

	return nil
}

func closeApp(cmd *cobra.Command, args []string) error {
	if appLog != nil {
		return appLog.Close()
	}
	return nil
}

// clientOptions translates an instance section and the shared http section
// into client options
func clientOptions(inst config.InstanceConfig) []arr.Option {
	opts := []arr.Option{
		arr.WithTimeout(inst.Timeout),
		arr.WithUserAgent(cfg.HTTP.UserAgent),
		arr.WithRetries(cfg.HTTP.RetryMax, cfg.HTTP.RetryWaitMin, cfg.HTTP.RetryWaitMax),
	}
	if inst.Username != "" || inst.Password != "" {
		opts = append(opts, arr.WithBasicAuth(inst.Username, inst.Password))
	}
	return opts
}

// skipInit replaces the root pre and post run hooks for commands that need no
// configuration
func skipInit(cmd *cobra.Command) *cobra.Command {
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil }
	cmd.PersistentPostRunE = func(*cobra.Command, []string) error { return nil }
	return cmd
}
