// Package cli implements the command-line interface for mapguess.
// It is a driving adapter: commands translate flags and arguments into
// calls on the core services, which are injected via the Set* functions
// before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
	"github.com/mapguess/mapguess-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Set by main before Execute.
var (
	gameService     driving.GameService
	datasetService  driving.DatasetService
	statsService    driving.StatsService
	settingsService driving.SettingsService

	// localDatasetService builds a dataset service reading from a local
	// GeoJSON file instead of the configured URL. Used by `dataset sync --file`.
	localDatasetService func(path string) driving.DatasetService

	// bootstrap wires the driven adapters and services once flags are
	// parsed, so --data-dir and --config-dir take effect. Set by main;
	// tests inject services directly and leave it nil.
	bootstrap func(dataDir, configDir string) error
)

var (
	verbose   bool
	dataDir   string
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "mapguess",
	Short: "Guess the highlighted country from your terminal",
	Long: `mapguess is a geography guessing game played in the terminal.

A country from the Natural Earth dataset is highlighted as a silhouette
and you type its name. Empty guesses skip the round and reveal the
answer. The game ends when every country has been played.

Run 'mapguess dataset sync' once to download the country dataset,
then 'mapguess play' to start a game.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if bootstrap != nil {
			return bootstrap(dataDir, configDir)
		}
		return nil
	},
	// Running mapguess without a subcommand starts a game.
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory (default ~/.mapguess)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "override the config directory (default ~/.mapguess)")
}

// SetGameService injects the game service.
func SetGameService(s driving.GameService) {
	gameService = s
}

// SetDatasetService injects the dataset service.
func SetDatasetService(s driving.DatasetService) {
	datasetService = s
}

// SetStatsService injects the stats service.
func SetStatsService(s driving.StatsService) {
	statsService = s
}

// SetSettingsService injects the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetLocalDatasetService injects a factory for file-backed dataset syncs.
func SetLocalDatasetService(factory func(path string) driving.DatasetService) {
	localDatasetService = factory
}

// SetBootstrap registers the wiring function invoked after flag parsing.
func SetBootstrap(fn func(dataDir, configDir string) error) {
	bootstrap = fn
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// RootCmd exposes the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
