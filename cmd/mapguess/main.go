// mapguess is a terminal geography game: a country silhouette is
// highlighted and the player types its name.
package main

import (
	"fmt"
	"os"

	configfile "github.com/mapguess/mapguess-cli/internal/adapters/driven/config/file"
	"github.com/mapguess/mapguess-cli/internal/adapters/driven/dataset/localfile"
	"github.com/mapguess/mapguess-cli/internal/adapters/driven/dataset/naturalearth"
	"github.com/mapguess/mapguess-cli/internal/adapters/driven/storage/sqlite"
	"github.com/mapguess/mapguess-cli/internal/adapters/driving/cli"
	"github.com/mapguess/mapguess-cli/internal/core/ports/driving"
	"github.com/mapguess/mapguess-cli/internal/core/services"
)

// version is set at build time via
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var store *sqlite.Store

	// Wiring is deferred until flags are parsed so --data-dir and
	// --config-dir take effect. Empty dirs mean ~/.mapguess.
	cli.SetVersion(version)
	cli.SetBootstrap(func(dataDir, configDir string) error {
		configStore, err := configfile.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("initialising config: %w", err)
		}

		store, err = sqlite.NewStore(dataDir)
		if err != nil {
			return fmt.Errorf("initialising storage: %w", err)
		}

		settingsService := services.NewSettingsService(configStore)
		gameService := services.NewGameService(store.CountryStore(), store.SessionStore(), settingsService)
		statsService := services.NewStatsService(store.SessionStore())

		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		provider := naturalearth.NewProvider(naturalearth.Config{URL: settings.Dataset.URL})
		datasetService := services.NewDatasetService(provider, store.CountryStore())

		cli.SetGameService(gameService)
		cli.SetDatasetService(datasetService)
		cli.SetStatsService(statsService)
		cli.SetSettingsService(settingsService)
		cli.SetLocalDatasetService(func(path string) driving.DatasetService {
			return services.NewDatasetService(localfile.NewProvider(path), store.CountryStore())
		})
		return nil
	})

	defer func() {
		if store != nil {
			store.Close() //nolint:errcheck // best-effort close on exit
		}
	}()

	return cli.Execute()
}
