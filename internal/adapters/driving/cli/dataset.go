package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

var datasetFile string

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the country dataset",
	Long: `Download and inspect the Natural Earth country dataset.

The dataset must be synced once before playing. By default it is
fetched from the configured URL; use --file to load a local GeoJSON
file instead.`,
}

var datasetSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download the country dataset",
	RunE:  runDatasetSync,
}

var datasetInfoCmd = &cobra.Command{
	Use:   "info [country]",
	Short: "Show stored dataset counts, or one country's details",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDatasetInfo,
}

func init() {
	datasetSyncCmd.Flags().StringVar(&datasetFile, "file", "", "sync from a local GeoJSON file instead of the configured URL")
	datasetCmd.AddCommand(datasetSyncCmd)
	datasetCmd.AddCommand(datasetInfoCmd)
	rootCmd.AddCommand(datasetCmd)
}

func runDatasetSync(cmd *cobra.Command, _ []string) error {
	service := datasetService
	if datasetFile != "" {
		if localDatasetService == nil {
			return errors.New("local dataset sync not configured")
		}
		service = localDatasetService(datasetFile)
	}
	if service == nil {
		return errors.New("dataset service not configured")
	}

	cmd.Println("Syncing country dataset...")

	count, err := service.Sync(context.Background())
	if err != nil {
		return fmt.Errorf("dataset sync failed: %w", err)
	}

	cmd.Printf("Synced %d countries.\n", count)
	return nil
}

func runDatasetInfo(cmd *cobra.Command, args []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	if len(args) == 1 {
		return describeCountry(cmd, args[0])
	}

	info, err := datasetService.Info(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	if info.Count == 0 {
		cmd.Println("No dataset stored. Run 'mapguess dataset sync' first.")
		return nil
	}

	cmd.Printf("Countries: %d\n", info.Count)
	cmd.Println()

	continents := make([]string, 0, len(info.ByContinent))
	for continent := range info.ByContinent {
		continents = append(continents, continent)
	}
	sort.Strings(continents)

	for _, continent := range continents {
		cmd.Printf("  %-15s %d\n", continent, info.ByContinent[continent])
	}

	return nil
}

func describeCountry(cmd *cobra.Command, name string) error {
	country, err := datasetService.Describe(context.Background(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no country named %q in the dataset", name)
		}
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	cmd.Printf("Name:       %s\n", country.Name)
	if country.ISOA2 != "" || country.ISOA3 != "" {
		cmd.Printf("ISO codes:  %s / %s\n", country.ISOA2, country.ISOA3)
	}
	cmd.Printf("Continent:  %s\n", country.Continent)
	if country.Population > 0 {
		cmd.Printf("Population: %d\n", country.Population)
	}
	if country.HasGeometry() {
		cmd.Printf("Polygons:   %d\n", len(country.Polygons))
	} else {
		cmd.Println("Polygons:   none")
	}
	return nil
}
