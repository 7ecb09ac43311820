package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure gameplay settings.

Use subcommands to set the matching difficulty, the region filter,
map rendering, or the dataset URL.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsDifficultyCmd = &cobra.Command{
	Use:   "difficulty [strict|normal|relaxed]",
	Short: "Set guess matching difficulty",
	Long: `Set how forgiving guess matching is.

Available difficulties:
  strict  - exact names and aliases only
  normal  - one typo allowed in longer names
  relaxed - two typos allowed in longer names`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsDifficulty,
}

var settingsRegionCmd = &cobra.Command{
	Use:   "region [world|africa|asia|europe|north_america|south_america|oceania]",
	Short: "Set the region filter",
	Long:  `Restrict games to countries from one continent, or play the whole world.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsRegion,
}

var settingsMapCmd = &cobra.Command{
	Use:   "map [on|off]",
	Short: "Toggle country silhouette rendering",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsMap,
}

var settingsURLCmd = &cobra.Command{
	Use:   "url [dataset-url]",
	Short: "Set the dataset GeoJSON URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsURL,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsDifficultyCmd)
	settingsCmd.AddCommand(settingsRegionCmd)
	settingsCmd.AddCommand(settingsMapCmd)
	settingsCmd.AddCommand(settingsURLCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Game]")
	cmd.Printf("  Difficulty: %s\n", settings.Game.Difficulty.Description())
	cmd.Printf("  Region: %s\n", settings.Game.Region.Description())
	showMap := "on"
	if !settings.Game.ShowMap {
		showMap = "off"
	}
	cmd.Printf("  Show map: %s\n", showMap)
	cmd.Println()

	cmd.Println("[Dataset]")
	cmd.Printf("  URL: %s\n", settings.Dataset.URL)

	return nil
}

func runSettingsDifficulty(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var selected domain.Difficulty
	if len(args) > 0 {
		selected = domain.Difficulty(strings.ToLower(args[0]))
		if !selected.IsValid() {
			return fmt.Errorf("unknown difficulty %q", args[0])
		}
	} else {
		reader := bufio.NewReader(os.Stdin)
		cmd.Println("Select Difficulty")
		cmd.Println("-----------------")
		all := domain.AllDifficulties()
		for i, d := range all {
			cmd.Printf("  %d. %s\n", i+1, d.Description())
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(reader), len(all), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		selected = all[idx-1]
	}

	if err := settingsService.SetDifficulty(selected); err != nil {
		return fmt.Errorf("failed to set difficulty: %w", err)
	}

	cmd.Printf("Difficulty set to: %s\n", selected.Description())
	return nil
}

func runSettingsRegion(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var selected domain.Region
	if len(args) > 0 {
		selected = domain.Region(strings.ToLower(args[0]))
		if !selected.IsValid() {
			return fmt.Errorf("unknown region %q", args[0])
		}
	} else {
		reader := bufio.NewReader(os.Stdin)
		cmd.Println("Select Region")
		cmd.Println("-------------")
		all := domain.AllRegions()
		for i, r := range all {
			cmd.Printf("  %d. %s\n", i+1, r.Description())
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(reader), len(all), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		selected = all[idx-1]
	}

	if err := settingsService.SetRegion(selected); err != nil {
		return fmt.Errorf("failed to set region: %w", err)
	}

	cmd.Printf("Region set to: %s\n", selected.Description())
	return nil
}

func runSettingsMap(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var show bool
	switch strings.ToLower(args[0]) {
	case "on", "true", "yes":
		show = true
	case "off", "false", "no":
		show = false
	default:
		return fmt.Errorf("expected on or off, got %q", args[0])
	}

	if err := settingsService.SetShowMap(show); err != nil {
		return fmt.Errorf("failed to set map rendering: %w", err)
	}

	state := "off"
	if show {
		state = "on"
	}
	cmd.Printf("Map rendering: %s\n", state)
	return nil
}

func runSettingsURL(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	url := strings.TrimSpace(args[0])
	if url == "" {
		return errors.New("dataset URL must not be empty")
	}

	if err := settingsService.SetDatasetURL(url); err != nil {
		return fmt.Errorf("failed to set dataset URL: %w", err)
	}

	cmd.Printf("Dataset URL set to: %s\n", url)
	cmd.Println("Run 'mapguess dataset sync' to fetch from the new URL.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
