package domain

const unknownDescription = "Unknown"

// Difficulty controls how forgiving guess matching is.
type Difficulty string

// Available difficulties.
const (
	// DifficultyStrict accepts only exact (normalised) names and aliases.
	DifficultyStrict Difficulty = "strict"

	// DifficultyNormal tolerates one typo in longer names.
	DifficultyNormal Difficulty = "normal"

	// DifficultyRelaxed tolerates two typos in longer names.
	DifficultyRelaxed Difficulty = "relaxed"
)

// DefaultDifficulty is used when none is configured.
const DefaultDifficulty = DifficultyNormal

// AllDifficulties returns all difficulties in menu order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyStrict, DifficultyNormal, DifficultyRelaxed}
}

// IsValid returns true if the difficulty is recognised.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyStrict, DifficultyNormal, DifficultyRelaxed:
		return true
	default:
		return false
	}
}

// Tolerance returns the maximum Levenshtein distance accepted as a match.
func (d Difficulty) Tolerance() int {
	switch d {
	case DifficultyNormal:
		return 1
	case DifficultyRelaxed:
		return 2
	default:
		return 0
	}
}

// String returns the string representation.
func (d Difficulty) String() string {
	return string(d)
}

// Description returns a human-readable description of the difficulty.
func (d Difficulty) Description() string {
	switch d {
	case DifficultyStrict:
		return "Strict (exact names only)"
	case DifficultyNormal:
		return "Normal (one typo allowed)"
	case DifficultyRelaxed:
		return "Relaxed (two typos allowed)"
	default:
		return unknownDescription
	}
}

// Region filters which countries a session draws from.
// RegionWorld plays the full dataset; the others match the dataset's
// continent attribute.
type Region string

// Available regions.
const (
	RegionWorld        Region = "world"
	RegionAfrica       Region = "africa"
	RegionAsia         Region = "asia"
	RegionEurope       Region = "europe"
	RegionNorthAmerica Region = "north_america"
	RegionSouthAmerica Region = "south_america"
	RegionOceania      Region = "oceania"
)

// DefaultRegion is used when none is configured.
const DefaultRegion = RegionWorld

// AllRegions returns all regions in menu order.
func AllRegions() []Region {
	return []Region{
		RegionWorld, RegionAfrica, RegionAsia, RegionEurope,
		RegionNorthAmerica, RegionSouthAmerica, RegionOceania,
	}
}

// IsValid returns true if the region is recognised.
func (r Region) IsValid() bool {
	switch r {
	case RegionWorld, RegionAfrica, RegionAsia, RegionEurope,
		RegionNorthAmerica, RegionSouthAmerica, RegionOceania:
		return true
	default:
		return false
	}
}

// Continent returns the dataset continent name for the region, or the
// empty string for RegionWorld (no filter).
func (r Region) Continent() string {
	switch r {
	case RegionAfrica:
		return "Africa"
	case RegionAsia:
		return "Asia"
	case RegionEurope:
		return "Europe"
	case RegionNorthAmerica:
		return "North America"
	case RegionSouthAmerica:
		return "South America"
	case RegionOceania:
		return "Oceania"
	default:
		return ""
	}
}

// Matches reports whether a country falls inside the region.
func (r Region) Matches(c Country) bool {
	continent := r.Continent()
	return continent == "" || c.Continent == continent
}

// String returns the string representation.
func (r Region) String() string {
	return string(r)
}

// Description returns a human-readable description of the region.
func (r Region) Description() string {
	switch r {
	case RegionWorld:
		return "World (all countries)"
	case RegionAfrica:
		return "Africa"
	case RegionAsia:
		return "Asia"
	case RegionEurope:
		return "Europe"
	case RegionNorthAmerica:
		return "North America"
	case RegionSouthAmerica:
		return "South America"
	case RegionOceania:
		return "Oceania"
	default:
		return unknownDescription
	}
}

// GameSettings holds gameplay configuration.
type GameSettings struct {
	// Difficulty controls guess matching tolerance.
	Difficulty Difficulty

	// Region filters the countries played.
	Region Region

	// ShowMap controls whether the country silhouette is rendered.
	ShowMap bool
}

// DatasetSettings holds dataset source configuration.
type DatasetSettings struct {
	// URL is the GeoJSON endpoint for dataset sync.
	URL string
}

// AppSettings aggregates all application settings.
type AppSettings struct {
	Game    GameSettings
	Dataset DatasetSettings
}

// DefaultDatasetURL is the Natural Earth 1:110m admin-0 countries GeoJSON.
const DefaultDatasetURL = "https://raw.githubusercontent.com/nvkelso/natural-earth-vector/master/geojson/ne_110m_admin_0_countries.geojson"

// DefaultAppSettings returns the settings used before any configuration.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Game: GameSettings{
			Difficulty: DefaultDifficulty,
			Region:     DefaultRegion,
			ShowMap:    true,
		},
		Dataset: DatasetSettings{
			URL: DefaultDatasetURL,
		},
	}
}
