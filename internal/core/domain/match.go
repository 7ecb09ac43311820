package domain

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
)

// aliases maps normalised alternative names to the canonical Natural Earth
// name. Looked up after normalisation, so entries are lowercase with
// collapsed whitespace.
var aliases = map[string]string{
	"usa":            "United States of America",
	"united states":  "United States of America",
	"us":             "United States of America",
	"america":        "United States of America",
	"uk":             "United Kingdom",
	"great britain":  "United Kingdom",
	"britain":        "United Kingdom",
	"holland":        "Netherlands",
	"burma":          "Myanmar",
	"ivory coast":    "Côte d'Ivoire",
	"cote divoire":   "Côte d'Ivoire",
	"czechia":        "Czech Republic",
	"czech republic": "Czechia",
	"drc":            "Dem. Rep. Congo",
	"uae":            "United Arab Emirates",
	"south korea":    "South Korea",
	"north korea":    "North Korea",
	"bosnia":         "Bosnia and Herz.",
	"macedonia":      "North Macedonia",
	"east timor":     "Timor-Leste",
	"swaziland":      "eSwatini",
	"cape verde":     "Cabo Verde",
}

// NormalizeName reduces a country name to a canonical comparison form:
// lowercase, punctuation stripped, whitespace collapsed. Diacritics are
// kept; the alias table covers the common ASCII spellings.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	prevSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-':
			if !prevSpace {
				b.WriteRune(' ')
				prevSpace = true
			}
		default:
			// Punctuation (apostrophes, dots) is dropped entirely.
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// CanonicalAlias returns the canonical name for a known alias, or the
// empty string if the input is not a registered alias.
func CanonicalAlias(guess string) string {
	return aliases[NormalizeName(guess)]
}

// Matcher decides whether a guess names a given country, with a
// difficulty-dependent tolerance for typos.
type Matcher struct {
	difficulty Difficulty
}

// NewMatcher creates a matcher for the given difficulty.
// An invalid difficulty falls back to the default.
func NewMatcher(d Difficulty) *Matcher {
	if !d.IsValid() {
		d = DefaultDifficulty
	}
	return &Matcher{difficulty: d}
}

// Difficulty returns the matcher's difficulty.
func (m *Matcher) Difficulty() Difficulty {
	return m.difficulty
}

// Match reports whether guess names the country.
// The empty guess never matches; callers treat it as a skip.
func (m *Matcher) Match(guess string, country Country) bool {
	normGuess := NormalizeName(guess)
	if normGuess == "" {
		return false
	}

	normTarget := NormalizeName(country.Name)
	if normGuess == normTarget {
		return true
	}

	// Alias hit, e.g. "UK" for "United Kingdom".
	if canon := CanonicalAlias(guess); canon != "" && NormalizeName(canon) == normTarget {
		return true
	}

	tolerance := m.difficulty.Tolerance()
	if tolerance == 0 {
		return false
	}

	// Very short names get no fuzzy slack: "Chad"/"Chile" must not blur.
	if len([]rune(normTarget)) <= 4 {
		return false
	}

	return levenshtein.Distance(normGuess, normTarget, nil) <= tolerance
}
