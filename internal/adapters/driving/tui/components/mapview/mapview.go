// Package mapview renders a country silhouette as a block-character grid.
//
// The renderer scales the country's bounding box into the available cell
// grid, corrects for the roughly 2:1 height/width ratio of terminal cells,
// and fills each cell whose centre falls inside any of the country's
// exterior rings (even-odd rule).
package mapview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mapguess/mapguess-cli/internal/adapters/driving/tui/styles"
	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

const (
	// cellAspect compensates for terminal cells being taller than wide.
	cellAspect = 2.0

	landRune  = '█'
	waterRune = ' '

	minWidth  = 10
	minHeight = 5
)

// Model renders the silhouette of a single country.
type Model struct {
	styles  *styles.Styles
	country *domain.Country
	width   int
	height  int
}

// New creates a map view with the given styles.
func New(s *styles.Styles) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Model{
		styles: s,
		width:  60,
		height: 18,
	}
}

// Init initialises the map view.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles map view messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	return m, nil
}

// SetCountry sets the country to render. Nil clears the view.
func (m *Model) SetCountry(c *domain.Country) {
	m.country = c
}

// Country returns the country currently rendered.
func (m *Model) Country() *domain.Country {
	return m.country
}

// SetDimensions sets the grid size in cells. Values below the minimum
// are clamped so the silhouette stays recognisable.
func (m *Model) SetDimensions(width, height int) {
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	m.width = width
	m.height = height
}

// Width returns the grid width in cells.
func (m *Model) Width() int {
	return m.width
}

// Height returns the grid height in cells.
func (m *Model) Height() int {
	return m.height
}

// View renders the silhouette grid.
func (m *Model) View() string {
	if m.country == nil || !m.country.HasGeometry() {
		return m.styles.Muted.Render("(no map available)")
	}

	grid := m.rasterise()
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = m.styles.Land.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

// rasterise fills the cell grid by point-in-polygon sampling at each
// cell centre.
func (m *Model) rasterise() [][]rune {
	box := m.country.Bounds()

	lonSpan := box.Width()
	latSpan := box.Height()
	if lonSpan <= 0 {
		lonSpan = 1e-6
	}
	if latSpan <= 0 {
		latSpan = 1e-6
	}

	// Fit the box into the grid preserving shape. A cell is about twice
	// as tall as it is wide, so one row covers cellAspect times the
	// latitude of one column's longitude.
	scale := float64(m.width) / lonSpan
	if vertical := float64(m.height) * cellAspect / latSpan; vertical < scale {
		scale = vertical
	}

	cols := int(lonSpan * scale)
	rows := int(latSpan * scale / cellAspect)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols > m.width {
		cols = m.width
	}
	if rows > m.height {
		rows = m.height
	}

	grid := make([][]rune, rows)
	for y := 0; y < rows; y++ {
		row := make([]rune, cols)
		for x := 0; x < cols; x++ {
			// Cell centre in lon/lat. Latitude runs top-down.
			lon := box.MinLon + (float64(x)+0.5)/float64(cols)*lonSpan
			lat := box.MaxLat - (float64(y)+0.5)/float64(rows)*latSpan

			if m.contains(lon, lat) {
				row[x] = landRune
			} else {
				row[x] = waterRune
			}
		}
		grid[y] = row
	}
	return grid
}

// contains reports whether the point lies inside any of the country's
// rings, using the even-odd crossing rule.
func (m *Model) contains(lon, lat float64) bool {
	for _, ring := range m.country.Polygons {
		if pointInRing(lon, lat, ring) {
			return true
		}
	}
	return false
}

func pointInRing(lon, lat float64, ring domain.Ring) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := ring[i], ring[j]
		if (pi.Lat > lat) != (pj.Lat > lat) {
			cross := (pj.Lon-pi.Lon)*(lat-pi.Lat)/(pj.Lat-pi.Lat) + pi.Lon
			if lon < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
