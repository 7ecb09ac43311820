package domain

// Point is a lon/lat coordinate pair in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Ring is a closed sequence of points forming a polygon boundary.
// Only the exterior ring of each polygon is kept; holes are irrelevant
// for rendering a country silhouette at terminal resolution.
type Ring []Point

// Country is a single admin-0 country from the dataset.
type Country struct {
	// Name is the display name used for guessing (e.g. "Germany").
	Name string

	// ISOA2 and ISOA3 are the ISO 3166-1 alpha-2/alpha-3 codes.
	// Natural Earth uses "-99" for entities without a code.
	ISOA2 string
	ISOA3 string

	// Continent is the continent the country belongs to.
	Continent string

	// Population is the estimated population.
	Population int64

	// Polygons holds the exterior rings of the country's land masses.
	Polygons []Ring
}

// BoundingBox is an axis-aligned lon/lat rectangle.
type BoundingBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// Width returns the longitudinal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.MaxLon - b.MinLon
}

// Height returns the latitudinal extent of the box.
func (b BoundingBox) Height() float64 {
	return b.MaxLat - b.MinLat
}

// IsZero returns true if the box has no extent.
func (b BoundingBox) IsZero() bool {
	return b.MinLon == 0 && b.MinLat == 0 && b.MaxLon == 0 && b.MaxLat == 0
}

// Bounds returns the bounding box of all the country's polygons.
// Returns the zero box if the country has no geometry.
func (c Country) Bounds() BoundingBox {
	if len(c.Polygons) == 0 {
		return BoundingBox{}
	}

	first := true
	var box BoundingBox
	for _, ring := range c.Polygons {
		for _, p := range ring {
			if first {
				box = BoundingBox{MinLon: p.Lon, MinLat: p.Lat, MaxLon: p.Lon, MaxLat: p.Lat}
				first = false
				continue
			}
			if p.Lon < box.MinLon {
				box.MinLon = p.Lon
			}
			if p.Lon > box.MaxLon {
				box.MaxLon = p.Lon
			}
			if p.Lat < box.MinLat {
				box.MinLat = p.Lat
			}
			if p.Lat > box.MaxLat {
				box.MaxLat = p.Lat
			}
		}
	}
	return box
}

// HasGeometry returns true if the country has at least one non-empty ring.
func (c Country) HasGeometry() bool {
	for _, ring := range c.Polygons {
		if len(ring) > 0 {
			return true
		}
	}
	return false
}
