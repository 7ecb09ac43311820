// Package geojson decodes Natural Earth admin-0 feature collections into
// domain countries.
package geojson

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
	"github.com/mapguess/mapguess-cli/internal/logger"
)

// noCode is the placeholder Natural Earth uses for missing ISO codes.
const noCode = "-99"

// featureCollection mirrors the subset of the GeoJSON structure we need.
type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string     `json:"type"`
	Properties properties `json:"properties"`
	Geometry   geometry   `json:"geometry"`
}

type properties struct {
	Name      string  `json:"NAME"`
	Continent string  `json:"CONTINENT"`
	PopEst    float64 `json:"POP_EST"`
	ISOA2     string  `json:"ISO_A2"`
	ISOA3     string  `json:"ISO_A3"`
}

type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Decode reads a GeoJSON feature collection and converts it to countries.
// Features without a name are dropped. Features with unsupported or broken
// geometry keep their attributes but carry no polygons.
func Decode(r io.Reader) ([]domain.Country, error) {
	var fc featureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decoding feature collection: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("%w: unexpected GeoJSON type %q", domain.ErrInvalidInput, fc.Type)
	}

	countries := make([]domain.Country, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Properties.Name == "" {
			logger.Debug("dropping nameless feature")
			continue
		}

		country := domain.Country{
			Name:       f.Properties.Name,
			Continent:  f.Properties.Continent,
			Population: int64(f.Properties.PopEst),
			ISOA2:      cleanCode(f.Properties.ISOA2),
			ISOA3:      cleanCode(f.Properties.ISOA3),
		}

		polygons, err := decodeGeometry(f.Geometry)
		if err != nil {
			logger.Warn("geometry for %s: %v", country.Name, err)
		}
		country.Polygons = polygons

		countries = append(countries, country)
	}

	return countries, nil
}

// cleanCode normalises the "-99" placeholder to an empty code.
func cleanCode(code string) string {
	if code == noCode {
		return ""
	}
	return code
}

// decodeGeometry extracts the exterior rings of a Polygon or MultiPolygon.
func decodeGeometry(g geometry) ([]domain.Ring, error) {
	switch g.Type {
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return nil, fmt.Errorf("decoding polygon: %w", err)
		}
		ring, err := exteriorRing(rings)
		if err != nil {
			return nil, err
		}
		return []domain.Ring{ring}, nil

	case "MultiPolygon":
		var polys [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
			return nil, fmt.Errorf("decoding multipolygon: %w", err)
		}
		result := make([]domain.Ring, 0, len(polys))
		for _, rings := range polys {
			ring, err := exteriorRing(rings)
			if err != nil {
				return nil, err
			}
			result = append(result, ring)
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unsupported geometry type %q", g.Type)
	}
}

// exteriorRing converts the first (outer) ring of a polygon, ignoring holes.
func exteriorRing(rings [][][]float64) (domain.Ring, error) {
	if len(rings) == 0 {
		return nil, fmt.Errorf("polygon has no rings")
	}

	outer := rings[0]
	ring := make(domain.Ring, 0, len(outer))
	for _, pos := range outer {
		if len(pos) < 2 {
			return nil, fmt.Errorf("position has %d coordinates", len(pos))
		}
		ring = append(ring, domain.Point{Lon: pos[0], Lat: pos[1]})
	}
	return ring, nil
}
