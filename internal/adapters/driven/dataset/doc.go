// Package dataset groups driven adapters that supply the country dataset,
// either from the Natural Earth GeoJSON endpoint or from a local file.
package dataset
