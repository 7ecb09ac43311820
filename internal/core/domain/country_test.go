package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountry_Bounds(t *testing.T) {
	c := Country{
		Name: "Boxland",
		Polygons: []Ring{
			{{Lon: -10, Lat: 5}, {Lon: 0, Lat: 20}, {Lon: 5, Lat: 10}},
			{{Lon: 15, Lat: -5}, {Lon: 20, Lat: 0}},
		},
	}

	box := c.Bounds()
	assert.Equal(t, -10.0, box.MinLon)
	assert.Equal(t, 20.0, box.MaxLon)
	assert.Equal(t, -5.0, box.MinLat)
	assert.Equal(t, 20.0, box.MaxLat)
	assert.Equal(t, 30.0, box.Width())
	assert.Equal(t, 25.0, box.Height())
}

func TestCountry_Bounds_NoGeometry(t *testing.T) {
	c := Country{Name: "Nowhere"}
	assert.True(t, c.Bounds().IsZero())
	assert.False(t, c.HasGeometry())
}

func TestCountry_HasGeometry(t *testing.T) {
	c := Country{Name: "Dot", Polygons: []Ring{{{Lon: 1, Lat: 1}}}}
	assert.True(t, c.HasGeometry())

	empty := Country{Name: "Empty", Polygons: []Ring{{}}}
	assert.False(t, empty.HasGeometry())
}
