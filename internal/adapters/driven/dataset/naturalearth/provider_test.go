package naturalearth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapguess/mapguess-cli/internal/core/domain"
)

const sampleCollection = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"properties": {"NAME": "Boxland", "CONTINENT": "Europe", "POP_EST": 42},
		"geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}
	}]
}`

func TestProvider_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(sampleCollection))
	}))
	defer server.Close()

	provider := NewProvider(Config{URL: server.URL})

	countries, err := provider.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "Boxland", countries[0].Name)
	assert.True(t, countries[0].HasGeometry())
}

func TestProvider_Fetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewProvider(Config{URL: server.URL})

	_, err := provider.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestProvider_Fetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // Closed before use.

	provider := NewProvider(Config{URL: server.URL})

	_, err := provider.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestProvider_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleCollection))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := NewProvider(Config{URL: server.URL})

	_, err := provider.Fetch(ctx)
	assert.Error(t, err)
}

func TestProvider_Defaults(t *testing.T) {
	provider := NewProvider(Config{})
	assert.Equal(t, domain.DefaultDatasetURL, provider.Source())
}
