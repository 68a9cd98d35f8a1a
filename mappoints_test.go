package pressfront

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMapConfigEmbedded(t *testing.T) {
	m, err := LoadMapConfig("")
	require.NoError(t, err)

	assert.Equal(t, "Caribbean Ports Map", m.Title)
	assert.Equal(t, 5, m.Zoom)
	require.Len(t, m.Points, 5)
	assert.Equal(t, "Tampico, Mexico", m.Points[0].Title)
	assert.Equal(t, "tampico-port-history", m.Points[0].PostSlug)
}

func TestLoadMapConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.yaml")
	data := []byte("center: [10, 20]\npoints:\n  - title: Somewhere\n    lat: 10.5\n    lng: 20.25\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	m, err := LoadMapConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Map", m.Title)
	assert.Equal(t, defaultMapZoom, m.Zoom)
	assert.Equal(t, [2]float64{10, 20}, m.Center)
	require.Len(t, m.Points, 1)
	assert.InDelta(t, 20.25, m.Points[0].Lng, 1e-9)
}

func TestLoadMapConfigMissingFile(t *testing.T) {
	_, err := LoadMapConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseMapConfigRejectsBadCoordinates(t *testing.T) {
	_, err := parseMapConfig([]byte("points:\n  - title: North of north\n    lat: 91\n    lng: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "North of north")
}

func TestParseMapConfigRejectsMalformedYAML(t *testing.T) {
	_, err := parseMapConfig([]byte("points: [\n"))
	require.Error(t, err)
}
