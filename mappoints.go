package pressfront

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultMapZoom = 5

// LoadMapConfig reads map points from path, or from the embedded default
// when path is empty.
func LoadMapConfig(path string) (MapConfig, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = EmbeddedAssets.ReadFile("embedded/map.yaml")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return MapConfig{}, fmt.Errorf("pressfront: read map points: %w", err)
	}
	return parseMapConfig(data)
}

func parseMapConfig(data []byte) (MapConfig, error) {
	var m MapConfig
	if err := yaml.Unmarshal(data, &m); err != nil {
		return MapConfig{}, fmt.Errorf("pressfront: parse map points: %w", err)
	}
	if m.Zoom <= 0 {
		m.Zoom = defaultMapZoom
	}
	if m.Title == "" {
		m.Title = "Map"
	}
	for i, p := range m.Points {
		if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
			return MapConfig{}, fmt.Errorf("pressfront: map point %d (%s): coordinates out of range", i, p.Title)
		}
	}
	return m, nil
}
