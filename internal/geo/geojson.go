// Package geo handles the GeoJSON document structures produced by the converter.
package geo

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON type tags.
const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypePoint             = "Point"
)

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// NewFeatureCollection returns an empty collection with room for n features.
// Features is never nil, so an empty collection encodes as "features":[].
func NewFeatureCollection(n int) FeatureCollection {
	return FeatureCollection{
		Type:     TypeFeatureCollection,
		Features: make([]Feature, 0, n),
	}
}

// Feature represents a single point feature with its properties.
type Feature struct {
	Type       string     `json:"type" yaml:"type"`
	Geometry   Geometry   `json:"geometry" yaml:"geometry"`
	Properties Properties `json:"properties" yaml:"properties"`
}

// NewFeature builds a point feature at lon/lat.
func NewFeature(lon, lat float64, props Properties) Feature {
	return Feature{
		Type:       TypeFeature,
		Geometry:   NewPoint(lon, lat),
		Properties: props,
	}
}

// Geometry is a point geometry. Coordinates are always [Lon, Lat].
type Geometry struct {
	Point orb.Point
}

// NewPoint returns a point geometry at lon/lat.
func NewPoint(lon, lat float64) Geometry {
	return Geometry{Point: orb.Point{lon, lat}}
}

// Lon returns the longitude of the point.
func (g Geometry) Lon() float64 { return g.Point.Lon() }

// Lat returns the latitude of the point.
func (g Geometry) Lat() float64 { return g.Point.Lat() }

// MarshalJSON encodes the point as a GeoJSON geometry object.
func (g Geometry) MarshalJSON() ([]byte, error) {
	return geojson.NewGeometry(g.Point).MarshalJSON()
}

// UnmarshalJSON decodes a GeoJSON geometry object holding a Point.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	decoded, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return err
	}

	point, ok := decoded.Coordinates.(orb.Point)
	if !ok {
		return fmt.Errorf("geometry type %q is not supported, want %s", decoded.Type, TypePoint)
	}

	g.Point = point
	return nil
}

type yamlGeometry struct {
	Type        string     `yaml:"type"`
	Coordinates [2]float64 `yaml:"coordinates,flow"`
}

// MarshalYAML mirrors the GeoJSON layout for the YAML output format.
func (g Geometry) MarshalYAML() (interface{}, error) {
	return yamlGeometry{Type: TypePoint, Coordinates: [2]float64(g.Point)}, nil
}
