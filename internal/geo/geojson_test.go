package geo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFeatureCollectionJSON(t *testing.T) {
	fc := NewFeatureCollection(1)
	fc.Features = append(fc.Features, NewFeature(-122.4, 37.8, Properties{{Key: "name", Value: "Park"}}))

	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[-122.4,37.8]},"properties":{"name":"Park"}}]}`,
		string(data))
}

func TestEmptyFeatureCollectionJSON(t *testing.T) {
	data, err := json.Marshal(NewFeatureCollection(0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}

func TestPropertiesKeepOrder(t *testing.T) {
	props := Properties{
		{Key: "zeta", Value: int64(1)},
		{Key: "alpha", Value: "a"},
		{Key: "mid", Value: nil},
		{Key: "flag", Value: true},
		{Key: "ratio", Value: 0.5},
	}

	data, err := json.Marshal(props)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":"a","mid":null,"flag":true,"ratio":0.5}`, string(data))

	var decoded Properties
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, props, decoded)
}

func TestPropertiesEmpty(t *testing.T) {
	data, err := json.Marshal(Feature{Type: TypeFeature, Geometry: NewPoint(1, 2)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"properties":{}`)
}

func TestPropertiesLookup(t *testing.T) {
	props := Properties{{Key: "a", Value: 1}, {Key: "b", Value: "x"}}

	v, ok := props.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = props.Get("c")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, props.Keys())
}

func TestGeometryUnmarshal(t *testing.T) {
	var g Geometry
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Point","coordinates":[10.5,-3.25]}`), &g))
	assert.Equal(t, orb.Point{10.5, -3.25}, g.Point)
	assert.Equal(t, 10.5, g.Lon())
	assert.Equal(t, -3.25, g.Lat())

	err := json.Unmarshal([]byte(`{"type":"LineString","coordinates":[[0,0],[1,1]]}`), &g)
	assert.Error(t, err)
}

func TestFeatureCollectionYAML(t *testing.T) {
	fc := NewFeatureCollection(1)
	fc.Features = append(fc.Features, NewFeature(-122.4, 37.8, Properties{
		{Key: "name", Value: "Park"},
		{Key: "area", Value: int64(12)},
	}))

	data, err := yaml.Marshal(fc)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "coordinates: [-122.4, 37.8]")
	name, area := strings.Index(out, "name: Park"), strings.Index(out, "area: 12")
	require.NotEqual(t, -1, name)
	require.NotEqual(t, -1, area)
	assert.Less(t, name, area)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, TypeFeatureCollection, decoded["type"])
	assert.Len(t, decoded["features"], 1)
}
