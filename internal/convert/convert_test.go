package convert

import (
	"fmt"
	"strings"
	"testing"

	"github.com/woozymasta/csv2geojson/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stations = `id,name,latitude,elevation,longitude,active
1,Harbor,37.8080,3.5,-122.4177,true
2,"Twin Peaks, North",37.7544,282,-122.4477,false
3,Ocean Beach,37.7594,,-122.5107,true
`

func TestConvert(t *testing.T) {
	tbl := mustLoad(t, stations)

	fc, err := Convert(tbl)
	require.NoError(t, err)

	assert.Equal(t, geo.TypeFeatureCollection, fc.Type)
	require.Len(t, fc.Features, tbl.Len())

	wantCoords := [][2]float64{
		{-122.4177, 37.8080},
		{-122.4477, 37.7544},
		{-122.5107, 37.7594},
	}
	for i, f := range fc.Features {
		assert.Equal(t, geo.TypeFeature, f.Type)
		assert.Equal(t, wantCoords[i][0], f.Geometry.Lon(), "feature %d lon", i)
		assert.Equal(t, wantCoords[i][1], f.Geometry.Lat(), "feature %d lat", i)
		assert.Equal(t, []string{"id", "name", "elevation", "active"}, f.Properties.Keys())

		for _, key := range f.Properties.Keys() {
			got, _ := f.Properties.Get(key)
			want, _ := tbl.Row(i).Value(key)
			assert.Equal(t, want, got, "feature %d property %s", i, key)
		}
	}

	second := fc.Features[1].Properties
	assert.Equal(t, geo.Properties{
		{Key: "id", Value: int64(2)},
		{Key: "name", Value: "Twin Peaks, North"},
		{Key: "elevation", Value: 282.0},
		{Key: "active", Value: false},
	}, second)

	elevation, _ := fc.Features[2].Properties.Get("elevation")
	assert.Nil(t, elevation)
}

func TestConvertEmptyTable(t *testing.T) {
	fc, err := Convert(mustLoad(t, "longitude,latitude,name\n"))
	require.NoError(t, err)

	assert.NotNil(t, fc.Features)
	assert.Empty(t, fc.Features)
}

func TestConvertCoordinatesOnly(t *testing.T) {
	fc, err := Convert(mustLoad(t, "longitude,latitude\n1.5,2.5\n"))
	require.NoError(t, err)

	require.Len(t, fc.Features, 1)
	assert.Empty(t, fc.Features[0].Properties)
}

func TestConvertRowCount(t *testing.T) {
	for _, n := range []int{0, 1, 7, 250} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			var b strings.Builder
			b.WriteString("longitude,latitude,seq\n")
			for i := 0; i < n; i++ {
				fmt.Fprintf(&b, "%d.25,%d.5,%d\n", i%180, i%90, i)
			}

			fc, err := Convert(mustLoad(t, b.String()))
			require.NoError(t, err)
			require.Len(t, fc.Features, n)

			for i, f := range fc.Features {
				seq, _ := f.Properties.Get("seq")
				assert.Equal(t, int64(i), seq)
			}
		})
	}
}

func TestConvertTableWithoutCoordinates(t *testing.T) {
	tbl := newTable([]Column{{Name: "name", Kind: KindString}}, [][]interface{}{{"a"}})

	_, err := Convert(tbl)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}
