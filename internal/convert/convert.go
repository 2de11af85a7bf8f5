package convert

import (
	"fmt"

	"github.com/woozymasta/csv2geojson/internal/geo"
)

// Convert maps every table row, in order, to a point feature.
// Coordinates come from the longitude and latitude columns, every other
// column becomes a property in header order with its value untouched.
func Convert(t *Table) (geo.FeatureCollection, error) {
	propColumns := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		if c.Name == Longitude || c.Name == Latitude {
			continue
		}
		propColumns = append(propColumns, c.Name)
	}

	fc := geo.NewFeatureCollection(t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)

		lon, err := row.Float(Longitude)
		if err != nil {
			return geo.FeatureCollection{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		lat, err := row.Float(Latitude)
		if err != nil {
			return geo.FeatureCollection{}, fmt.Errorf("row %d: %w", i+1, err)
		}

		props := make(geo.Properties, 0, len(propColumns))
		for _, name := range propColumns {
			v, _ := row.Value(name)
			props = append(props, geo.Property{Key: name, Value: v})
		}

		fc.Features = append(fc.Features, geo.NewFeature(lon, lat, props))
	}

	return fc, nil
}
