package units

import (
	"testing"

	"floorplan-engine/internal/engine/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  Unit
		to    Unit
		want  float64
	}{
		{"meters to centimeters", 1, Meter, Centimeter, 100},
		{"centimeters to meters", 250, Centimeter, Meter, 2.5},
		{"millimeters to meters", 1800, Millimeter, Meter, 1.8},
		{"feet to inches", 1, Foot, Inch, 12},
		{"feet to meters", 10, Foot, Meter, 3.048},
		{"inches to centimeters", 1, Inch, Centimeter, 2.54},
		{"same unit", 7.3, Meter, Meter, 7.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	all := []Unit{Meter, Centimeter, Millimeter, Foot, Inch}
	for _, from := range all {
		for _, to := range all {
			v, err := Convert(3.7, from, to)
			require.NoError(t, err)
			back, err := Convert(v, to, from)
			require.NoError(t, err)
			assert.InDelta(t, 3.7, back, 1e-9, "%s -> %s -> %s", from, to, from)
		}
	}
}

func TestConvertUnknownUnit(t *testing.T) {
	_, err := Convert(1, Unit("furlong"), Meter)
	assert.Error(t, err)

	_, err = Convert(1, Meter, Unit("parsec"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Foot, Resolve(Foot, Meter))
	assert.Equal(t, Centimeter, Resolve("", Centimeter))
	assert.Equal(t, Meter, Resolve("", ""))
}

func TestLength(t *testing.T) {
	// Пустая единица читается как def.
	assert.InDelta(t, 2.5, Length(model.Dimension{Value: 250, Unit: "cm"}, Meter, Meter), 1e-9)
	assert.InDelta(t, 4, Length(model.Dimension{Value: 4}, Meter, Meter), 1e-9)
	assert.InDelta(t, 400, Length(model.Dimension{Value: 4}, Meter, Centimeter), 1e-9)
}

func TestMixedSystems(t *testing.T) {
	metricRoom := model.Room{
		Name: "a",
		Size: &model.Size{Width: model.Dimension{Value: 5, Unit: "m"}, Height: model.Dimension{Value: 4, Unit: "m"}},
	}
	imperialRoom := model.Room{
		Name: "b",
		Size: &model.Size{Width: model.Dimension{Value: 12, Unit: "ft"}, Height: model.Dimension{Value: 10, Unit: "ft"}},
	}

	mixed := &model.Floorplan{Floors: []model.Floor{{ID: "f1", Rooms: []model.Room{metricRoom, imperialRoom}}}}
	assert.True(t, MixedSystems(mixed))

	metricOnly := &model.Floorplan{Floors: []model.Floor{{ID: "f1", Rooms: []model.Room{metricRoom}}}}
	assert.False(t, MixedSystems(metricOnly))

	// Единица в конфиге тоже участвует в детекции.
	withConfig := &model.Floorplan{
		Config: &model.Config{DefaultUnit: "ft"},
		Floors: []model.Floor{{ID: "f1", Rooms: []model.Room{metricRoom}}},
	}
	assert.True(t, MixedSystems(withConfig))
}
