package resolve

import (
	"testing"

	"floorplan-engine/internal/engine/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizeOf(w, h float64) model.Size {
	return model.Size{
		Width:  model.Dimension{Value: w},
		Height: model.Dimension{Value: h},
	}
}

func TestVariablesFirstWins(t *testing.T) {
	plan := &model.Floorplan{
		Variables: []model.Variable{
			{Name: "standard", Size: sizeOf(4, 3)},
			{Name: "standard", Size: sizeOf(9, 9)},
			{Name: "large", Size: sizeOf(6, 5)},
		},
	}

	vars, errs := Variables(plan)

	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicateDefinition, errs[0].Kind)
	assert.Equal(t, "standard", errs[0].Subject)

	// Первое объявление выигрывает.
	assert.Equal(t, 4.0, vars["standard"].Width.Value)
	assert.Equal(t, 6.0, vars["large"].Width.Value)
}

func TestValidateSizeReferences(t *testing.T) {
	plan := &model.Floorplan{
		Variables: []model.Variable{{Name: "standard", Size: sizeOf(4, 3)}},
		Floors: []model.Floor{{
			ID: "f1",
			Rooms: []model.Room{
				{Name: "ok", SizeRef: "standard"},
				{Name: "broken", SizeRef: "missing"},
				{
					Name: "parent", Size: &model.Size{Width: model.Dimension{Value: 10}, Height: model.Dimension{Value: 10}},
					SubRooms: []model.Room{{Name: "nested", SizeRef: "also-missing"}},
				},
			},
		}},
	}

	vars, _ := Variables(plan)
	errs := ValidateSizeReferences(plan, vars)

	require.Len(t, errs, 2)
	assert.Equal(t, ErrUndefinedVariable, errs[0].Kind)
	assert.Equal(t, "broken", errs[0].Subject)
	assert.Equal(t, "nested", errs[1].Subject)
}

func TestRoomSize(t *testing.T) {
	vars := map[string]model.Size{"standard": sizeOf(4, 3)}

	inline := &model.Room{Name: "a", Size: &model.Size{Width: model.Dimension{Value: 7}, Height: model.Dimension{Value: 2}}}
	got, err := RoomSize(inline, vars)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got.Width.Value)

	byRef := &model.Room{Name: "b", SizeRef: "standard"}
	got, err = RoomSize(byRef, vars)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Width.Value)

	_, err = RoomSize(&model.Room{Name: "c", SizeRef: "nope"}, vars)
	assert.Error(t, err)

	_, err = RoomSize(&model.Room{Name: "d"}, vars)
	assert.Error(t, err)
}
