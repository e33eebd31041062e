package resolve

import (
	"testing"

	"floorplan-engine/internal/engine/model"
	"floorplan-engine/internal/engine/units"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedRoom(name string, w, h float64) model.Room {
	return model.Room{Name: name, Size: &model.Size{
		Width:  model.Dimension{Value: w},
		Height: model.Dimension{Value: h},
	}}
}

func at(r model.Room, x, y float64) model.Room {
	r.Position = &model.Point{X: x, Y: y}
	return r
}

func relTo(r model.Room, dir model.RelDirection, ref string) model.Room {
	r.Relative = &model.RelativePosition{Direction: dir, Reference: ref}
	return r
}

func solve(rooms ...model.Room) *Layout {
	floor := &model.Floor{ID: "f1", Rooms: rooms}
	return Positions(floor, nil, units.Meter)
}

func TestPositionsExplicit(t *testing.T) {
	layout := solve(at(sizedRoom("a", 5, 5), 2, 3))

	require.Empty(t, layout.Errors)
	assert.Equal(t, model.Point{X: 2, Y: 3}, layout.Positions["a"])
}

func TestPositionsRightOf(t *testing.T) {
	layout := solve(
		at(sizedRoom("a", 5, 5), 0, 0),
		relTo(sizedRoom("b", 4, 3), model.RightOf, "a"),
	)

	require.Empty(t, layout.Errors)
	assert.Equal(t, model.Point{X: 5, Y: 0}, layout.Positions["b"])
}

func TestPositionsGap(t *testing.T) {
	b := relTo(sizedRoom("b", 4, 3), model.RightOf, "a")
	b.Relative.Gap = &model.Dimension{Value: 2}

	layout := solve(at(sizedRoom("a", 5, 5), 0, 0), b)

	require.Empty(t, layout.Errors)
	assert.Equal(t, model.Point{X: 7, Y: 0}, layout.Positions["b"])
}

func TestPositionsDirections(t *testing.T) {
	tests := []struct {
		dir  model.RelDirection
		want model.Point
	}{
		{model.RightOf, model.Point{X: 5, Y: 0}},
		{model.LeftOf, model.Point{X: -4, Y: 0}},
		{model.Below, model.Point{X: 0, Y: 5}},
		{model.Above, model.Point{X: 0, Y: -3}},
		{model.AboveRight, model.Point{X: 5, Y: -3}},
		{model.BelowLeft, model.Point{X: -4, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			layout := solve(
				at(sizedRoom("a", 5, 5), 0, 0),
				relTo(sizedRoom("b", 4, 3), tt.dir, "a"),
			)
			require.Empty(t, layout.Errors)
			assert.Equal(t, tt.want, layout.Positions["b"])
		})
	}
}

func TestPositionsAlignment(t *testing.T) {
	b := relTo(sizedRoom("b", 4, 3), model.RightOf, "a")
	b.Relative.Align = "center"
	layout := solve(at(sizedRoom("a", 5, 5), 0, 0), b)
	require.Empty(t, layout.Errors)
	assert.Equal(t, model.Point{X: 5, Y: 1}, layout.Positions["b"])

	b.Relative.Align = "bottom"
	layout = solve(at(sizedRoom("a", 5, 5), 0, 0), b)
	assert.Equal(t, model.Point{X: 5, Y: 2}, layout.Positions["b"])

	// Нераспознанное выравнивание откатывается к умолчанию.
	b.Relative.Align = "sideways"
	layout = solve(at(sizedRoom("a", 5, 5), 0, 0), b)
	assert.Equal(t, model.Point{X: 5, Y: 0}, layout.Positions["b"])
}

func TestPositionsForwardReference(t *testing.T) {
	// Комната может ссылаться на объявленную позже.
	layout := solve(
		relTo(sizedRoom("c", 2, 2), model.RightOf, "b"),
		relTo(sizedRoom("b", 4, 3), model.RightOf, "a"),
		at(sizedRoom("a", 5, 5), 0, 0),
	)

	require.Empty(t, layout.Errors)
	assert.Equal(t, model.Point{X: 5, Y: 0}, layout.Positions["b"])
	assert.Equal(t, model.Point{X: 9, Y: 0}, layout.Positions["c"])
}

func TestPositionsCycle(t *testing.T) {
	layout := solve(
		relTo(sizedRoom("a", 5, 5), model.RightOf, "b"),
		relTo(sizedRoom("b", 4, 3), model.RightOf, "a"),
	)

	require.Len(t, layout.Errors, 1)
	assert.Equal(t, ErrCircularDependency, layout.Errors[0].Kind)
	assert.Contains(t, layout.Errors[0].Message, "a")
	assert.Contains(t, layout.Errors[0].Message, "b")
	assert.Empty(t, layout.Positions)
}

func TestPositionsMissingReference(t *testing.T) {
	layout := solve(
		at(sizedRoom("a", 5, 5), 0, 0),
		relTo(sizedRoom("b", 4, 3), model.RightOf, "ghost"),
	)

	require.Len(t, layout.Errors, 1)
	assert.Equal(t, ErrMissingReference, layout.Errors[0].Kind)
	assert.Equal(t, "b", layout.Errors[0].Subject)
	assert.False(t, layout.Resolved("b"))
	// Остальные комнаты разрешаются как обычно.
	assert.True(t, layout.Resolved("a"))
}

func TestPositionsNoPlacement(t *testing.T) {
	layout := solve(sizedRoom("orphan", 5, 5))

	require.Len(t, layout.Errors, 1)
	assert.Equal(t, ErrNoPosition, layout.Errors[0].Kind)
	assert.Equal(t, "orphan", layout.Errors[0].Subject)
}

func TestPositionsOverlapWarning(t *testing.T) {
	layout := solve(
		at(sizedRoom("a", 5, 5), 0, 0),
		at(sizedRoom("b", 5, 5), 3, 3),
	)

	require.Empty(t, layout.Errors)
	require.Len(t, layout.Warnings, 1)
	assert.Equal(t, WarnOverlap, layout.Warnings[0].Kind)
}

func TestPositionsTouchingEdgesNoWarning(t *testing.T) {
	layout := solve(
		at(sizedRoom("a", 5, 5), 0, 0),
		at(sizedRoom("b", 5, 5), 5, 0),
	)

	assert.Empty(t, layout.Warnings)
}

func TestPositionsSubRooms(t *testing.T) {
	parent := at(sizedRoom("parent", 10, 10), 2, 3)
	parent.SubRooms = []model.Room{at(sizedRoom("closet", 2, 2), 1, 1)}

	layout := solve(parent)

	require.Empty(t, layout.Errors)
	// Координаты подкомнаты — смещение от origin родителя.
	assert.Equal(t, model.Point{X: 3, Y: 4}, layout.Positions["closet"])
	// Пересечение с родителем не флагается.
	assert.Empty(t, layout.Warnings)
}

func TestPositionsStairsAndLifts(t *testing.T) {
	floor := &model.Floor{
		ID:     "f1",
		Rooms:  []model.Room{at(sizedRoom("a", 5, 5), 0, 0)},
		Stairs: []model.Stair{{Name: "main-stair", Position: &model.Point{X: 6, Y: 0}}},
		Lifts:  []model.Lift{{Name: "lift-1", Position: &model.Point{X: 8, Y: 0}}},
	}

	layout := Positions(floor, nil, units.Meter)

	assert.Equal(t, model.Point{X: 6, Y: 0}, layout.Positions["main-stair"])
	assert.Equal(t, model.Point{X: 8, Y: 0}, layout.Positions["lift-1"])
}
