package geometry

import (
	"testing"

	"floorplan-engine/internal/engine/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	room := Rect{X: 2, Y: 3, W: 10, H: 6}

	top := Bounds(room, model.WallTop, 0.2)
	assert.Equal(t, model.Point{X: 2, Y: 3}, top.Start)
	assert.Equal(t, 10.0, top.Length)
	assert.True(t, top.Horizontal)

	bottom := Bounds(room, model.WallBottom, 0.2)
	assert.Equal(t, model.Point{X: 2, Y: 9}, bottom.Start)

	right := Bounds(room, model.WallRight, 0.2)
	assert.Equal(t, model.Point{X: 12, Y: 3}, right.Start)
	assert.Equal(t, 6.0, right.Length)
	assert.False(t, right.Horizontal)
}

func TestBand(t *testing.T) {
	room := Rect{X: 0, Y: 0, W: 10, H: 6}

	// Полоса стены уходит внутрь комнаты.
	top := Bounds(room, model.WallTop, 0.2).Band()
	assert.Equal(t, Rect{X: 0, Y: 0, W: 10, H: 0.2}, top)

	bottom := Bounds(room, model.WallBottom, 0.2).Band()
	assert.Equal(t, Rect{X: 0, Y: 5.8, W: 10, H: 0.2}, bottom)

	right := Bounds(room, model.WallRight, 0.2).Band()
	assert.Equal(t, Rect{X: 9.8, Y: 0, W: 0.2, H: 6}, right)
}

func TestOverlap(t *testing.T) {
	a := Bounds(Rect{X: 0, Y: 0, W: 10, H: 5}, model.WallBottom, 0.2)
	b := Bounds(Rect{X: 4, Y: 5, W: 10, H: 5}, model.WallTop, 0.2)

	start, end, ok := Overlap(a, b)
	require.True(t, ok)
	assert.Equal(t, 4.0, start)
	assert.Equal(t, 10.0, end)

	// Непересекающиеся интервалы.
	far := Bounds(Rect{X: 20, Y: 5, W: 5, H: 5}, model.WallTop, 0.2)
	_, _, ok = Overlap(a, far)
	assert.False(t, ok)

	// Разные ориентации не пересекаются по определению.
	vert := Bounds(Rect{X: 0, Y: 0, W: 5, H: 5}, model.WallLeft, 0.2)
	_, _, ok = Overlap(a, vert)
	assert.False(t, ok)
}

func TestPlaceOpeningSharedSegment(t *testing.T) {
	source := Bounds(Rect{X: 0, Y: 0, W: 10, H: 5}, model.WallBottom, 0.2)
	target := Bounds(Rect{X: 4, Y: 5, W: 10, H: 5}, model.WallTop, 0.2)

	pl := PlaceOpening(source, &target, 50)
	// Середина общего сегмента [4, 10].
	assert.Equal(t, 7.0, pl.At)
	assert.Equal(t, model.Point{X: 7, Y: 5}, pl.Point)
}

func TestPlaceOpeningFallback(t *testing.T) {
	source := Bounds(Rect{X: 0, Y: 0, W: 10, H: 5}, model.WallBottom, 0.2)

	// Без целевой стены — процент полной стены источника.
	pl := PlaceOpening(source, nil, 25)
	assert.Equal(t, 2.5, pl.At)

	// Нет пересечения — тот же фолбэк.
	far := Bounds(Rect{X: 50, Y: 5, W: 5, H: 5}, model.WallTop, 0.2)
	pl = PlaceOpening(source, &far, 25)
	assert.Equal(t, 2.5, pl.At)

	// Процент ограничивается диапазоном [0, 100].
	pl = PlaceOpening(source, nil, 150)
	assert.Equal(t, 10.0, pl.At)
}

func TestPlaceOpeningMixedOrientation(t *testing.T) {
	horizontal := Bounds(Rect{X: 0, Y: 0, W: 10, H: 5}, model.WallBottom, 0.2)
	vertical := Bounds(Rect{X: 0, Y: 5, W: 5, H: 5}, model.WallLeft, 0.2)

	// Якорь — горизонтальная стена, какая бы стороной она ни шла.
	pl := PlaceOpening(horizontal, &vertical, 50)
	assert.True(t, pl.Wall.Horizontal)
	assert.Equal(t, 5.0, pl.At)

	pl = PlaceOpening(vertical, &horizontal, 50)
	assert.True(t, pl.Wall.Horizontal)
	assert.Equal(t, 5.0, pl.At)
}

func TestOppositeWall(t *testing.T) {
	assert.Equal(t, model.WallBottom, OppositeWall(model.WallTop))
	assert.Equal(t, model.WallLeft, OppositeWall(model.WallRight))
}

func TestInferWall(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 5, H: 5}

	assert.Equal(t, model.WallRight, InferWall(a, Rect{X: 5, Y: 0, W: 5, H: 5}))
	assert.Equal(t, model.WallLeft, InferWall(a, Rect{X: -5, Y: 0, W: 5, H: 5}))
	assert.Equal(t, model.WallBottom, InferWall(a, Rect{X: 0, Y: 5, W: 5, H: 5}))
	assert.Equal(t, model.WallTop, InferWall(a, Rect{X: 0, Y: -5, W: 5, H: 5}))
}
