package geometry

import (
	"testing"

	"floorplan-engine/internal/engine/model"

	"github.com/stretchr/testify/assert"
)

func TestDoorPath(t *testing.T) {
	// Верхняя стена, петли справа (для смотрящего внутрь).
	path := DoorPath(model.Point{X: 10, Y: 0}, 2, model.WallTop, "right")
	assert.Equal(t, "M 9 0 L 9 2 A 2 2 0 0 0 11 0", path)

	// Нижняя стена зеркалит геометрию.
	path = DoorPath(model.Point{X: 10, Y: 20}, 2, model.WallBottom, "right")
	assert.Equal(t, "M 11 20 L 11 18 A 2 2 0 0 0 9 20", path)

	// Неизвестный swing читается как дефолтный.
	assert.Equal(t,
		DoorPath(model.Point{X: 10, Y: 0}, 2, model.WallTop, SwingDefault),
		DoorPath(model.Point{X: 10, Y: 0}, 2, model.WallTop, "diagonal"))
}

func TestDoorPathSwingSides(t *testing.T) {
	right := DoorPath(model.Point{X: 10, Y: 0}, 2, model.WallTop, "right")
	left := DoorPath(model.Point{X: 10, Y: 0}, 2, model.WallTop, "left")
	assert.NotEqual(t, right, left)
}

func TestDoubleDoorPaths(t *testing.T) {
	paths := DoubleDoorPaths(model.Point{X: 10, Y: 0}, 2, model.WallTop)
	assert.NotEmpty(t, paths[0])
	assert.NotEmpty(t, paths[1])
	assert.NotEqual(t, paths[0], paths[1])
}

func TestOpeningRect(t *testing.T) {
	got := OpeningRect(model.Point{X: 10, Y: 0}, 2, 0.2, model.WallTop)
	assert.Equal(t, Rect{X: 9, Y: 0, W: 2, H: 0.2}, got)

	got = OpeningRect(model.Point{X: 10, Y: 20}, 2, 0.2, model.WallBottom)
	assert.Equal(t, Rect{X: 9, Y: 19.8, W: 2, H: 0.2}, got)

	got = OpeningRect(model.Point{X: 0, Y: 10}, 2, 0.2, model.WallLeft)
	assert.Equal(t, Rect{X: 0, Y: 9, W: 0.2, H: 2}, got)
}
