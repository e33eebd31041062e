package convert

import (
	"testing"

	"floorplan-engine/internal/engine/model"
	"floorplan-engine/internal/engine/resolve"

	"github.com/stretchr/testify/assert"
)

func warningKinds(doc *Document) map[resolve.WarningKind]bool {
	kinds := make(map[resolve.WarningKind]bool)
	for _, w := range doc.Warnings {
		kinds[w.Kind] = true
	}
	return kinds
}

func TestConnectionImplicitSolidWalls(t *testing.T) {
	// Невыставленный тип стены и явный solid — одно и то же:
	// соединение между ними не должно флагаться.
	plan := twoRoomPlan()
	plan.Floors[0].Rooms[1].Walls = model.Walls{
		Left: model.WallSpec{Kind: model.WallSolid},
	}

	doc := Compile(plan)

	for _, w := range doc.Warnings {
		assert.NotEqual(t, resolve.WarnWallMismatch, w.Kind, w.Message)
	}
}

func TestConnectionWallKindMismatch(t *testing.T) {
	plan := twoRoomPlan()
	plan.Floors[0].Rooms[0].Walls = model.Walls{
		Right: model.WallSpec{Kind: model.WallWindow},
	}

	kinds := warningKinds(Compile(plan))

	assert.True(t, kinds[resolve.WarnWallMismatch])
	// Проем на несплошной стене флагается отдельно.
	assert.True(t, kinds[resolve.WarnConnectionWall])
}
