package convert

import (
	"fmt"
	"math"

	"floorplan-engine/internal/engine/geometry"
	"floorplan-engine/internal/engine/model"
	"floorplan-engine/internal/engine/resolve"
	"floorplan-engine/internal/engine/units"
)

// ============================================================
// Connection resolution
// ============================================================

// Дефолтные ширины проемов в метрах по типу двери.
const (
	defaultDoorM    = 0.9
	defaultDoubleM  = 1.5
	defaultOpeningM = 1.0
)

// ResolvedConnection — соединение с выведенными стенами и точкой
// размещения проема.
type ResolvedConnection struct {
	Conn      *model.Connection
	Floor     *FloorModel
	From      *RoomModel
	To        *RoomModel // nil, если целевая комната не разрешена
	FromWall  model.WallDirection
	ToWall    model.WallDirection
	Placement geometry.Placement
	Width     float64
	Pct       float64
}

// resolveConnection выводит стены (явные либо из смежности) и
// размещает проем. Без целевой комнаты или без общего сегмента
// срабатывает фолбэк на процент полной стены источника.
func resolveConnection(doc *Document, conn *model.Connection) *ResolvedConnection {
	fromFloor, from := doc.roomModel(conn.From.Room)
	if from == nil {
		return nil
	}
	_, to := doc.roomModel(conn.To.Room)

	rc := &ResolvedConnection{Conn: conn, Floor: fromFloor, From: from, To: to}

	rc.FromWall = conn.From.Wall
	if rc.FromWall == "" {
		if to != nil {
			rc.FromWall = geometry.InferWall(from.Rect(), to.Rect())
		} else {
			rc.FromWall = model.WallRight
		}
	}
	rc.ToWall = conn.To.Wall
	if rc.ToWall == "" {
		rc.ToWall = geometry.OppositeWall(rc.FromWall)
	}

	rc.Pct = 50
	if conn.Position != nil {
		rc.Pct = *conn.Position
	}

	rc.Width = openingWidth(doc, conn)

	source := geometry.Bounds(from.Rect(), rc.FromWall, doc.Thickness)
	var target *geometry.Wall
	if to != nil {
		t := geometry.Bounds(to.Rect(), rc.ToWall, doc.Thickness)
		target = &t
	}
	rc.Placement = geometry.PlaceOpening(source, target, rc.Pct)

	return rc
}

func openingWidth(doc *Document, conn *model.Connection) float64 {
	if conn.Width != nil && conn.Width.Value > 0 {
		return units.Length(*conn.Width, doc.DefaultUnit, doc.DefaultUnit)
	}

	cfg := doc.Plan.Config
	if cfg != nil && cfg.DoorWidth != nil && conn.Kind != model.DoorOpening {
		return units.Length(*cfg.DoorWidth, doc.DefaultUnit, doc.DefaultUnit)
	}

	meters := defaultDoorM
	switch conn.Kind {
	case model.DoorDouble:
		meters = defaultDoubleM
	case model.DoorOpening:
		meters = defaultOpeningM
	}
	v, err := units.Convert(meters, units.Meter, doc.DefaultUnit)
	if err != nil {
		return meters
	}
	return v
}

// ============================================================
// Advisory checks
// ============================================================

// checkConnections — предупреждения по соединениям: проем на
// несплошной стене, несовпадающие типы стен, габариты больше
// общего сегмента или высоты комнаты.
func checkConnections(doc *Document) []resolve.Warning {
	var warns []resolve.Warning

	for i := range doc.Plan.Connections {
		conn := &doc.Plan.Connections[i]
		rc := resolveConnection(doc, conn)
		if rc == nil {
			continue
		}

		fromSpec := rc.From.Room.Walls.Side(rc.FromWall)
		if fromSpec.Kind != "" && fromSpec.Kind != model.WallSolid {
			warns = append(warns, resolve.Warning{
				Kind:    resolve.WarnConnectionWall,
				Subject: conn.From.Room,
				Message: fmt.Sprintf("connection from %q uses %s wall %s", conn.From.Room, fromSpec.Kind, rc.FromWall),
			})
		}

		if rc.To != nil {
			toSpec := rc.To.Room.Walls.Side(rc.ToWall)
			if toSpec.Kind != "" && toSpec.Kind != model.WallSolid {
				warns = append(warns, resolve.Warning{
					Kind:    resolve.WarnConnectionWall,
					Subject: conn.To.Room,
					Message: fmt.Sprintf("connection to %q uses %s wall %s", conn.To.Room, toSpec.Kind, rc.ToWall),
				})
			}
			// Невыставленный тип стены читается как solid.
			if wallKindName(fromSpec.Kind) != wallKindName(toSpec.Kind) {
				warns = append(warns, resolve.Warning{
					Kind:    resolve.WarnWallMismatch,
					Subject: conn.From.Room,
					Message: fmt.Sprintf("connection %q/%q joins %s wall to %s wall", conn.From.Room, conn.To.Room, wallKindName(fromSpec.Kind), wallKindName(toSpec.Kind)),
				})
			}

			source := geometry.Bounds(rc.From.Rect(), rc.FromWall, doc.Thickness)
			targetWall := geometry.Bounds(rc.To.Rect(), rc.ToWall, doc.Thickness)
			if start, end, ok := geometry.Overlap(source, targetWall); ok && rc.Width > end-start {
				warns = append(warns, resolve.Warning{
					Kind:    resolve.WarnConnectionSize,
					Subject: conn.From.Room,
					Message: fmt.Sprintf("opening width %.2f exceeds shared wall length %.2f between %q and %q", rc.Width, end-start, conn.From.Room, conn.To.Room),
				})
			}
		}

		if conn.Height != nil {
			h := units.Length(*conn.Height, doc.DefaultUnit, doc.DefaultUnit)
			roomH := doc.roomHeight(rc.Floor, rc.From)
			if h > roomH {
				warns = append(warns, resolve.Warning{
					Kind:    resolve.WarnConnectionSize,
					Subject: conn.From.Room,
					Message: fmt.Sprintf("opening height %.2f exceeds room height %.2f in %q", h, roomH, conn.From.Room),
				})
			}
		}
	}

	return warns
}

func wallKindName(k model.WallKind) string {
	if k == "" {
		return string(model.WallSolid)
	}
	return string(k)
}

// checkVerticalConnections проверяет цепочки лестниц/лифтов между
// этажами: пропущенные этажи и расхождение позиций элементов.
func checkVerticalConnections(doc *Document) []resolve.Warning {
	var warns []resolve.Warning

	floorIndex := make(map[string]int, len(doc.Floors))
	for i := range doc.Floors {
		floorIndex[doc.Floors[i].Floor.ID] = i
	}

	for _, vc := range doc.Plan.VerticalConnections {
		var prevIdx = -1
		var prevPos *model.Point
		var prevName string

		for _, link := range vc.Links {
			idx, ok := floorIndex[link.Floor]
			if !ok {
				warns = append(warns, resolve.Warning{
					Kind:    resolve.WarnVertical,
					Subject: link.Element,
					Message: fmt.Sprintf("vertical connection references unknown floor %q", link.Floor),
				})
				prevIdx, prevPos = -1, nil
				continue
			}

			if prevIdx >= 0 && abs(idx-prevIdx) != 1 {
				warns = append(warns, resolve.Warning{
					Kind:    resolve.WarnVertical,
					Subject: link.Element,
					Message: fmt.Sprintf("vertical connection %q skips floors between %q and %q", link.Element, doc.Floors[prevIdx].Floor.ID, link.Floor),
				})
			}

			pos, resolved := doc.Floors[idx].Layout.Positions[link.Element]
			if !resolved {
				warns = append(warns, resolve.Warning{
					Kind:    resolve.WarnVertical,
					Subject: link.Element,
					Message: fmt.Sprintf("vertical connection element %q is not placed on floor %q", link.Element, link.Floor),
				})
				prevIdx, prevPos = idx, nil
				continue
			}

			if prevPos != nil {
				if math.Abs(pos.X-prevPos.X) > 0.01 || math.Abs(pos.Y-prevPos.Y) > 0.01 {
					warns = append(warns, resolve.Warning{
						Kind:    resolve.WarnVertical,
						Subject: link.Element,
						Message: fmt.Sprintf("vertical connection elements %q and %q are not aligned between floors", prevName, link.Element),
					})
				}
			}

			prevIdx, prevName = idx, link.Element
			p := pos
			prevPos = &p
		}
	}

	return warns
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
