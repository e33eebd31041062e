package resolve

import (
	"fmt"
	"strings"

	"floorplan-engine/internal/engine/model"
	"floorplan-engine/internal/engine/units"
)

// ============================================================
// Position Resolver
// ============================================================

// overlapTolerance не дает флагать комнаты, касающиеся ребрами.
const overlapTolerance = 0.01

// Layout — результат разрешения позиций одного этажа.
type Layout struct {
	Positions map[string]model.Point
	Errors    []Error
	Warnings  []Warning
}

// Resolved сообщает, получила ли комната абсолютные координаты.
func (l *Layout) Resolved(name string) bool {
	_, ok := l.Positions[name]
	return ok
}

// roomRef — комната в плоском списке этажа вместе с именем родителя.
// Позиции подкомнат считаются в системе координат родителя.
type roomRef struct {
	room   *model.Room
	parent string
}

// Positions переводит явные и относительные размещения комнат
// в абсолютные координаты. Итеративный fixed-point вместо явного
// топологического сорта: направление зависимостей обнаруживается
// лениво, комната может ссылаться на объявленную позже. Число
// проходов ограничено |pending|+1, что гарантирует остановку.
func Positions(floor *model.Floor, vars map[string]model.Size, def units.Unit) *Layout {
	layout := &Layout{Positions: make(map[string]model.Point)}

	var all []roomRef
	for i := range floor.Rooms {
		all = collectRooms(&floor.Rooms[i], "", all)
	}

	byName := make(map[string]*model.Room, len(all))
	for _, ref := range all {
		byName[ref.room.Name] = ref.room
	}

	// Seed: явные координаты верхнего уровня разрешаются сразу,
	// комнаты без какого-либо размещения выбывают с no_position.
	var pending []roomRef
	for _, ref := range all {
		room := ref.room
		switch {
		case room.Position != nil && ref.parent == "":
			layout.Positions[room.Name] = *room.Position
		case room.Position != nil || room.Relative != nil:
			pending = append(pending, ref)
		default:
			layout.Errors = append(layout.Errors, Error{
				Kind:    ErrNoPosition,
				Subject: room.Name,
				Message: fmt.Sprintf("room %q has neither explicit nor relative placement", room.Name),
			})
		}
	}

	maxPasses := len(pending) + 1
	for pass := 0; pass < maxPasses && len(pending) > 0; pass++ {
		progress := false
		var still []roomRef

		for _, ref := range pending {
			pos, state := resolveOne(ref, layout, vars, def, byName)
			switch state {
			case resolvedOK:
				layout.Positions[ref.room.Name] = pos
				progress = true
			case resolvedDropped:
				progress = true
			default:
				still = append(still, ref)
			}
		}

		pending = still
		if !progress {
			break
		}
	}

	if len(pending) > 0 {
		names := make([]string, 0, len(pending))
		for _, ref := range pending {
			names = append(names, ref.room.Name)
		}
		layout.Errors = append(layout.Errors, Error{
			Kind:    ErrCircularDependency,
			Subject: names[0],
			Message: fmt.Sprintf("circular dependency between rooms: %s", strings.Join(names, ", ")),
		})
	}

	layout.Warnings = append(layout.Warnings, overlapWarnings(all, layout, vars, def)...)

	// Лестницы и лифты с явной позицией попадают в карту как есть.
	for _, st := range floor.Stairs {
		if st.Position != nil {
			layout.Positions[st.Name] = *st.Position
		}
	}
	for _, lf := range floor.Lifts {
		if lf.Position != nil {
			layout.Positions[lf.Name] = *lf.Position
		}
	}

	return layout
}

func collectRooms(room *model.Room, parent string, acc []roomRef) []roomRef {
	acc = append(acc, roomRef{room: room, parent: parent})
	for i := range room.SubRooms {
		acc = collectRooms(&room.SubRooms[i], room.Name, acc)
	}
	return acc
}

type resolveState int

const (
	resolvedWaiting resolveState = iota
	resolvedOK
	resolvedDropped
)

// resolveOne пытается вычислить позицию одной pending-комнаты.
// Явная координата выигрывает у относительного размещения.
func resolveOne(ref roomRef, layout *Layout, vars map[string]model.Size, def units.Unit, byName map[string]*model.Room) (model.Point, resolveState) {
	room := ref.room

	if room.Position != nil {
		// Подкомната: явная координата — смещение от origin родителя.
		base, ok := layout.Positions[ref.parent]
		if !ok {
			return model.Point{}, resolvedWaiting
		}
		return model.Point{X: base.X + room.Position.X, Y: base.Y + room.Position.Y}, resolvedOK
	}

	rel := room.Relative
	refRoom, exists := byName[rel.Reference]
	if !exists {
		layout.Errors = append(layout.Errors, Error{
			Kind:    ErrMissingReference,
			Subject: room.Name,
			Message: fmt.Sprintf("room %q references unknown room %q", room.Name, rel.Reference),
		})
		return model.Point{}, resolvedDropped
	}

	refPos, ok := layout.Positions[rel.Reference]
	if !ok {
		return model.Point{}, resolvedWaiting
	}

	rw, rh := roomExtent(refRoom, vars, def)
	w, h := roomExtent(room, vars, def)

	gap := 0.0
	if rel.Gap != nil {
		gap = units.Length(*rel.Gap, def, def)
	}

	return placeRelative(rel, refPos, rw, rh, w, h, gap), resolvedOK
}

// placeRelative — арифметика восьми направлений. Диагональные
// варианты комбинируют формулы смещения напрямую, выравнивание
// к ним не применяется (угол к углу по построению).
func placeRelative(rel *model.RelativePosition, ref model.Point, rw, rh, w, h, gap float64) model.Point {
	rx, ry := ref.X, ref.Y

	switch rel.Direction {
	case model.RightOf:
		return model.Point{X: rx + rw + gap, Y: alignCross(rel.Align, ry, rh, h, false)}
	case model.LeftOf:
		return model.Point{X: rx - w - gap, Y: alignCross(rel.Align, ry, rh, h, false)}
	case model.Below:
		return model.Point{X: alignCross(rel.Align, rx, rw, w, true), Y: ry + rh + gap}
	case model.Above:
		return model.Point{X: alignCross(rel.Align, rx, rw, w, true), Y: ry - h - gap}
	case model.AboveLeft:
		return model.Point{X: rx - w - gap, Y: ry - h - gap}
	case model.AboveRight:
		return model.Point{X: rx + rw + gap, Y: ry - h - gap}
	case model.BelowLeft:
		return model.Point{X: rx - w - gap, Y: ry + rh + gap}
	case model.BelowRight:
		return model.Point{X: rx + rw + gap, Y: ry + rh + gap}
	}

	// Неизвестное направление читается как right-of.
	return model.Point{X: rx + rw + gap, Y: alignCross(rel.Align, ry, rh, h, false)}
}

// alignCross — выравнивание по поперечной оси. Для горизонтальных
// размещений по умолчанию top, для вертикальных left. Нераспознанные
// значения откатываются к умолчанию.
func alignCross(align string, refOrigin, refSpan, span float64, vertical bool) float64 {
	switch align {
	case "center":
		return refOrigin + (refSpan-span)/2
	case "bottom":
		if !vertical {
			return refOrigin + refSpan - span
		}
	case "right":
		if vertical {
			return refOrigin + refSpan - span
		}
	}
	return refOrigin
}

// roomExtent возвращает ширину и высоту комнаты в единицах def.
// Неразрешимый размер читается как нулевой: валидация ссылок
// на переменные живет отдельным проходом.
func roomExtent(room *model.Room, vars map[string]model.Size, def units.Unit) (float64, float64) {
	size, err := RoomSize(room, vars)
	if err != nil {
		return 0, 0
	}
	return units.Length(size.Width, def, def), units.Length(size.Height, def, def)
}

// overlapWarnings тестирует пары успешно разрешенных комнат на
// пересечение AABB. Сравниваются только комнаты одного родителя:
// подкомната пересекает своего родителя по построению. Порядок
// обхода — порядок объявления, чтобы порядок предупреждений был
// воспроизводим.
func overlapWarnings(all []roomRef, layout *Layout, vars map[string]model.Size, def units.Unit) []Warning {
	var warns []Warning

	for i := 0; i < len(all); i++ {
		a := all[i]
		pa, ok := layout.Positions[a.room.Name]
		if !ok {
			continue
		}
		aw, ah := roomExtent(a.room, vars, def)

		for j := i + 1; j < len(all); j++ {
			b := all[j]
			if a.parent != b.parent {
				continue
			}
			pb, ok := layout.Positions[b.room.Name]
			if !ok {
				continue
			}
			bw, bh := roomExtent(b.room, vars, def)

			if boxesOverlap(pa.X, pa.Y, aw, ah, pb.X, pb.Y, bw, bh) {
				warns = append(warns, Warning{
					Kind:    WarnOverlap,
					Subject: a.room.Name,
					Message: fmt.Sprintf("rooms %q and %q overlap", a.room.Name, b.room.Name),
				})
			}
		}
	}

	return warns
}

func boxesOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax+aw > bx+overlapTolerance &&
		bx+bw > ax+overlapTolerance &&
		ay+ah > by+overlapTolerance &&
		by+bh > ay+overlapTolerance
}
