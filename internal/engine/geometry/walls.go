package geometry

import "floorplan-engine/internal/engine/model"

// ============================================================
// Wall geometry
// ============================================================

// DefaultWallThickness — толщина стены в единицах документа,
// если конфиг ее не переопределяет.
const DefaultWallThickness = 0.2

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Wall — граница комнаты с одной из четырех сторон. Start лежит
// на несущей линии стены (внешнее ребро комнаты), Length — вдоль
// оси стены. Верх/низ горизонтальны, лево/право вертикальны.
type Wall struct {
	Start      model.Point
	Length     float64
	Thickness  float64
	Horizontal bool
	Direction  model.WallDirection
}

// Bounds выводит стену комнаты по направлению.
func Bounds(room Rect, dir model.WallDirection, thickness float64) Wall {
	switch dir {
	case model.WallTop:
		return Wall{Start: model.Point{X: room.X, Y: room.Y}, Length: room.W, Thickness: thickness, Horizontal: true, Direction: dir}
	case model.WallBottom:
		return Wall{Start: model.Point{X: room.X, Y: room.Y + room.H}, Length: room.W, Thickness: thickness, Horizontal: true, Direction: dir}
	case model.WallLeft:
		return Wall{Start: model.Point{X: room.X, Y: room.Y}, Length: room.H, Thickness: thickness, Horizontal: false, Direction: dir}
	case model.WallRight:
		return Wall{Start: model.Point{X: room.X + room.W, Y: room.Y}, Length: room.H, Thickness: thickness, Horizontal: false, Direction: dir}
	}
	return Wall{Direction: dir, Thickness: thickness}
}

// Band возвращает прямоугольник стены для рендеринга: полоса
// толщиной Thickness, уходящая внутрь комнаты от несущей линии.
func (w Wall) Band() Rect {
	switch w.Direction {
	case model.WallTop:
		return Rect{X: w.Start.X, Y: w.Start.Y, W: w.Length, H: w.Thickness}
	case model.WallBottom:
		return Rect{X: w.Start.X, Y: w.Start.Y - w.Thickness, W: w.Length, H: w.Thickness}
	case model.WallLeft:
		return Rect{X: w.Start.X, Y: w.Start.Y, W: w.Thickness, H: w.Length}
	case model.WallRight:
		return Rect{X: w.Start.X - w.Thickness, Y: w.Start.Y, W: w.Thickness, H: w.Length}
	}
	return Rect{}
}

// interval — отрезок стены вдоль ее оси.
func (w Wall) interval() (float64, float64) {
	if w.Horizontal {
		return w.Start.X, w.Start.X + w.Length
	}
	return w.Start.Y, w.Start.Y + w.Length
}

// Overlap — одномерное пересечение двух стен одной ориентации
// вдоль общей оси. Для разных ориентаций пересечение не определено.
func Overlap(a, b Wall) (float64, float64, bool) {
	if a.Horizontal != b.Horizontal {
		return 0, 0, false
	}

	as, ae := a.interval()
	bs, be := b.interval()

	start := as
	if bs > start {
		start = bs
	}
	end := ae
	if be < end {
		end = be
	}

	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// ============================================================
// Connection placement
// ============================================================

// Placement — точка проема на несущей стене.
type Placement struct {
	Wall  Wall
	At    float64 // координата вдоль оси несущей стены
	Point model.Point
}

// PlaceOpening размещает проем на проценте p от общего сегмента
// стен. Без целевой стены или без пересечения — фолбэк на p
// процентов полной стены источника. Смешанная ориентация якорится
// на ту стену, которая горизонтальна.
func PlaceOpening(source Wall, target *Wall, pct float64) Placement {
	pct = clampPct(pct)

	if target == nil {
		return alongWall(source, pct)
	}

	if source.Horizontal != target.Horizontal {
		if source.Horizontal {
			return alongWall(source, pct)
		}
		return alongWall(*target, pct)
	}

	start, end, ok := Overlap(source, *target)
	if !ok {
		return alongWall(source, pct)
	}

	return placementAt(source, start+(end-start)*pct/100)
}

func alongWall(w Wall, pct float64) Placement {
	start, _ := w.interval()
	return placementAt(w, start+w.Length*pct/100)
}

func placementAt(w Wall, at float64) Placement {
	p := model.Point{X: w.Start.X, Y: at}
	if w.Horizontal {
		p = model.Point{X: at, Y: w.Start.Y}
	}
	return Placement{Wall: w, At: at, Point: p}
}

func clampPct(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// OppositeWall — сторона, смежная данной у комнаты напротив.
func OppositeWall(dir model.WallDirection) model.WallDirection {
	switch dir {
	case model.WallTop:
		return model.WallBottom
	case model.WallBottom:
		return model.WallTop
	case model.WallLeft:
		return model.WallRight
	case model.WallRight:
		return model.WallLeft
	}
	return dir
}

// InferWall выводит стену источника из взаимного расположения двух
// комнат: берется сторона с наибольшим перекрытием интервалов.
func InferWall(from, to Rect) model.WallDirection {
	best := model.WallRight
	bestScore := -1.0

	for _, dir := range model.WallDirections {
		src := Bounds(from, dir, 0)
		dst := Bounds(to, OppositeWall(dir), 0)
		start, end, ok := Overlap(src, dst)
		if !ok {
			continue
		}
		score := end - start
		// Штраф за расстояние между несущими линиями.
		gap := src.Start.X - dst.Start.X
		if src.Horizontal {
			gap = src.Start.Y - dst.Start.Y
		}
		if gap < 0 {
			gap = -gap
		}
		score -= gap
		if score > bestScore {
			bestScore = score
			best = dir
		}
	}

	return best
}
