package geometry

import (
	"strconv"
	"strings"

	"floorplan-engine/internal/engine/model"
)

// ============================================================
// Door / window / opening geometry
// ============================================================

// SwingDefault — дверь по умолчанию навешена справа.
const SwingDefault = "right"

// into — единичный вектор из стены внутрь комнаты
// (конвенция "лицом в комнату").
func into(dir model.WallDirection) (float64, float64) {
	switch dir {
	case model.WallTop:
		return 0, 1
	case model.WallBottom:
		return 0, -1
	case model.WallLeft:
		return 1, 0
	case model.WallRight:
		return -1, 0
	}
	return 0, 1
}

// rightHand — направление "вправо" для смотрящего внутрь комнаты.
// Экранные координаты (y вниз): поворот вектора взгляда на +90°.
func rightHand(dir model.WallDirection) (float64, float64) {
	ix, iy := into(dir)
	return -iy, ix
}

// DoorPath строит SVG path дверного полотна в открытом положении
// плюс дугу распашки. Сторона петель определяется swing и стороной
// стены: четыре направления стен согласованно инвертируют
// геометрический смысл left/right.
func DoorPath(center model.Point, width float64, dir model.WallDirection, swing string) string {
	if swing != "left" && swing != "right" {
		swing = SwingDefault
	}

	rx, ry := rightHand(dir)
	ix, iy := into(dir)

	side := 1.0
	if swing == "left" {
		side = -1.0
	}

	hinge := model.Point{X: center.X + rx*side*width/2, Y: center.Y + ry*side*width/2}
	jamb := model.Point{X: center.X - rx*side*width/2, Y: center.Y - ry*side*width/2}
	tip := model.Point{X: hinge.X + ix*width, Y: hinge.Y + iy*width}

	sweep := arcSweep(hinge, tip, jamb)

	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(fmtF(hinge.X))
	b.WriteString(" ")
	b.WriteString(fmtF(hinge.Y))
	b.WriteString(" L ")
	b.WriteString(fmtF(tip.X))
	b.WriteString(" ")
	b.WriteString(fmtF(tip.Y))
	b.WriteString(" A ")
	b.WriteString(fmtF(width))
	b.WriteString(" ")
	b.WriteString(fmtF(width))
	b.WriteString(" 0 0 ")
	b.WriteString(strconv.Itoa(sweep))
	b.WriteString(" ")
	b.WriteString(fmtF(jamb.X))
	b.WriteString(" ")
	b.WriteString(fmtF(jamb.Y))
	return b.String()
}

// DoubleDoorPaths — две независимые створки, зеркальные вокруг
// середины проема, с небольшим визуальным зазором между ними.
func DoubleDoorPaths(center model.Point, width float64, dir model.WallDirection) [2]string {
	gap := width * 0.04
	leaf := (width - gap) / 2
	rx, ry := rightHand(dir)

	offset := gap/2 + leaf/2
	left := model.Point{X: center.X - rx*offset, Y: center.Y - ry*offset}
	right := model.Point{X: center.X + rx*offset, Y: center.Y + ry*offset}

	return [2]string{
		DoorPath(left, leaf, dir, "left"),
		DoorPath(right, leaf, dir, "right"),
	}
}

// OpeningRect — прямоугольник разрыва в полосе стены под проем.
func OpeningRect(center model.Point, width, thickness float64, dir model.WallDirection) Rect {
	switch dir {
	case model.WallTop:
		return Rect{X: center.X - width/2, Y: center.Y, W: width, H: thickness}
	case model.WallBottom:
		return Rect{X: center.X - width/2, Y: center.Y - thickness, W: width, H: thickness}
	case model.WallLeft:
		return Rect{X: center.X, Y: center.Y - width/2, W: thickness, H: width}
	case model.WallRight:
		return Rect{X: center.X - thickness, Y: center.Y - width/2, W: thickness, H: width}
	}
	return Rect{}
}

// arcSweep выбирает sweep-флаг дуги от полотна к косяку вокруг петли.
func arcSweep(hinge, from, to model.Point) int {
	cross := (from.X-hinge.X)*(to.Y-hinge.Y) - (from.Y-hinge.Y)*(to.X-hinge.X)
	if cross > 0 {
		return 1
	}
	return 0
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
