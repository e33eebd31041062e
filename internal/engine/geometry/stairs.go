package geometry

import (
	"fmt"
	"math"

	"floorplan-engine/internal/engine/model"
	"floorplan-engine/internal/engine/resolve"
	"floorplan-engine/internal/engine/units"
)

// ============================================================
// Stair geometry
// ============================================================

// Дефолтные габариты лестницы в метрах.
const (
	defaultRiserM = 0.18
	defaultTreadM = 0.25
	defaultWidthM = 0.9
)

// StepCount = ceil(rise / riser). Некорректный подступенок
// читается как дефолтный.
func StepCount(rise, riser float64) int {
	if rise <= 0 {
		return 0
	}
	if riser <= 0 {
		riser = defaultRiserM
	}
	n := int(math.Ceil(rise / riser))
	if n < 1 {
		n = 1
	}
	return n
}

// stairDims — ширина/подступенок/проступь лестницы в единицах def.
func stairDims(st *model.Stair, def units.Unit) (width, riser, tread float64) {
	width = defaultLen(st.Width, defaultWidthM, def)
	riser = defaultLen(st.Riser, defaultRiserM, def)
	tread = defaultLen(st.Tread, defaultTreadM, def)
	return width, riser, tread
}

func defaultLen(d *model.Dimension, metersDefault float64, def units.Unit) float64 {
	if d != nil && d.Value > 0 {
		return units.Length(*d, def, def)
	}
	v, err := units.Convert(metersDefault, units.Meter, def)
	if err != nil {
		return metersDefault
	}
	return v
}

// Steps возвращает число ступеней лестницы в ее единицах.
func Steps(st *model.Stair, def units.Unit) int {
	_, riser, _ := stairDims(st, def)
	rise := units.Length(st.Rise, def, def)
	return StepCount(rise, riser)
}

// Footprint — габаритный прямоугольник лестницы. У каждого
// варианта формы своя формула; spiral/curved дают квадрат,
// выведенный из радиуса. Возвращает (ширина, глубина) с учетом
// ориентации входа.
func Footprint(st *model.Stair, def units.Unit) (float64, float64) {
	width, _, tread := stairDims(st, def)
	n := Steps(st, def)
	landing := defaultLen(st.Landing, 0, def)
	if landing <= 0 {
		landing = width
	}

	across, along := footprintUnoriented(st, width, tread, landing, n, def)

	// Вход слева/справа кладет лестницу на бок.
	if st.Entry == "left" || st.Entry == "right" {
		return along, across
	}
	return across, along
}

func footprintUnoriented(st *model.Stair, width, tread, landing float64, n int, def units.Unit) (across, along float64) {
	switch st.Shape {
	case model.StairStraight:
		return width, float64(n) * tread

	case model.StairL:
		n1, n2 := splitRuns2(st.Run1, st.Run2, n)
		return width + float64(n2)*tread, float64(n1)*tread + landing

	case model.StairU:
		n1, n2 := splitRuns2(st.Run1, st.Run2, n)
		longest := n1
		if n2 > longest {
			longest = n2
		}
		return 2 * width, float64(longest)*tread + landing

	case model.StairDoubleL:
		n1, n2, n3 := splitRuns3(st.Run1, st.Run2, st.Run3, n)
		longest := n1
		if n3 > longest {
			longest = n3
		}
		return 2*width + float64(n2)*tread, float64(longest)*tread + landing

	case model.StairSpiral, model.StairCurved:
		r := defaultLen(st.Radius, 0, def)
		if r <= 0 {
			r = width
		}
		return 2 * r, 2 * r

	case model.StairWinder:
		// Забежные ступени занимают угол вместо площадки.
		n1, n2 := splitRuns2(st.Run1, st.Run2, n-st.Winders)
		return width + float64(n2)*tread, float64(n1)*tread + width

	case model.StairCustom:
		return traceSegments(st.Segments, width, tread)
	}

	return width, float64(n) * tread
}

func splitRuns2(r1, r2, total int) (int, int) {
	if r1 > 0 && r2 > 0 {
		return r1, r2
	}
	if r1 > 0 {
		return r1, total - r1
	}
	if r2 > 0 {
		return total - r2, r2
	}
	half := total / 2
	return half, total - half
}

func splitRuns3(r1, r2, r3, total int) (int, int, int) {
	if r1 > 0 && r2 > 0 && r3 > 0 {
		return r1, r2, r3
	}
	third := total / 3
	return third, third, total - 2*third
}

// traceSegments прокручивает сегменты кастомной лестницы как
// черепашью трассу: марши продвигают позицию по текущему
// направлению, повороты крутят его на 90° и занимают площадку.
func traceSegments(segments []model.StairSegment, width, tread float64) (float64, float64) {
	// Направление "вверх" по плану: y убывает.
	hx, hy := 0.0, -1.0
	x, y := 0.0, 0.0

	minX, maxX := -width/2, width/2
	minY, maxY := 0.0, 0.0

	grow := func(px, py float64) {
		minX = math.Min(minX, px)
		maxX = math.Max(maxX, px)
		minY = math.Min(minY, py)
		maxY = math.Max(maxY, py)
	}

	for _, seg := range segments {
		switch seg.Kind {
		case model.SegmentFlight:
			length := float64(seg.Steps) * tread
			nx, ny := x+hx*length, y+hy*length
			// Полоса марша шириной width вокруг осевой линии.
			grow(x-width/2, y-width/2)
			grow(x+width/2, y+width/2)
			grow(nx-width/2, ny-width/2)
			grow(nx+width/2, ny+width/2)
			x, y = nx, ny

		case model.SegmentTurn:
			if seg.Direction == "left" {
				hx, hy = hy, -hx
			} else {
				hx, hy = -hy, hx
			}
			// Площадка поворота.
			grow(x-width/2, y-width/2)
			grow(x+width/2, y+width/2)
		}
	}

	return maxX - minX, maxY - minY
}

// ============================================================
// Building codes
// ============================================================

// codeLimits — пороги строительных норм в метрах.
type codeLimits struct {
	MaxRiser    float64
	MinTread    float64
	MinWidth    float64
	MinHeadroom float64
}

var buildingCodes = map[string]codeLimits{
	"residential": {MaxRiser: 0.196, MinTread: 0.254, MinWidth: 0.914, MinHeadroom: 2.032},
	"commercial":  {MaxRiser: 0.178, MinTread: 0.279, MinWidth: 1.118, MinHeadroom: 2.032},
	"ada":         {MaxRiser: 0.178, MinTread: 0.279, MinWidth: 1.219, MinHeadroom: 2.032},
}

// CheckStairCode сверяет габариты лестницы с порогами нормы.
// Только предупреждения: нарушение нормы не останавливает пайплайн.
func CheckStairCode(st *model.Stair, code string, def units.Unit) []resolve.Warning {
	if code == "" {
		return nil
	}
	limits, ok := buildingCodes[code]
	if !ok {
		return []resolve.Warning{{
			Kind:    resolve.WarnBuildingCode,
			Subject: st.Name,
			Message: fmt.Sprintf("unknown building code %q", code),
		}}
	}

	width, riser, tread := stairDims(st, def)
	widthM := toMeters(width, def)
	riserM := toMeters(riser, def)
	treadM := toMeters(tread, def)

	var warns []resolve.Warning
	add := func(format string, args ...any) {
		warns = append(warns, resolve.Warning{
			Kind:    resolve.WarnBuildingCode,
			Subject: st.Name,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if riserM > limits.MaxRiser {
		add("stair %q riser %.3fm exceeds %s maximum %.3fm", st.Name, riserM, code, limits.MaxRiser)
	}
	if treadM < limits.MinTread {
		add("stair %q tread %.3fm is below %s minimum %.3fm", st.Name, treadM, code, limits.MinTread)
	}
	if widthM < limits.MinWidth {
		add("stair %q width %.3fm is below %s minimum %.3fm", st.Name, widthM, code, limits.MinWidth)
	}
	if st.Headroom != nil {
		headroomM := toMeters(units.Length(*st.Headroom, def, def), def)
		if headroomM < limits.MinHeadroom {
			add("stair %q headroom %.3fm is below %s minimum %.3fm", st.Name, headroomM, code, limits.MinHeadroom)
		}
	}

	return warns
}

func toMeters(v float64, def units.Unit) float64 {
	m, err := units.Convert(v, def, units.Meter)
	if err != nil {
		return v
	}
	return m
}
