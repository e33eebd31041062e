package units

import (
	"fmt"

	"floorplan-engine/internal/engine/model"
)

// ============================================================
// Unit System
// ============================================================

type Unit string

const (
	Meter      Unit = "m"
	Centimeter Unit = "cm"
	Millimeter Unit = "mm"
	Foot       Unit = "ft"
	Inch       Unit = "in"
)

// Default — системная единица по умолчанию.
const Default = Meter

// Коэффициенты перевода в метры. Конверсия всегда идет через метр.
var toMeters = map[Unit]float64{
	Meter:      1,
	Centimeter: 0.01,
	Millimeter: 0.001,
	Foot:       0.3048,
	Inch:       0.0254,
}

func Known(u Unit) bool {
	_, ok := toMeters[u]
	return ok
}

func IsImperial(u Unit) bool {
	return u == Foot || u == Inch
}

// Resolve возвращает explicit ?? configDefault ?? Default.
func Resolve(explicit, configDefault Unit) Unit {
	if explicit != "" {
		return explicit
	}
	if configDefault != "" {
		return configDefault
	}
	return Default
}

// Convert переводит значение между единицами через метры.
// Точное умножение, без округления.
func Convert(value float64, from, to Unit) (float64, error) {
	if from == to {
		return value, nil
	}
	f, ok := toMeters[from]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	t, ok := toMeters[to]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	return value * f / t, nil
}

// Length переводит Dimension в целевую единицу. Пустая единица
// в Dimension читается как def. Неизвестная единица дает исходное значение.
func Length(d model.Dimension, def, to Unit) float64 {
	from := Resolve(Unit(d.Unit), def)
	v, err := Convert(d.Value, from, to)
	if err != nil {
		return d.Value
	}
	return v
}

// ============================================================
// Mixed unit systems detector
// ============================================================

// MixedSystems сканирует все размерные значения документа и
// возвращает true, когда встречаются и метрические, и имперские
// единицы. Чисто информационный признак, не ошибка.
func MixedSystems(plan *model.Floorplan) bool {
	d := &systemDetector{}

	if plan.Config != nil {
		cfg := plan.Config
		d.addName(cfg.DefaultUnit)
		d.addName(cfg.AreaUnit)
		d.add(cfg.WallThickness)
		d.add(cfg.DoorWidth)
		d.add(cfg.DoorHeight)
		d.add(cfg.WindowWidth)
		d.add(cfg.WindowHeight)
	}
	for _, v := range plan.Variables {
		d.addSize(&v.Size)
	}
	for _, fl := range plan.Floors {
		d.add(fl.Height)
		for i := range fl.Rooms {
			d.addRoom(&fl.Rooms[i])
		}
		for _, st := range fl.Stairs {
			d.add(&st.Rise)
			d.add(st.Width)
			d.add(st.Riser)
			d.add(st.Tread)
			d.add(st.Nosing)
			d.add(st.Headroom)
			d.add(st.Landing)
			d.add(st.Radius)
		}
		for _, lf := range fl.Lifts {
			d.addSize(lf.Size)
		}
	}
	for _, c := range plan.Connections {
		d.add(c.Width)
		d.add(c.Height)
	}

	return d.metric && d.imperial
}

type systemDetector struct {
	metric   bool
	imperial bool
}

func (d *systemDetector) addName(name string) {
	if name == "" || !Known(Unit(name)) {
		return
	}
	if IsImperial(Unit(name)) {
		d.imperial = true
	} else {
		d.metric = true
	}
}

func (d *systemDetector) add(dim *model.Dimension) {
	if dim == nil {
		return
	}
	d.addName(dim.Unit)
}

func (d *systemDetector) addSize(s *model.Size) {
	if s == nil {
		return
	}
	d.add(&s.Width)
	d.add(&s.Height)
}

func (d *systemDetector) addRoom(room *model.Room) {
	d.addSize(room.Size)
	d.add(room.Height)
	d.add(room.Elevation)
	if room.Relative != nil {
		d.add(room.Relative.Gap)
	}
	for _, dir := range model.WallDirections {
		spec := room.Walls.Side(dir)
		d.addSize(spec.Size)
	}
	for i := range room.SubRooms {
		d.addRoom(&room.SubRooms[i])
	}
}
