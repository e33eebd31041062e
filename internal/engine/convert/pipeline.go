package convert

import (
	"floorplan-engine/internal/engine/geometry"
	"floorplan-engine/internal/engine/model"
	"floorplan-engine/internal/engine/resolve"
	"floorplan-engine/internal/engine/units"
)

// ============================================================
// Conversion Pipeline
// ============================================================

// Document — полностью разрешенная модель. Строится один раз на
// документ; оба эмиттера (JSON и SVG) читают только ее и не
// перезапускают разрешение.
type Document struct {
	Plan        *model.Floorplan
	DefaultUnit units.Unit
	Vars        map[string]model.Size
	Theme       resolve.Theme
	Thickness   float64
	Floors      []FloorModel
	MixedUnits  bool
	Errors      []resolve.Error
	Warnings    []resolve.Warning
}

type FloorModel struct {
	Floor  *model.Floor
	Index  int
	Layout *resolve.Layout
	Rooms  []RoomModel
	Stairs []StairModel
	Lifts  []LiftModel
}

// RoomModel — комната с абсолютной позицией и размером в единицах
// документа. Комнаты без разрешенной позиции сюда не попадают:
// эмиттеры их молча пропускают.
type RoomModel struct {
	Room   *model.Room
	Parent string
	Pos    model.Point
	W      float64
	H      float64
	Style  model.Style
}

func (rm RoomModel) Rect() geometry.Rect {
	return geometry.Rect{X: rm.Pos.X, Y: rm.Pos.Y, W: rm.W, H: rm.H}
}

type StairModel struct {
	Stair *model.Stair
	Pos   model.Point
	W     float64
	D     float64
	Steps int
}

type LiftModel struct {
	Lift *model.Lift
	Pos  model.Point
	W    float64
	H    float64
}

// Compile прогоняет документ через все резолверы ровно один раз
// и собирает разрешенную модель вместе со списками ошибок и
// предупреждений. Ошибки отдельных комнат не блокируют остальные.
func Compile(plan *model.Floorplan) *Document {
	cfg := plan.Config
	def := units.Resolve("", units.Unit(resolve.DefaultUnit(cfg)))

	doc := &Document{
		Plan:        plan,
		DefaultUnit: def,
		Theme:       resolve.ThemeFor(cfg),
		Thickness:   wallThickness(cfg, def),
		MixedUnits:  units.MixedSystems(plan),
	}

	vars, errs := resolve.Variables(plan)
	doc.Vars = vars
	doc.Errors = append(doc.Errors, errs...)
	doc.Errors = append(doc.Errors, resolve.ValidateSizeReferences(plan, vars)...)
	doc.Warnings = append(doc.Warnings, resolve.CheckVersion(plan.Version)...)

	code := ""
	if cfg != nil {
		code = cfg.BuildingCode
	}

	for i := range plan.Floors {
		floor := &plan.Floors[i]
		layout := resolve.Positions(floor, vars, def)

		fm := FloorModel{Floor: floor, Index: i, Layout: layout}
		doc.Errors = append(doc.Errors, layout.Errors...)
		doc.Warnings = append(doc.Warnings, layout.Warnings...)

		for j := range floor.Rooms {
			fm.Rooms = collectRoomModels(&floor.Rooms[j], "", fm.Rooms, layout, doc)
		}

		for j := range floor.Stairs {
			st := &floor.Stairs[j]
			doc.Warnings = append(doc.Warnings, geometry.CheckStairCode(st, code, def)...)
			pos, ok := layout.Positions[st.Name]
			if !ok {
				continue
			}
			w, d := geometry.Footprint(st, def)
			fm.Stairs = append(fm.Stairs, StairModel{
				Stair: st,
				Pos:   pos,
				W:     w,
				D:     d,
				Steps: geometry.Steps(st, def),
			})
		}

		for j := range floor.Lifts {
			lf := &floor.Lifts[j]
			pos, ok := layout.Positions[lf.Name]
			if !ok || lf.Size == nil {
				continue
			}
			fm.Lifts = append(fm.Lifts, LiftModel{
				Lift: lf,
				Pos:  pos,
				W:    units.Length(lf.Size.Width, def, def),
				H:    units.Length(lf.Size.Height, def, def),
			})
		}

		doc.Floors = append(doc.Floors, fm)
	}

	doc.Warnings = append(doc.Warnings, checkConnections(doc)...)
	doc.Warnings = append(doc.Warnings, checkVerticalConnections(doc)...)

	return doc
}

func collectRoomModels(room *model.Room, parent string, acc []RoomModel, layout *resolve.Layout, doc *Document) []RoomModel {
	if pos, ok := layout.Positions[room.Name]; ok {
		size, err := resolve.RoomSize(room, doc.Vars)
		w, h := 0.0, 0.0
		if err == nil {
			w = units.Length(size.Width, doc.DefaultUnit, doc.DefaultUnit)
			h = units.Length(size.Height, doc.DefaultUnit, doc.DefaultUnit)
		}
		acc = append(acc, RoomModel{
			Room:   room,
			Parent: parent,
			Pos:    pos,
			W:      w,
			H:      h,
			Style:  resolve.StyleFor(room.StyleRef, doc.Plan),
		})
	}
	for i := range room.SubRooms {
		acc = collectRoomModels(&room.SubRooms[i], room.Name, acc, layout, doc)
	}
	return acc
}

func wallThickness(cfg *model.Config, def units.Unit) float64 {
	if cfg != nil && cfg.WallThickness != nil && cfg.WallThickness.Value > 0 {
		return units.Length(*cfg.WallThickness, def, def)
	}
	return geometry.DefaultWallThickness
}

// roomModel ищет разрешенную комнату по имени на любом этаже.
func (d *Document) roomModel(name string) (*FloorModel, *RoomModel) {
	for i := range d.Floors {
		fm := &d.Floors[i]
		for j := range fm.Rooms {
			if fm.Rooms[j].Room.Name == name {
				return fm, &fm.Rooms[j]
			}
		}
	}
	return nil, nil
}

// roomHeight — высота комнаты: своя → этажа → дефолтные 2.7.
func (d *Document) roomHeight(fm *FloorModel, rm *RoomModel) float64 {
	if rm.Room.Height != nil {
		return units.Length(*rm.Room.Height, d.DefaultUnit, d.DefaultUnit)
	}
	if fm.Floor.Height != nil {
		return units.Length(*fm.Floor.Height, d.DefaultUnit, d.DefaultUnit)
	}
	v, err := units.Convert(2.7, units.Meter, d.DefaultUnit)
	if err != nil {
		return 2.7
	}
	return v
}
