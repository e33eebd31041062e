package convert

import (
	"encoding/json"
	"math"

	"floorplan-engine/internal/engine/model"
	"floorplan-engine/internal/engine/resolve"
	"floorplan-engine/internal/engine/units"
)

// ============================================================
// JSON Export
// ============================================================

// Схема экспорта стабильна и версионируется полем grammarVersion.
// Вторая планарная ось в JSON называется z.

type Export struct {
	GrammarVersion      string                     `json:"grammarVersion"`
	Floors              []FloorExport              `json:"floors"`
	Connections         []ConnectionExport         `json:"connections"`
	VerticalConnections []model.VerticalConnection `json:"verticalConnections"`
	Config              *model.Config              `json:"config,omitempty"`
	Styles              []model.Style              `json:"styles,omitempty"`
	Summary             *Summary                   `json:"summary,omitempty"`
}

type FloorExport struct {
	ID      string        `json:"id"`
	Index   int           `json:"index"`
	Rooms   []RoomExport  `json:"rooms"`
	Stairs  []StairExport `json:"stairs"`
	Lifts   []LiftExport  `json:"lifts"`
	Height  *float64      `json:"height,omitempty"`
	Metrics *FloorMetrics `json:"metrics,omitempty"`
}

type RoomExport struct {
	Name       string       `json:"name"`
	Label      string       `json:"label,omitempty"`
	X          float64      `json:"x"`
	Z          float64      `json:"z"`
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	Walls      []WallExport `json:"walls"`
	RoomHeight *float64     `json:"roomHeight,omitempty"`
	Elevation  *float64     `json:"elevation,omitempty"`
	Style      string       `json:"style,omitempty"`
	Area       float64      `json:"area"`
	Volume     *float64     `json:"volume,omitempty"`
}

type WallExport struct {
	Direction string   `json:"direction"`
	Type      string   `json:"type"`
	Position  *float64 `json:"position,omitempty"`
	Width     *float64 `json:"width,omitempty"`
	Height    *float64 `json:"height,omitempty"`
}

type StairExport struct {
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
	Shape string  `json:"shape"`
	Steps int     `json:"steps"`
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
	Rise  float64 `json:"rise"`
	Label string  `json:"label,omitempty"`
}

type LiftExport struct {
	Name   string   `json:"name"`
	X      float64  `json:"x"`
	Z      float64  `json:"z"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Doors  []string `json:"doors,omitempty"`
	Label  string   `json:"label,omitempty"`
}

type ConnectionExport struct {
	FromRoom   string   `json:"fromRoom"`
	FromWall   string   `json:"fromWall"`
	ToRoom     string   `json:"toRoom"`
	ToWall     string   `json:"toWall"`
	DoorType   string   `json:"doorType"`
	Position   *float64 `json:"position,omitempty"`
	Swing      string   `json:"swing,omitempty"`
	OpensInto  string   `json:"opensInto,omitempty"`
	Width      *float64 `json:"width,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	FullHeight bool     `json:"fullHeight,omitempty"`
}

type FloorMetrics struct {
	NetArea     float64 `json:"netArea"`
	BoundingBox BBox    `json:"boundingBox"`
	Efficiency  float64 `json:"efficiency"`
}

type BBox struct {
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Summary struct {
	GrossFloorArea float64 `json:"grossFloorArea"`
	RoomCount      int     `json:"roomCount"`
	FloorCount     int     `json:"floorCount"`
}

// BuildExport строит JSON-модель из разрешенного документа.
func BuildExport(doc *Document) *Export {
	af := areaFactor(doc)

	out := &Export{
		GrammarVersion:      resolve.GrammarVersion,
		Floors:              []FloorExport{},
		Connections:         []ConnectionExport{},
		VerticalConnections: doc.Plan.VerticalConnections,
		Config:              doc.Plan.Config,
		Styles:              doc.Plan.Styles,
	}
	if out.VerticalConnections == nil {
		out.VerticalConnections = []model.VerticalConnection{}
	}

	gross := 0.0
	roomCount := 0

	for i := range doc.Floors {
		fm := &doc.Floors[i]
		fe := FloorExport{
			ID:     fm.Floor.ID,
			Index:  fm.Index,
			Rooms:  []RoomExport{},
			Stairs: []StairExport{},
			Lifts:  []LiftExport{},
		}
		if fm.Floor.Height != nil {
			h := units.Length(*fm.Floor.Height, doc.DefaultUnit, doc.DefaultUnit)
			fe.Height = &h
		}

		for j := range fm.Rooms {
			rm := &fm.Rooms[j]
			fe.Rooms = append(fe.Rooms, exportRoom(doc, fm, rm, af))
		}
		roomCount += len(fe.Rooms)

		for j := range fm.Stairs {
			sm := &fm.Stairs[j]
			fe.Stairs = append(fe.Stairs, StairExport{
				Name:  sm.Stair.Name,
				X:     sm.Pos.X,
				Z:     sm.Pos.Y,
				Shape: string(sm.Stair.Shape),
				Steps: sm.Steps,
				Width: sm.W,
				Depth: sm.D,
				Rise:  units.Length(sm.Stair.Rise, doc.DefaultUnit, doc.DefaultUnit),
				Label: sm.Stair.Label,
			})
		}

		for j := range fm.Lifts {
			lm := &fm.Lifts[j]
			doors := make([]string, 0, len(lm.Lift.Doors))
			for _, d := range lm.Lift.Doors {
				doors = append(doors, string(d))
			}
			fe.Lifts = append(fe.Lifts, LiftExport{
				Name:   lm.Lift.Name,
				X:      lm.Pos.X,
				Z:      lm.Pos.Y,
				Width:  lm.W,
				Height: lm.H,
				Doors:  doors,
				Label:  lm.Lift.Label,
			})
		}

		metrics := floorMetrics(fm, af)
		fe.Metrics = metrics
		if metrics != nil {
			gross += metrics.NetArea
		}

		out.Floors = append(out.Floors, fe)
	}

	for i := range doc.Plan.Connections {
		out.Connections = append(out.Connections, exportConnection(doc, &doc.Plan.Connections[i]))
	}

	out.Summary = &Summary{
		GrossFloorArea: gross,
		RoomCount:      roomCount,
		FloorCount:     len(doc.Floors),
	}

	return out
}

// MarshalExport сериализует экспорт с отступами. Порядок полей
// фиксирован структурами — вывод детерминирован.
func MarshalExport(doc *Document) ([]byte, error) {
	return json.MarshalIndent(BuildExport(doc), "", "  ")
}

func exportRoom(doc *Document, fm *FloorModel, rm *RoomModel, af float64) RoomExport {
	re := RoomExport{
		Name:   rm.Room.Name,
		Label:  rm.Room.Label,
		X:      rm.Pos.X,
		Z:      rm.Pos.Y,
		Width:  rm.W,
		Height: rm.H,
		// Имя стиля после цепочки фолбэков, не сырая ссылка:
		// комната со стилем из конфига экспортируется так же,
		// как рендерится.
		Style:  rm.Style.Name,
		Area:   rm.W * rm.H * af * af,
	}

	rh := doc.roomHeight(fm, rm)
	if rm.Room.Height != nil || fm.Floor.Height != nil {
		re.RoomHeight = &rh
	}
	if rm.Room.Elevation != nil {
		e := units.Length(*rm.Room.Elevation, doc.DefaultUnit, doc.DefaultUnit)
		re.Elevation = &e
	}

	volume := re.Area * rh * af
	re.Volume = &volume

	for _, dir := range model.WallDirections {
		spec := rm.Room.Walls.Side(dir)
		we := WallExport{
			Direction: string(dir),
			Type:      wallKindName(spec.Kind),
			Position:  spec.Position,
		}
		if spec.Size != nil {
			w := units.Length(spec.Size.Width, doc.DefaultUnit, doc.DefaultUnit)
			h := units.Length(spec.Size.Height, doc.DefaultUnit, doc.DefaultUnit)
			we.Width = &w
			we.Height = &h
		}
		re.Walls = append(re.Walls, we)
	}

	return re
}

func exportConnection(doc *Document, conn *model.Connection) ConnectionExport {
	ce := ConnectionExport{
		FromRoom:   conn.From.Room,
		FromWall:   string(conn.From.Wall),
		ToRoom:     conn.To.Room,
		ToWall:     string(conn.To.Wall),
		DoorType:   string(conn.Kind),
		Position:   conn.Position,
		Swing:      conn.Swing,
		OpensInto:  conn.OpensInto,
		FullHeight: conn.FullHeight,
	}

	if rc := resolveConnection(doc, conn); rc != nil {
		ce.FromWall = string(rc.FromWall)
		ce.ToWall = string(rc.ToWall)
	}

	if conn.Width != nil {
		w := units.Length(*conn.Width, doc.DefaultUnit, doc.DefaultUnit)
		ce.Width = &w
	}
	if conn.Height != nil {
		h := units.Length(*conn.Height, doc.DefaultUnit, doc.DefaultUnit)
		ce.Height = &h
	}

	return ce
}

// floorMetrics считает метрики по комнатам верхнего уровня:
// подкомнаты лежат внутри родителей и задвоили бы площадь.
func floorMetrics(fm *FloorModel, af float64) *FloorMetrics {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	net := 0.0
	found := false

	for i := range fm.Rooms {
		rm := &fm.Rooms[i]
		if rm.Parent != "" {
			continue
		}
		found = true
		net += rm.W * rm.H
		minX = math.Min(minX, rm.Pos.X)
		minY = math.Min(minY, rm.Pos.Y)
		maxX = math.Max(maxX, rm.Pos.X+rm.W)
		maxY = math.Max(maxY, rm.Pos.Y+rm.H)
	}

	if !found {
		return nil
	}

	bboxArea := (maxX - minX) * (maxY - minY)
	efficiency := 0.0
	if bboxArea > 0 {
		efficiency = net / bboxArea
		if efficiency > 1 {
			efficiency = 1
		}
	}

	return &FloorMetrics{
		NetArea: net * af * af,
		BoundingBox: BBox{
			X:      minX,
			Z:      minY,
			Width:  maxX - minX,
			Height: maxY - minY,
		},
		Efficiency: efficiency,
	}
}

// areaFactor — линейный коэффициент перевода из единицы документа
// в единицу площадей из конфига.
func areaFactor(doc *Document) float64 {
	cfg := doc.Plan.Config
	if cfg == nil || cfg.AreaUnit == "" {
		return 1
	}
	f, err := units.Convert(1, doc.DefaultUnit, units.Unit(cfg.AreaUnit))
	if err != nil {
		return 1
	}
	return f
}
