package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"floorplan-engine/internal/engine/geometry"
	"floorplan-engine/internal/engine/model"
	"floorplan-engine/internal/engine/units"
)

// ============================================================
// SVG Renderer
// ============================================================

const (
	LayoutStacked    = "stacked"
	LayoutSideBySide = "sideBySide"

	defaultPadding = 1.0
	defaultScale   = 50.0
)

// RenderOptions — настройки SVG-эмиттера. Нулевые значения
// заполняются дефолтами и display-тогглами из конфига документа.
type RenderOptions struct {
	Floor          string // пустое = все этажи
	Layout         string // stacked | sideBySide
	Padding        float64
	Scale          float64
	AreaUnit       string // перекрывает areaUnit конфига в подписях
	LengthUnit     string // единица размерных линий, пустое = единица документа
	ShowAreas      bool
	ShowDimensions bool
	ShowSummary    bool
	IncludeStyles  bool
}

type Renderer struct {
	doc  *Document
	opts RenderOptions
}

func NewRenderer(doc *Document, opts RenderOptions) *Renderer {
	if opts.Padding <= 0 {
		opts.Padding = defaultPadding
	}
	if opts.Scale <= 0 {
		opts.Scale = defaultScale
	}
	if opts.Layout != LayoutSideBySide {
		opts.Layout = LayoutStacked
	}

	if cfg := doc.Plan.Config; cfg != nil {
		if cfg.ShowAreas != nil && *cfg.ShowAreas {
			opts.ShowAreas = true
		}
		if cfg.ShowDims != nil && *cfg.ShowDims {
			opts.ShowDimensions = true
		}
		if cfg.ShowSummary != nil && *cfg.ShowSummary {
			opts.ShowSummary = true
		}
	}

	return &Renderer{doc: doc, opts: opts}
}

// Render собирает SVG из разрешенного документа. Разрешение к
// этому моменту уже состоялось: рендерер только читает модель.
func (r *Renderer) Render() (string, error) {
	floors, err := r.pickFloors()
	if err != nil {
		return "", err
	}

	boxes := make([]geometry.Rect, len(floors))
	for i, fm := range floors {
		boxes[i] = floorBounds(fm)
	}

	offsets, totalW, totalH := r.layoutFloors(boxes)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		fmtNum(totalW), fmtNum(totalH), fmtNum(totalW), fmtNum(totalH)))
	b.WriteString("\n")

	if r.opts.IncludeStyles {
		r.writeStylesheet(&b)
	}

	b.WriteString(fmt.Sprintf(`<rect class="canvas" x="0" y="0" width="%s" height="%s" fill="%s"/>`,
		fmtNum(totalW), fmtNum(totalH), r.doc.Theme.Background))
	b.WriteString("\n")
	b.WriteString(`<g class="floorplan">` + "\n")

	for i, fm := range floors {
		r.writeFloor(&b, fm, boxes[i], offsets[i])
	}

	b.WriteString(`</g>` + "\n")
	b.WriteString(`</svg>`)
	return b.String(), nil
}

func (r *Renderer) pickFloors() ([]*FloorModel, error) {
	if r.opts.Floor == "" {
		floors := make([]*FloorModel, 0, len(r.doc.Floors))
		for i := range r.doc.Floors {
			floors = append(floors, &r.doc.Floors[i])
		}
		return floors, nil
	}

	for i := range r.doc.Floors {
		if r.doc.Floors[i].Floor.ID == r.opts.Floor {
			return []*FloorModel{&r.doc.Floors[i]}, nil
		}
	}
	return nil, fmt.Errorf("unknown floor %q", r.opts.Floor)
}

// layoutFloors раскладывает этажи по холсту и возвращает смещения
// в пикселях плюс общий размер холста.
func (r *Renderer) layoutFloors(boxes []geometry.Rect) ([]model.Point, float64, float64) {
	pad := r.opts.Padding * r.opts.Scale
	offsets := make([]model.Point, len(boxes))

	cursor := pad
	maxW, maxH := 0.0, 0.0

	for i, box := range boxes {
		w := box.W * r.opts.Scale
		h := box.H * r.opts.Scale

		if r.opts.Layout == LayoutSideBySide {
			offsets[i] = model.Point{X: cursor - box.X*r.opts.Scale, Y: pad - box.Y*r.opts.Scale}
			cursor += w + pad
			maxH = math.Max(maxH, h)
		} else {
			offsets[i] = model.Point{X: pad - box.X*r.opts.Scale, Y: cursor - box.Y*r.opts.Scale}
			cursor += h + pad
			maxW = math.Max(maxW, w)
		}
	}

	if r.opts.Layout == LayoutSideBySide {
		return offsets, cursor, maxH + 2*pad
	}
	return offsets, maxW + 2*pad, cursor
}

// floorBounds — габариты содержимого этажа в единицах документа.
func floorBounds(fm *FloorModel) geometry.Rect {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	found := false

	grow := func(x, y, w, h float64) {
		found = true
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x+w)
		maxY = math.Max(maxY, y+h)
	}

	for i := range fm.Rooms {
		rm := &fm.Rooms[i]
		grow(rm.Pos.X, rm.Pos.Y, rm.W, rm.H)
	}
	for i := range fm.Stairs {
		sm := &fm.Stairs[i]
		grow(sm.Pos.X, sm.Pos.Y, sm.W, sm.D)
	}
	for i := range fm.Lifts {
		lm := &fm.Lifts[i]
		grow(lm.Pos.X, lm.Pos.Y, lm.W, lm.H)
	}

	if !found {
		return geometry.Rect{X: 0, Y: 0, W: 1, H: 1}
	}
	return geometry.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (r *Renderer) writeStylesheet(b *strings.Builder) {
	t := r.doc.Theme
	b.WriteString("<style>\n")
	b.WriteString(fmt.Sprintf(".floorplan { font-family: %s; font-size: %spx; }\n", t.FontFamily, fmtNum(t.FontSize)))
	b.WriteString(fmt.Sprintf(".floorplan text { fill: %s; }\n", t.FontColor))
	b.WriteString(".floorplan .door { fill: none; stroke-width: 1; }\n")
	b.WriteString(fmt.Sprintf(".floorplan .door, .floorplan .window { stroke: %s; }\n", t.Stroke))
	b.WriteString(fmt.Sprintf(".floorplan .stair, .floorplan .lift { fill: none; stroke: %s; }\n", t.Stroke))
	b.WriteString(".floorplan .dim { stroke: #999999; stroke-dasharray: 4 2; }\n")
	b.WriteString("</style>\n")
}

// ============================================================
// Floor rendering
// ============================================================

func (r *Renderer) writeFloor(b *strings.Builder, fm *FloorModel, box geometry.Rect, offset model.Point) {
	s := r.opts.Scale

	b.WriteString(fmt.Sprintf(`<g class="floor" aria-label="Floor: %s" transform="translate(%s %s)">`,
		fm.Floor.ID, fmtNum(offset.X), fmtNum(offset.Y)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf(`<rect class="floor-bg" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		fmtNum(box.X*s), fmtNum(box.Y*s), fmtNum(box.W*s), fmtNum(box.H*s), r.doc.Theme.Surface))
	b.WriteString("\n")

	for i := range fm.Rooms {
		r.writeRoom(b, &fm.Rooms[i])
	}

	for i := range r.doc.Plan.Connections {
		rc := resolveConnection(r.doc, &r.doc.Plan.Connections[i])
		if rc == nil || rc.Floor != fm {
			continue
		}
		r.writeConnection(b, rc)
	}

	for i := range fm.Stairs {
		r.writeStair(b, &fm.Stairs[i])
	}
	for i := range fm.Lifts {
		r.writeLift(b, &fm.Lifts[i])
	}

	if r.opts.ShowDimensions {
		for i := range fm.Rooms {
			if fm.Rooms[i].Parent == "" {
				r.writeDimensions(b, &fm.Rooms[i])
			}
		}
	}
	if r.opts.ShowAreas {
		for i := range fm.Rooms {
			r.writeAreaLabel(b, &fm.Rooms[i])
		}
	}
	if r.opts.ShowSummary {
		r.writeSummary(b, fm, box)
	}

	b.WriteString(`</g>` + "\n")
}

func (r *Renderer) writeRoom(b *strings.Builder, rm *RoomModel) {
	s := r.opts.Scale
	t := r.doc.Thickness

	b.WriteString(fmt.Sprintf(`<rect class="room" data-name="%s" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		rm.Room.Name, fmtNum(rm.Pos.X*s), fmtNum(rm.Pos.Y*s), fmtNum(rm.W*s), fmtNum(rm.H*s), rm.Style.FloorColor))
	b.WriteString("\n")

	for _, dir := range model.WallDirections {
		spec := rm.Room.Walls.Side(dir)
		if spec.Kind == model.WallOpen {
			continue
		}

		wall := geometry.Bounds(rm.Rect(), dir, t)
		band := wall.Band()
		b.WriteString(fmt.Sprintf(`<rect class="wall" data-direction="%s" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			dir, fmtNum(band.X*s), fmtNum(band.Y*s), fmtNum(band.W*s), fmtNum(band.H*s), rm.Style.WallColor))
		b.WriteString("\n")

		if spec.Kind == model.WallDoor || spec.Kind == model.WallWindow {
			r.writeWallOpening(b, rm, wall, spec, dir)
		}
	}
}

// writeWallOpening рисует дверь или окно, встроенные в стену
// самой комнаты (в отличие от межкомнатных соединений).
func (r *Renderer) writeWallOpening(b *strings.Builder, rm *RoomModel, wall geometry.Wall, spec model.WallSpec, dir model.WallDirection) {
	s := r.opts.Scale
	t := r.doc.Thickness

	pct := 50.0
	if spec.Position != nil {
		pct = *spec.Position
	}
	pl := geometry.PlaceOpening(wall, nil, pct)

	width := r.openingWidthFor(spec)

	gap := geometry.OpeningRect(pl.Point, width, t, dir)
	b.WriteString(fmt.Sprintf(`<rect class="opening" data-type="%s" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		spec.Kind, fmtNum(gap.X*s), fmtNum(gap.Y*s), fmtNum(gap.W*s), fmtNum(gap.H*s), rm.Style.FloorColor))
	b.WriteString("\n")

	switch spec.Kind {
	case model.WallDoor:
		center := model.Point{X: pl.Point.X * s, Y: pl.Point.Y * s}
		path := geometry.DoorPath(center, width*s, dir, geometry.SwingDefault)
		b.WriteString(fmt.Sprintf(`<path class="door" data-type="door" data-direction="%s" data-swing="%s" d="%s" fill="none" stroke="%s"/>`,
			dir, geometry.SwingDefault, path, rm.Style.WallColor))
		b.WriteString("\n")

	case model.WallWindow:
		glass := geometry.OpeningRect(pl.Point, width, t/3, dir)
		b.WriteString(fmt.Sprintf(`<rect class="window" data-type="window" data-direction="%s" x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s"/>`,
			dir, fmtNum(glass.X*s), fmtNum(glass.Y*s), fmtNum(glass.W*s), fmtNum(glass.H*s), rm.Style.WallColor))
		b.WriteString("\n")
	}
}

func (r *Renderer) openingWidthFor(spec model.WallSpec) float64 {
	if spec.Size != nil {
		return units.Length(spec.Size.Width, r.doc.DefaultUnit, r.doc.DefaultUnit)
	}

	cfg := r.doc.Plan.Config
	meters := defaultDoorM
	if spec.Kind == model.WallWindow {
		meters = 1.2
		if cfg != nil && cfg.WindowWidth != nil {
			return units.Length(*cfg.WindowWidth, r.doc.DefaultUnit, r.doc.DefaultUnit)
		}
	} else if cfg != nil && cfg.DoorWidth != nil {
		return units.Length(*cfg.DoorWidth, r.doc.DefaultUnit, r.doc.DefaultUnit)
	}

	v, err := units.Convert(meters, units.Meter, r.doc.DefaultUnit)
	if err != nil {
		return meters
	}
	return v
}

// ============================================================
// Connections
// ============================================================

func (r *Renderer) writeConnection(b *strings.Builder, rc *ResolvedConnection) {
	s := r.opts.Scale
	t := r.doc.Thickness
	dir := rc.Placement.Wall.Direction

	// Дверь открывается в указанную комнату, если она названа.
	if rc.Conn.OpensInto != "" && rc.To != nil && rc.Conn.OpensInto == rc.To.Room.Name {
		dir = geometry.OppositeWall(dir)
	}

	gap := connectionGap(rc.Placement, rc.Width, t)
	b.WriteString(fmt.Sprintf(`<rect class="opening" data-type="%s" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		rc.Conn.Kind, fmtNum(gap.X*s), fmtNum(gap.Y*s), fmtNum(gap.W*s), fmtNum(gap.H*s), rc.From.Style.FloorColor))
	b.WriteString("\n")

	swing := rc.Conn.Swing
	if swing == "" {
		swing = geometry.SwingDefault
	}
	center := model.Point{X: rc.Placement.Point.X * s, Y: rc.Placement.Point.Y * s}

	switch rc.Conn.Kind {
	case model.DoorDouble:
		paths := geometry.DoubleDoorPaths(center, rc.Width*s, dir)
		for _, path := range paths {
			b.WriteString(fmt.Sprintf(`<path class="door" data-type="double-door" data-direction="%s" data-swing="%s" d="%s" fill="none" stroke="%s"/>`,
				dir, swing, path, rc.From.Style.WallColor))
			b.WriteString("\n")
		}

	case model.DoorOpening:
		// Проем без двери: только разрыв в стене.

	default:
		path := geometry.DoorPath(center, rc.Width*s, dir, swing)
		b.WriteString(fmt.Sprintf(`<path class="door" data-type="door" data-direction="%s" data-swing="%s" d="%s" fill="none" stroke="%s"/>`,
			dir, swing, path, rc.From.Style.WallColor))
		b.WriteString("\n")
	}
}

// connectionGap — разрыв поперек обеих стеновых полос соединения.
func connectionGap(pl geometry.Placement, width, thickness float64) geometry.Rect {
	c := pl.Point
	if pl.Wall.Horizontal {
		return geometry.Rect{X: c.X - width/2, Y: c.Y - thickness, W: width, H: 2 * thickness}
	}
	return geometry.Rect{X: c.X - thickness, Y: c.Y - width/2, W: 2 * thickness, H: width}
}

// ============================================================
// Stairs & lifts
// ============================================================

func (r *Renderer) writeStair(b *strings.Builder, sm *StairModel) {
	s := r.opts.Scale
	x, y := sm.Pos.X*s, sm.Pos.Y*s
	w, d := sm.W*s, sm.D*s

	b.WriteString(fmt.Sprintf(`<g class="stair" data-shape="%s">`, sm.Stair.Shape))
	b.WriteString("\n")

	switch sm.Stair.Shape {
	case model.StairSpiral, model.StairCurved:
		cx, cy := x+w/2, y+d/2
		radius := w / 2
		b.WriteString(fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s"/>`,
			fmtNum(cx), fmtNum(cy), fmtNum(radius), r.doc.Theme.Stroke))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`,
			fmtNum(cx), fmtNum(cy), fmtNum(cx+radius), fmtNum(cy), r.doc.Theme.Stroke))
		b.WriteString("\n")

	default:
		b.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s"/>`,
			fmtNum(x), fmtNum(y), fmtNum(w), fmtNum(d), r.doc.Theme.Stroke))
		b.WriteString("\n")
		r.writeTreads(b, x, y, w, d, sm.Steps)
	}

	if sm.Stair.Label != "" {
		b.WriteString(fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle">%s</text>`,
			fmtNum(x+w/2), fmtNum(y+d/2), escapeText(sm.Stair.Label)))
		b.WriteString("\n")
	}

	b.WriteString(`</g>` + "\n")
}

// writeTreads — линии проступей поперек длинной оси габарита.
func (r *Renderer) writeTreads(b *strings.Builder, x, y, w, d float64, steps int) {
	if steps < 2 {
		return
	}

	if d >= w {
		span := d / float64(steps)
		for i := 1; i < steps; i++ {
			ly := y + span*float64(i)
			b.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`,
				fmtNum(x), fmtNum(ly), fmtNum(x+w), fmtNum(ly), r.doc.Theme.Stroke))
			b.WriteString("\n")
		}
		return
	}

	span := w / float64(steps)
	for i := 1; i < steps; i++ {
		lx := x + span*float64(i)
		b.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`,
			fmtNum(lx), fmtNum(y), fmtNum(lx), fmtNum(y+d), r.doc.Theme.Stroke))
		b.WriteString("\n")
	}
}

func (r *Renderer) writeLift(b *strings.Builder, lm *LiftModel) {
	s := r.opts.Scale
	x, y := lm.Pos.X*s, lm.Pos.Y*s
	w, h := lm.W*s, lm.H*s

	b.WriteString(fmt.Sprintf(`<g class="lift" data-name="%s">`, lm.Lift.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s"/>`,
		fmtNum(x), fmtNum(y), fmtNum(w), fmtNum(h), r.doc.Theme.Stroke))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`,
		fmtNum(x), fmtNum(y), fmtNum(x+w), fmtNum(y+h), r.doc.Theme.Stroke))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`,
		fmtNum(x+w), fmtNum(y), fmtNum(x), fmtNum(y+h), r.doc.Theme.Stroke))
	b.WriteString("\n")

	// Метки дверей по сторонам шахты.
	for _, dir := range lm.Lift.Doors {
		var x1, y1, x2, y2 float64
		switch dir {
		case model.WallTop:
			x1, y1, x2, y2 = x+w*0.3, y, x+w*0.7, y
		case model.WallBottom:
			x1, y1, x2, y2 = x+w*0.3, y+h, x+w*0.7, y+h
		case model.WallLeft:
			x1, y1, x2, y2 = x, y+h*0.3, x, y+h*0.7
		case model.WallRight:
			x1, y1, x2, y2 = x+w, y+h*0.3, x+w, y+h*0.7
		default:
			continue
		}
		b.WriteString(fmt.Sprintf(`<line class="lift-door" data-direction="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="3"/>`,
			dir, fmtNum(x1), fmtNum(y1), fmtNum(x2), fmtNum(y2), r.doc.Theme.Stroke))
		b.WriteString("\n")
	}

	b.WriteString(`</g>` + "\n")
}

// ============================================================
// Annotations
// ============================================================

func (r *Renderer) writeDimensions(b *strings.Builder, rm *RoomModel) {
	s := r.opts.Scale
	off := 0.3 * s

	x, y := rm.Pos.X*s, rm.Pos.Y*s
	w, h := rm.W*s, rm.H*s

	b.WriteString(fmt.Sprintf(`<line class="dim" x1="%s" y1="%s" x2="%s" y2="%s"/>`,
		fmtNum(x), fmtNum(y-off), fmtNum(x+w), fmtNum(y-off)))
	b.WriteString("\n")
	lu := r.lengthUnit()
	b.WriteString(fmt.Sprintf(`<text class="dim-label" x="%s" y="%s" text-anchor="middle">%s %s</text>`,
		fmtNum(x+w/2), fmtNum(y-off-4), fmtNum(roundTo(r.toLengthUnit(rm.W), 2)), lu))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(`<line class="dim" x1="%s" y1="%s" x2="%s" y2="%s"/>`,
		fmtNum(x-off), fmtNum(y), fmtNum(x-off), fmtNum(y+h)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(`<text class="dim-label" x="%s" y="%s" text-anchor="middle" transform="rotate(-90 %s %s)">%s %s</text>`,
		fmtNum(x-off-4), fmtNum(y+h/2), fmtNum(x-off-4), fmtNum(y+h/2), fmtNum(roundTo(r.toLengthUnit(rm.H), 2)), lu))
	b.WriteString("\n")
}

// lengthUnit — единица размерных подписей: опция запроса либо
// единица документа. Неизвестная единица откатывается к документной.
func (r *Renderer) lengthUnit() units.Unit {
	if r.opts.LengthUnit != "" && units.Known(units.Unit(r.opts.LengthUnit)) {
		return units.Unit(r.opts.LengthUnit)
	}
	return r.doc.DefaultUnit
}

func (r *Renderer) toLengthUnit(v float64) float64 {
	out, err := units.Convert(v, r.doc.DefaultUnit, r.lengthUnit())
	if err != nil {
		return v
	}
	return out
}

func (r *Renderer) writeAreaLabel(b *strings.Builder, rm *RoomModel) {
	s := r.opts.Scale
	cx, cy := (rm.Pos.X+rm.W/2)*s, (rm.Pos.Y+rm.H/2)*s

	name := rm.Room.Label
	if name == "" {
		name = rm.Room.Name
	}

	b.WriteString(fmt.Sprintf(`<text class="room-label" x="%s" y="%s" text-anchor="middle">%s</text>`,
		fmtNum(cx), fmtNum(cy), escapeText(name)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(`<text class="room-area" x="%s" y="%s" text-anchor="middle">%s %s</text>`,
		fmtNum(cx), fmtNum(cy+14), fmtNum(roundTo(rm.W*rm.H*r.areaScale(), 2)), r.areaUnitLabel()))
	b.WriteString("\n")
}

func (r *Renderer) writeSummary(b *strings.Builder, fm *FloorModel, box geometry.Rect) {
	metrics := floorMetrics(fm, 1)
	if metrics == nil {
		return
	}

	s := r.opts.Scale
	x := box.X * s
	y := (box.Y+box.H)*s + 16

	b.WriteString(fmt.Sprintf(`<text class="floor-summary" x="%s" y="%s">%s</text>`,
		fmtNum(x), fmtNum(y),
		escapeText(fmt.Sprintf("Floor %s: net %s %s, efficiency %d%%",
			fm.Floor.ID, fmtNum(roundTo(metrics.NetArea*r.areaScale(), 2)), r.areaUnitLabel(), int(metrics.Efficiency*100+0.5)))))
	b.WriteString("\n")
}

func (r *Renderer) areaUnitLabel() string {
	unit := string(r.doc.DefaultUnit)
	if cfg := r.doc.Plan.Config; cfg != nil && cfg.AreaUnit != "" {
		unit = cfg.AreaUnit
	}
	if r.opts.AreaUnit != "" {
		unit = r.opts.AreaUnit
	}
	return unit + "²"
}

// areaScale — квадратичный коэффициент перевода площадей из
// единицы документа в единицу подписей.
func (r *Renderer) areaScale() float64 {
	unit := strings.TrimSuffix(r.areaUnitLabel(), "²")
	f, err := units.Convert(1, r.doc.DefaultUnit, units.Unit(unit))
	if err != nil {
		return 1
	}
	return f * f
}

// ============================================================
// Formatting helpers
// ============================================================

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow10(digits)
	return math.Round(v*p) / p
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
