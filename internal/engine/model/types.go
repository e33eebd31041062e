package model

// ============================================================
// Geometry primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dimension — длина с опциональной единицей измерения.
// Пустой Unit означает единицу по умолчанию из конфига.
type Dimension struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

type Size struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
}

// ============================================================
// Walls
// ============================================================

type WallDirection string

const (
	WallTop    WallDirection = "top"
	WallRight  WallDirection = "right"
	WallBottom WallDirection = "bottom"
	WallLeft   WallDirection = "left"
)

// WallDirections — порядок обхода стен при рендеринге и экспорте.
var WallDirections = []WallDirection{WallTop, WallRight, WallBottom, WallLeft}

type WallKind string

const (
	WallSolid  WallKind = "solid"
	WallDoor   WallKind = "door"
	WallWindow WallKind = "window"
	WallOpen   WallKind = "open"
)

// WallSpec описывает одну стену комнаты: тип, позиция проема
// в процентах вдоль стены и переопределенный размер проема.
type WallSpec struct {
	Kind     WallKind `json:"kind,omitempty"`
	Position *float64 `json:"position,omitempty"`
	Size     *Size    `json:"size,omitempty"`
}

type Walls struct {
	Top    WallSpec `json:"top,omitempty"`
	Right  WallSpec `json:"right,omitempty"`
	Bottom WallSpec `json:"bottom,omitempty"`
	Left   WallSpec `json:"left,omitempty"`
}

// Side возвращает спецификацию стены по направлению.
func (w Walls) Side(dir WallDirection) WallSpec {
	switch dir {
	case WallTop:
		return w.Top
	case WallRight:
		return w.Right
	case WallBottom:
		return w.Bottom
	case WallLeft:
		return w.Left
	}
	return WallSpec{}
}

// ============================================================
// Relative placement
// ============================================================

type RelDirection string

const (
	RightOf    RelDirection = "right-of"
	LeftOf     RelDirection = "left-of"
	Above      RelDirection = "above"
	Below      RelDirection = "below"
	AboveLeft  RelDirection = "above-left"
	AboveRight RelDirection = "above-right"
	BelowLeft  RelDirection = "below-left"
	BelowRight RelDirection = "below-right"
)

// RelativePosition — размещение комнаты относительно другой комнаты.
type RelativePosition struct {
	Direction RelDirection `json:"direction"`
	Reference string       `json:"reference"`
	Gap       *Dimension   `json:"gap,omitempty"`
	Align     string       `json:"align,omitempty"` // top | bottom | center | left | right
}

// ============================================================
// Floorplan tree
// ============================================================

type Floorplan struct {
	Version             string               `json:"version,omitempty"`
	Floors              []Floor              `json:"floors"`
	Connections         []Connection         `json:"connections,omitempty"`
	VerticalConnections []VerticalConnection `json:"verticalConnections,omitempty"`
	Variables           []Variable           `json:"variables,omitempty"`
	Styles              []Style              `json:"styles,omitempty"`
	Config              *Config              `json:"config,omitempty"`
}

type Floor struct {
	ID     string     `json:"id"`
	Rooms  []Room     `json:"rooms,omitempty"`
	Stairs []Stair    `json:"stairs,omitempty"`
	Lifts  []Lift     `json:"lifts,omitempty"`
	Height *Dimension `json:"height,omitempty"`
}

type Room struct {
	Name      string            `json:"name"`
	Label     string            `json:"label,omitempty"`
	Position  *Point            `json:"position,omitempty"`
	Relative  *RelativePosition `json:"relative,omitempty"`
	Size      *Size             `json:"size,omitempty"`
	SizeRef   string            `json:"sizeRef,omitempty"`
	Walls     Walls             `json:"walls,omitempty"`
	SubRooms  []Room            `json:"subRooms,omitempty"`
	Height    *Dimension        `json:"height,omitempty"`
	Elevation *Dimension        `json:"elevation,omitempty"`
	StyleRef  string            `json:"style,omitempty"`
}

// ============================================================
// Connections
// ============================================================

type DoorKind string

const (
	DoorSingle  DoorKind = "door"
	DoorDouble  DoorKind = "double-door"
	DoorOpening DoorKind = "opening"
)

// Endpoint — сторона соединения. Пустая стена выводится из смежности комнат.
type Endpoint struct {
	Room string        `json:"room"`
	Wall WallDirection `json:"wall,omitempty"`
}

type Connection struct {
	From       Endpoint   `json:"from"`
	To         Endpoint   `json:"to"`
	Kind       DoorKind   `json:"kind"`
	Position   *float64   `json:"position,omitempty"` // процент вдоль общего сегмента
	Swing      string     `json:"swing,omitempty"`    // left | right
	OpensInto  string     `json:"opensInto,omitempty"`
	Width      *Dimension `json:"width,omitempty"`
	Height     *Dimension `json:"height,omitempty"`
	FullHeight bool       `json:"fullHeight,omitempty"`
}

// VerticalConnection связывает лестницы/лифты между этажами.
type VerticalConnection struct {
	Links []FloorRef `json:"links"`
}

type FloorRef struct {
	Floor   string `json:"floor"`
	Element string `json:"element"`
}

// ============================================================
// Lifts
// ============================================================

type Lift struct {
	Name     string          `json:"name"`
	Position *Point          `json:"position,omitempty"`
	Size     *Size           `json:"size,omitempty"`
	Doors    []WallDirection `json:"doors,omitempty"`
	Label    string          `json:"label,omitempty"`
	StyleRef string          `json:"style,omitempty"`
}

// ============================================================
// Variables, styles, config
// ============================================================

type Variable struct {
	Name string `json:"name"`
	Size Size   `json:"size"`
}

type Style struct {
	Name         string   `json:"name"`
	FloorColor   string   `json:"floorColor,omitempty"`
	WallColor    string   `json:"wallColor,omitempty"`
	FloorTexture string   `json:"floorTexture,omitempty"`
	WallTexture  string   `json:"wallTexture,omitempty"`
	Roughness    *float64 `json:"roughness,omitempty"`
	Metalness    *float64 `json:"metalness,omitempty"`
}

// Config — плоские настройки документа.
type Config struct {
	WallThickness *Dimension `json:"wallThickness,omitempty"`
	DoorWidth     *Dimension `json:"doorWidth,omitempty"`
	DoorHeight    *Dimension `json:"doorHeight,omitempty"`
	WindowWidth   *Dimension `json:"windowWidth,omitempty"`
	WindowHeight  *Dimension `json:"windowHeight,omitempty"`
	DefaultUnit   string     `json:"defaultUnit,omitempty"`
	AreaUnit      string     `json:"areaUnit,omitempty"`
	DefaultStyle  string     `json:"defaultStyle,omitempty"`
	Theme         string     `json:"theme,omitempty"`
	DarkMode      *bool      `json:"darkMode,omitempty"`
	FontFamily    string     `json:"fontFamily,omitempty"`
	FontSize      *float64   `json:"fontSize,omitempty"`
	FontColor     string     `json:"fontColor,omitempty"`
	ShowAreas     *bool      `json:"showAreas,omitempty"`
	ShowDims      *bool      `json:"showDimensions,omitempty"`
	ShowSummary   *bool      `json:"showSummary,omitempty"`
	BuildingCode  string     `json:"buildingCode,omitempty"`
}
