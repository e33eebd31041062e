package model

// ============================================================
// Stairs
// ============================================================

// StairShape — тег варианта формы лестницы. Геометрия каждого
// варианта считается отдельной функцией по этому тегу.
type StairShape string

const (
	StairStraight StairShape = "straight"
	StairL        StairShape = "l-shaped"
	StairU        StairShape = "u-shaped"
	StairDoubleL  StairShape = "double-l"
	StairSpiral   StairShape = "spiral"
	StairCurved   StairShape = "curved"
	StairWinder   StairShape = "winder"
	StairCustom   StairShape = "custom"
)

type SegmentKind string

const (
	SegmentFlight SegmentKind = "flight"
	SegmentTurn   SegmentKind = "turn"
)

// StairSegment — элемент кастомной лестницы: марш из N ступеней
// либо поворот влево/вправо.
type StairSegment struct {
	Kind      SegmentKind `json:"kind"`
	Steps     int         `json:"steps,omitempty"`
	Direction string      `json:"direction,omitempty"` // left | right
}

type Stair struct {
	Name     string     `json:"name"`
	Position *Point     `json:"position,omitempty"`
	Shape    StairShape `json:"shape"`
	Rise     Dimension  `json:"rise"`

	Width    *Dimension `json:"width,omitempty"`
	Riser    *Dimension `json:"riser,omitempty"`
	Tread    *Dimension `json:"tread,omitempty"`
	Nosing   *Dimension `json:"nosing,omitempty"`
	Headroom *Dimension `json:"headroom,omitempty"`
	Handrail string     `json:"handrail,omitempty"` // left | right | both | none
	Stringer string     `json:"stringer,omitempty"`
	Material string     `json:"material,omitempty"`
	Label    string     `json:"label,omitempty"`
	StyleRef string     `json:"style,omitempty"`

	// Поля вариантов. Какие из них значимы — определяет Shape.
	Entry    string         `json:"entry,omitempty"` // top | right | bottom | left
	Turn     string         `json:"turn,omitempty"`  // left | right
	Run1     int            `json:"run1,omitempty"`
	Run2     int            `json:"run2,omitempty"`
	Run3     int            `json:"run3,omitempty"`
	Landing  *Dimension     `json:"landing,omitempty"`
	Radius   *Dimension     `json:"radius,omitempty"`
	Arc      *float64       `json:"arc,omitempty"` // градусы, для curved
	Winders  int            `json:"winders,omitempty"`
	Segments []StairSegment `json:"segments,omitempty"`
}
