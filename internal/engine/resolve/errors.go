package resolve

import "fmt"

// ============================================================
// Resolution errors & advisory warnings
// ============================================================

// Две степени тяжести: Error — модель не разрешается полностью,
// Warning — модель разрешилась, но что-то выглядит подозрительно.
// Ошибки одной комнаты не блокируют разрешение остальных.

type ErrorKind string

const (
	ErrNoPosition          ErrorKind = "no_position"
	ErrMissingReference    ErrorKind = "missing_reference"
	ErrCircularDependency  ErrorKind = "circular_dependency"
	ErrUndefinedVariable   ErrorKind = "undefined_variable"
	ErrDuplicateDefinition ErrorKind = "duplicate_definition"
)

type Error struct {
	Kind    ErrorKind `json:"kind"`
	Subject string    `json:"subject"` // имя комнаты/элемента
	Message string    `json:"message"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

type WarningKind string

const (
	WarnOverlap        WarningKind = "room_overlap"
	WarnConnectionWall WarningKind = "connection_wall_type"
	WarnWallMismatch   WarningKind = "wall_type_mismatch"
	WarnConnectionSize WarningKind = "connection_size"
	WarnBuildingCode   WarningKind = "building_code"
	WarnVertical       WarningKind = "vertical_connection"
	WarnVersion        WarningKind = "version"
)

type Warning struct {
	Kind    WarningKind `json:"kind"`
	Subject string      `json:"subject,omitempty"`
	Message string      `json:"message"`
}
