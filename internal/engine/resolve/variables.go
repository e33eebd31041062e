package resolve

import (
	"fmt"

	"floorplan-engine/internal/engine/model"
)

// ============================================================
// Variable Resolver
// ============================================================

// Variables собирает именованные размеры в map. Первое объявление
// выигрывает, повторные отклоняются с duplicate_definition.
func Variables(plan *model.Floorplan) (map[string]model.Size, []Error) {
	vars := make(map[string]model.Size, len(plan.Variables))
	var errs []Error

	for _, v := range plan.Variables {
		if _, ok := vars[v.Name]; ok {
			errs = append(errs, Error{
				Kind:    ErrDuplicateDefinition,
				Subject: v.Name,
				Message: fmt.Sprintf("variable %q is declared twice", v.Name),
			})
			continue
		}
		vars[v.Name] = v.Size
	}

	return vars, errs
}

// ValidateSizeReferences обходит все комнаты (включая вложенные)
// и сообщает undefined_variable для каждого sizeRef без объявления.
func ValidateSizeReferences(plan *model.Floorplan, vars map[string]model.Size) []Error {
	var errs []Error
	for _, fl := range plan.Floors {
		for i := range fl.Rooms {
			errs = validateRoomSizeRef(&fl.Rooms[i], vars, errs)
		}
	}
	return errs
}

func validateRoomSizeRef(room *model.Room, vars map[string]model.Size, errs []Error) []Error {
	if room.Size == nil && room.SizeRef != "" {
		if _, ok := vars[room.SizeRef]; !ok {
			errs = append(errs, Error{
				Kind:    ErrUndefinedVariable,
				Subject: room.Name,
				Message: fmt.Sprintf("room %q references undefined variable %q", room.Name, room.SizeRef),
			})
		}
	}
	for i := range room.SubRooms {
		errs = validateRoomSizeRef(&room.SubRooms[i], vars, errs)
	}
	return errs
}

// RoomSize возвращает inline-размер, иначе значение переменной,
// иначе ошибку. Вызывающий обязан провалидировать ссылки заранее.
func RoomSize(room *model.Room, vars map[string]model.Size) (model.Size, error) {
	if room.Size != nil {
		return *room.Size, nil
	}
	if room.SizeRef != "" {
		if size, ok := vars[room.SizeRef]; ok {
			return size, nil
		}
		return model.Size{}, fmt.Errorf("room %q: undefined variable %q", room.Name, room.SizeRef)
	}
	return model.Size{}, fmt.Errorf("room %q has no size", room.Name)
}

// DefaultUnit возвращает единицу измерения, объявленную в конфиге.
func DefaultUnit(cfg *model.Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.DefaultUnit
}
