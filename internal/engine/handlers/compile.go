package handlers

import (
	"encoding/json"
	"log"

	"floorplan-engine/internal/engine/convert"
	"floorplan-engine/internal/engine/model"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Compile Handler
// ============================================================

// Compile разрешает план и возвращает JSON-модель вместе со
// списками ошибок и предупреждений. Ошибки отдельных комнат не
// делают ответ пятисотым: разрешилось все, что могло.
func Compile(c fiber.Ctx) error {
	log.Printf("[ENGINE] Compile request, body: %d bytes", len(c.Body()))

	plan, err := decodePlan(c)
	if err != nil {
		return err
	}

	doc := convert.Compile(plan)
	log.Printf("[ENGINE] Compiled %d floor(s), %d error(s), %d warning(s)",
		len(doc.Floors), len(doc.Errors), len(doc.Warnings))

	return c.JSON(fiber.Map{
		"floorplan": convert.BuildExport(doc),
		"errors":    doc.Errors,
		"warnings":  doc.Warnings,
	})
}

// decodePlan разбирает тело запроса. Ошибки разбора доходят до
// клиента через общий error handler приложения.
func decodePlan(c fiber.Ctx) (*model.Floorplan, error) {
	if len(c.Body()) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "body required")
	}

	var plan model.Floorplan
	if err := json.Unmarshal(c.Body(), &plan); err != nil {
		log.Printf("[ENGINE] Decode error: %v", err)
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid JSON payload")
	}
	return &plan, nil
}
