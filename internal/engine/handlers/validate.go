package handlers

import (
	"log"

	"floorplan-engine/internal/engine/convert"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Validate Handler
// ============================================================

// Validate прогоняет план через все резолверы и возвращает только
// диагностику, без геометрии.
func Validate(c fiber.Ctx) error {
	log.Printf("[ENGINE] Validate request, body: %d bytes", len(c.Body()))

	plan, err := decodePlan(c)
	if err != nil {
		return err
	}

	doc := convert.Compile(plan)

	return c.JSON(fiber.Map{
		"valid":    len(doc.Errors) == 0,
		"errors":   doc.Errors,
		"warnings": doc.Warnings,
	})
}
