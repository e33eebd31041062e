package handlers

import (
	"log"
	"strconv"

	"floorplan-engine/internal/engine/convert"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Render Handler
// ============================================================

// Render разрешает план и отдает SVG. Настройки рендеринга
// приходят query-параметрами и перекрывают display-тогглы конфига.
func Render(c fiber.Ctx) error {
	log.Printf("[ENGINE] Render request, body: %d bytes", len(c.Body()))

	plan, err := decodePlan(c)
	if err != nil {
		return err
	}

	doc := convert.Compile(plan)

	opts := convert.RenderOptions{
		Floor:          c.Query("floor"),
		Layout:         c.Query("layout"),
		Scale:          queryFloat(c, "scale"),
		Padding:        queryFloat(c, "padding"),
		AreaUnit:       c.Query("areaUnit"),
		LengthUnit:     c.Query("lengthUnit"),
		ShowAreas:      queryBool(c, "areas"),
		ShowDimensions: queryBool(c, "dimensions"),
		ShowSummary:    queryBool(c, "summary"),
		IncludeStyles:  c.Query("styles") != "false",
	}

	svg, err := convert.NewRenderer(doc, opts).Render()
	if err != nil {
		log.Printf("[ENGINE] Render error: %v", err)
		return c.Status(400).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Printf("[ENGINE] Rendered %d bytes of SVG", len(svg))
	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}

func queryFloat(c fiber.Ctx, key string) float64 {
	if v := c.Query(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

func queryBool(c fiber.Ctx, key string) bool {
	return c.Query(key) == "true"
}
