package resolve

import (
	"testing"

	"floorplan-engine/internal/engine/model"

	"github.com/stretchr/testify/assert"
)

func TestStyleForFallbackChain(t *testing.T) {
	plan := &model.Floorplan{
		Styles: []model.Style{
			{Name: "wood", FloorColor: "#8B5A2B", WallColor: "#4A3220"},
			{Name: "tile", FloorColor: "#E8E8E8", WallColor: "#888888"},
		},
		Config: &model.Config{DefaultStyle: "tile"},
	}

	// Явная ссылка комнаты.
	assert.Equal(t, "#8B5A2B", StyleFor("wood", plan).FloorColor)

	// Несуществующая ссылка падает на дефолт из конфига.
	assert.Equal(t, "#E8E8E8", StyleFor("marble", plan).FloorColor)
	assert.Equal(t, "#E8E8E8", StyleFor("", plan).FloorColor)

	// Без конфига — встроенный стиль.
	bare := &model.Floorplan{}
	st := StyleFor("", bare)
	assert.Equal(t, "#CCCCCC", st.FloorColor)
	assert.Equal(t, "#000000", st.WallColor)
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, "light", ThemeFor(nil).Name)
	assert.Equal(t, "dark", ThemeFor(&model.Config{Theme: "dark"}).Name)

	// Dark-mode флаг работает только без именованной темы.
	darkMode := true
	assert.Equal(t, "dark", ThemeFor(&model.Config{DarkMode: &darkMode}).Name)
	assert.Equal(t, "light", ThemeFor(&model.Config{Theme: "light", DarkMode: &darkMode}).Name)

	// Неизвестная тема откатывается к light.
	assert.Equal(t, "light", ThemeFor(&model.Config{Theme: "neon"}).Name)
}

func TestThemeOverrides(t *testing.T) {
	size := 16.0
	theme := ThemeFor(&model.Config{
		Theme:      "dark",
		FontFamily: "monospace",
		FontColor:  "#FF0000",
		FontSize:   &size,
	})

	assert.Equal(t, "monospace", theme.FontFamily)
	assert.Equal(t, "#FF0000", theme.FontColor)
	assert.Equal(t, 16.0, theme.FontSize)
	// Палитра остается от темы.
	assert.Equal(t, "#1E1E1E", theme.Background)
}
