package resolve

import "floorplan-engine/internal/engine/model"

// ============================================================
// Style / Theme Resolver
// ============================================================

// Встроенный стиль: серый пол, черные стены.
var builtinStyle = model.Style{
	Name:       "default",
	FloorColor: "#CCCCCC",
	WallColor:  "#000000",
}

// StyleFor — цепочка фолбэков: явная ссылка комнаты → дефолтный
// стиль из конфига → встроенный стиль.
func StyleFor(ref string, plan *model.Floorplan) model.Style {
	if ref != "" {
		if st, ok := findStyle(ref, plan.Styles); ok {
			return st
		}
	}
	if plan.Config != nil && plan.Config.DefaultStyle != "" {
		if st, ok := findStyle(plan.Config.DefaultStyle, plan.Styles); ok {
			return st
		}
	}
	return builtinStyle
}

func findStyle(name string, styles []model.Style) (model.Style, bool) {
	for _, st := range styles {
		if st.Name == name {
			return st, true
		}
	}
	return model.Style{}, false
}

// ============================================================
// Themes
// ============================================================

// Theme — палитра рендеринга, отдельная от по-комнатных стилей.
type Theme struct {
	Name       string
	Background string
	Surface    string
	Stroke     string
	FontFamily string
	FontColor  string
	FontSize   float64
}

var themes = map[string]Theme{
	"light": {
		Name:       "light",
		Background: "#FFFFFF",
		Surface:    "#F5F5F5",
		Stroke:     "#000000",
		FontFamily: "sans-serif",
		FontColor:  "#1A1A1A",
		FontSize:   12,
	},
	"dark": {
		Name:       "dark",
		Background: "#1E1E1E",
		Surface:    "#2B2B2B",
		Stroke:     "#E0E0E0",
		FontFamily: "sans-serif",
		FontColor:  "#E8E8E8",
		FontSize:   12,
	},
}

// ThemeFor разрешает именованную тему или dark-mode флаг в палитру.
// Явно заданные свойства (шрифт, цвет) перекрывают значения темы.
func ThemeFor(cfg *model.Config) Theme {
	theme := themes["light"]

	if cfg != nil {
		if cfg.Theme != "" {
			if t, ok := themes[cfg.Theme]; ok {
				theme = t
			}
		} else if cfg.DarkMode != nil && *cfg.DarkMode {
			theme = themes["dark"]
		}

		if cfg.FontFamily != "" {
			theme.FontFamily = cfg.FontFamily
		}
		if cfg.FontColor != "" {
			theme.FontColor = cfg.FontColor
		}
		if cfg.FontSize != nil && *cfg.FontSize > 0 {
			theme.FontSize = *cfg.FontSize
		}
	}

	return theme
}
