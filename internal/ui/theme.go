package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/pdftoolkit/pdf-toolkit/internal/config"
)

// ToolkitTheme is a compact theme that can pin the light or dark variant
type ToolkitTheme struct {
	variant config.ThemeVariant
}

// NewToolkitTheme creates a theme for the given variant
func NewToolkitTheme(variant config.ThemeVariant) fyne.Theme {
	return &ToolkitTheme{variant: variant}
}

// Variant returns the configured variant
func (t *ToolkitTheme) Variant() config.ThemeVariant {
	return t.variant
}

// resolve replaces the system variant when the user picked one explicitly
func (t *ToolkitTheme) resolve(system fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.variant {
	case config.ThemeLight:
		return theme.VariantLight
	case config.ThemeDark:
		return theme.VariantDark
	default:
		return system
	}
}

// Color returns theme colors
func (t *ToolkitTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.resolve(variant)

	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 211, G: 47, B: 47, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 220, G: 38, B: 38, A: 255} // PDF red
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 24, B: 27, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 244, G: 244, B: 245, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ToolkitTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ToolkitTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *ToolkitTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// nextThemeVariant cycles system → light → dark → system
func nextThemeVariant(v config.ThemeVariant) config.ThemeVariant {
	switch v {
	case config.ThemeSystem:
		return config.ThemeLight
	case config.ThemeLight:
		return config.ThemeDark
	default:
		return config.ThemeSystem
	}
}

// themeIcon returns the toggle label for a variant
func themeIcon(v config.ThemeVariant) string {
	switch v {
	case config.ThemeLight:
		return IconSun
	case config.ThemeDark:
		return IconMoon
	default:
		return IconAuto
	}
}
