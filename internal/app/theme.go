package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// EstimatorTheme provides a custom theme for the application.
type EstimatorTheme struct{}

var _ fyne.Theme = (*EstimatorTheme)(nil)

func (t *EstimatorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x00, G: 0x6E, B: 0x8A, A: 0xFF} // Glass blue
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0xFF, G: 0xAA, B: 0x00, A: 0x80} // Amber, matches calibration stroke
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *EstimatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *EstimatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *EstimatorTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
