package theme

import "github.com/go-mtrl/mtrl/pkg/core"

// ThemeData contains all theme configuration for a document.
type ThemeData struct {
	// Prefix is the class and custom property prefix. Defaults to
	// core.DefaultPrefix.
	Prefix string

	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Shape defines the corner radius scale.
	Shape ShapeScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// Component themes - optional, derived from ColorScheme if nil.
	ButtonTheme   *ButtonThemeData
	CardTheme     *CardThemeData
	ChipTheme     *ChipThemeData
	TooltipTheme  *TooltipThemeData
	SheetTheme    *SheetThemeData
	CheckboxTheme *CheckboxThemeData
	SwitchTheme   *SwitchThemeData
	BarTheme      *BarThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		Prefix:      core.DefaultPrefix,
		ColorScheme: LightColorScheme(),
		Shape:       DefaultShapeScheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		Prefix:      core.DefaultPrefix,
		ColorScheme: DarkColorScheme(),
		Shape:       DefaultShapeScheme(),
		Brightness:  BrightnessDark,
	}
}

// ForBrightness returns the default theme for b.
func ForBrightness(b Brightness) *ThemeData {
	if b == BrightnessDark {
		return DefaultDarkTheme()
	}
	return DefaultLightTheme()
}

// CopyWith returns a new ThemeData with the specified fields overridden.
func (t *ThemeData) CopyWith(colorScheme *ColorScheme, shape *ShapeScheme, brightness *Brightness) *ThemeData {
	result := *t
	if colorScheme != nil {
		result.ColorScheme = *colorScheme
	}
	if shape != nil {
		result.Shape = *shape
	}
	if brightness != nil {
		result.Brightness = *brightness
	}
	return &result
}

// ButtonThemeOf returns the button theme, deriving from ColorScheme if not set.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	return DefaultButtonTheme(t.ColorScheme, t.Shape)
}

// CardThemeOf returns the card theme, deriving from ColorScheme if not set.
func (t *ThemeData) CardThemeOf() CardThemeData {
	if t.CardTheme != nil {
		return *t.CardTheme
	}
	return DefaultCardTheme(t.ColorScheme, t.Shape)
}

// ChipThemeOf returns the chip theme, deriving from ColorScheme if not set.
func (t *ThemeData) ChipThemeOf() ChipThemeData {
	if t.ChipTheme != nil {
		return *t.ChipTheme
	}
	return DefaultChipTheme(t.ColorScheme, t.Shape)
}

// TooltipThemeOf returns the tooltip theme, deriving from ColorScheme if not set.
func (t *ThemeData) TooltipThemeOf() TooltipThemeData {
	if t.TooltipTheme != nil {
		return *t.TooltipTheme
	}
	return DefaultTooltipTheme(t.ColorScheme, t.Shape)
}

// SheetThemeOf returns the sheet theme, deriving from ColorScheme if not set.
func (t *ThemeData) SheetThemeOf() SheetThemeData {
	if t.SheetTheme != nil {
		return *t.SheetTheme
	}
	return DefaultSheetTheme(t.ColorScheme, t.Shape)
}

// CheckboxThemeOf returns the checkbox theme, deriving from ColorScheme if not set.
func (t *ThemeData) CheckboxThemeOf() CheckboxThemeData {
	if t.CheckboxTheme != nil {
		return *t.CheckboxTheme
	}
	return DefaultCheckboxTheme(t.ColorScheme, t.Shape)
}

// SwitchThemeOf returns the switch theme, deriving from ColorScheme if not set.
func (t *ThemeData) SwitchThemeOf() SwitchThemeData {
	if t.SwitchTheme != nil {
		return *t.SwitchTheme
	}
	return DefaultSwitchTheme(t.ColorScheme)
}

// BarThemeOf returns the app bar and navigation theme, deriving from
// ColorScheme if not set.
func (t *ThemeData) BarThemeOf() BarThemeData {
	if t.BarTheme != nil {
		return *t.BarTheme
	}
	return DefaultBarTheme(t.ColorScheme)
}
