package theme

// ShapeScheme holds the corner radius scale in pixels.
type ShapeScheme struct {
	ExtraSmall float64
	Small      float64
	Medium     float64
	Large      float64
	ExtraLarge float64
	Full       float64
}

// DefaultShapeScheme returns the Material 3 corner scale.
func DefaultShapeScheme() ShapeScheme {
	return ShapeScheme{ExtraSmall: 4, Small: 8, Medium: 12, Large: 16, ExtraLarge: 28, Full: 9999}
}

// ButtonThemeData defines default styling for buttons.
type ButtonThemeData struct {
	// ContainerColor is the filled button background.
	ContainerColor Color
	// LabelColor is the filled button text and icon color.
	LabelColor Color
	// OutlineColor is the outlined button border.
	OutlineColor Color
	// DisabledColor is applied to label and container when disabled.
	DisabledColor Color
	// BorderRadius is the default corner radius.
	BorderRadius float64
}

// CardThemeData defines default styling for cards.
type CardThemeData struct {
	ElevatedColor Color
	FilledColor   Color
	OutlineColor  Color
	BorderRadius  float64
}

// ChipThemeData defines default styling for chips.
type ChipThemeData struct {
	OutlineColor  Color
	SelectedColor Color
	LabelColor    Color
	BorderRadius  float64
}

// TooltipThemeData defines default styling for tooltips.
type TooltipThemeData struct {
	BackgroundColor Color
	TextColor       Color
	BorderRadius    float64
}

// SheetThemeData defines default styling for bottom and side sheets.
type SheetThemeData struct {
	BackgroundColor Color
	ScrimColor      Color
	HandleColor     Color
	BorderRadius    float64
}

// CheckboxThemeData defines default styling for checkboxes.
type CheckboxThemeData struct {
	// ActiveColor is the fill color when checked.
	ActiveColor Color
	// CheckColor is the checkmark color.
	CheckColor Color
	// BorderColor is the outline color when unchecked.
	BorderColor  Color
	BorderRadius float64
}

// SwitchThemeData defines default styling for switches.
type SwitchThemeData struct {
	// ActiveTrackColor is the track color when on.
	ActiveTrackColor Color
	// InactiveTrackColor is the track color when off.
	InactiveTrackColor Color
	// ThumbColor is the thumb fill color when on.
	ThumbColor Color
}

// BarThemeData defines default styling for app bars and navigation.
type BarThemeData struct {
	ContainerColor  Color
	ScrolledColor   Color
	ActiveIndicator Color
	ForegroundColor Color
	InactiveColor   Color
}

// DefaultButtonTheme creates a ButtonThemeData from a color scheme.
func DefaultButtonTheme(colors ColorScheme, shape ShapeScheme) ButtonThemeData {
	return ButtonThemeData{
		ContainerColor: colors.Primary,
		LabelColor:     colors.OnPrimary,
		OutlineColor:   colors.Outline,
		DisabledColor:  colors.OnSurface.WithAlpha(97),
		BorderRadius:   shape.Full,
	}
}

// DefaultCardTheme creates a CardThemeData from a color scheme.
func DefaultCardTheme(colors ColorScheme, shape ShapeScheme) CardThemeData {
	return CardThemeData{
		ElevatedColor: colors.SurfaceContainer,
		FilledColor:   colors.SurfaceContainerHighest,
		OutlineColor:  colors.OutlineVariant,
		BorderRadius:  shape.Medium,
	}
}

// DefaultChipTheme creates a ChipThemeData from a color scheme.
func DefaultChipTheme(colors ColorScheme, shape ShapeScheme) ChipThemeData {
	return ChipThemeData{
		OutlineColor:  colors.Outline,
		SelectedColor: colors.SecondaryContainer,
		LabelColor:    colors.OnSurfaceVariant,
		BorderRadius:  shape.Small,
	}
}

// DefaultTooltipTheme creates a TooltipThemeData from a color scheme.
func DefaultTooltipTheme(colors ColorScheme, shape ShapeScheme) TooltipThemeData {
	return TooltipThemeData{
		BackgroundColor: colors.InverseSurface,
		TextColor:       colors.InverseOnSurface,
		BorderRadius:    shape.ExtraSmall,
	}
}

// DefaultSheetTheme creates a SheetThemeData from a color scheme.
func DefaultSheetTheme(colors ColorScheme, shape ShapeScheme) SheetThemeData {
	return SheetThemeData{
		BackgroundColor: colors.SurfaceContainerHigh,
		ScrimColor:      colors.Scrim.WithAlpha(82),
		HandleColor:     colors.OnSurfaceVariant.WithAlpha(102),
		BorderRadius:    shape.ExtraLarge,
	}
}

// DefaultCheckboxTheme creates a CheckboxThemeData from a color scheme.
func DefaultCheckboxTheme(colors ColorScheme, shape ShapeScheme) CheckboxThemeData {
	return CheckboxThemeData{
		ActiveColor:  colors.Primary,
		CheckColor:   colors.OnPrimary,
		BorderColor:  colors.OnSurfaceVariant,
		BorderRadius: shape.ExtraSmall / 2,
	}
}

// DefaultSwitchTheme creates a SwitchThemeData from a color scheme.
func DefaultSwitchTheme(colors ColorScheme) SwitchThemeData {
	return SwitchThemeData{
		ActiveTrackColor:   colors.Primary,
		InactiveTrackColor: colors.SurfaceContainerHighest,
		ThumbColor:         colors.OnPrimary,
	}
}

// DefaultBarTheme creates a BarThemeData from a color scheme.
func DefaultBarTheme(colors ColorScheme) BarThemeData {
	return BarThemeData{
		ContainerColor:  colors.Surface,
		ScrolledColor:   colors.SurfaceContainer,
		ActiveIndicator: colors.SecondaryContainer,
		ForegroundColor: colors.OnSurface,
		InactiveColor:   colors.OnSurfaceVariant,
	}
}

func (b ButtonThemeData) tokens() []token {
	return []token{
		{"button-container-color", b.ContainerColor.CSS()},
		{"button-label-color", b.LabelColor.CSS()},
		{"button-outline-color", b.OutlineColor.CSS()},
		{"button-disabled-color", b.DisabledColor.CSS()},
		{"button-shape", px(b.BorderRadius)},
	}
}

func (c CardThemeData) tokens() []token {
	return []token{
		{"card-elevated-color", c.ElevatedColor.CSS()},
		{"card-filled-color", c.FilledColor.CSS()},
		{"card-outline-color", c.OutlineColor.CSS()},
		{"card-shape", px(c.BorderRadius)},
	}
}

func (c ChipThemeData) tokens() []token {
	return []token{
		{"chip-outline-color", c.OutlineColor.CSS()},
		{"chip-selected-color", c.SelectedColor.CSS()},
		{"chip-label-color", c.LabelColor.CSS()},
		{"chip-shape", px(c.BorderRadius)},
	}
}

func (t TooltipThemeData) tokens() []token {
	return []token{
		{"tooltip-container-color", t.BackgroundColor.CSS()},
		{"tooltip-text-color", t.TextColor.CSS()},
		{"tooltip-shape", px(t.BorderRadius)},
	}
}

func (s SheetThemeData) tokens() []token {
	return []token{
		{"sheet-container-color", s.BackgroundColor.CSS()},
		{"sheet-scrim-color", s.ScrimColor.CSS()},
		{"sheet-handle-color", s.HandleColor.CSS()},
		{"sheet-shape", px(s.BorderRadius)},
	}
}

func (c CheckboxThemeData) tokens() []token {
	return []token{
		{"checkbox-active-color", c.ActiveColor.CSS()},
		{"checkbox-check-color", c.CheckColor.CSS()},
		{"checkbox-border-color", c.BorderColor.CSS()},
		{"checkbox-shape", px(c.BorderRadius)},
	}
}

func (s SwitchThemeData) tokens() []token {
	return []token{
		{"switch-active-track-color", s.ActiveTrackColor.CSS()},
		{"switch-inactive-track-color", s.InactiveTrackColor.CSS()},
		{"switch-thumb-color", s.ThumbColor.CSS()},
	}
}

func (b BarThemeData) tokens() []token {
	return []token{
		{"bar-container-color", b.ContainerColor.CSS()},
		{"bar-scrolled-color", b.ScrolledColor.CSS()},
		{"bar-active-indicator-color", b.ActiveIndicator.CSS()},
		{"bar-foreground-color", b.ForegroundColor.CSS()},
		{"bar-inactive-color", b.InactiveColor.CSS()},
	}
}
