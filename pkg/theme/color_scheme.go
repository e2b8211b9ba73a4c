package theme

// Brightness is the overall lightness of a theme.
type Brightness string

const (
	BrightnessLight Brightness = "light"
	BrightnessDark  Brightness = "dark"
)

// ColorScheme holds the Material 3 system color roles.
type ColorScheme struct {
	Primary            Color
	OnPrimary          Color
	PrimaryContainer   Color
	OnPrimaryContainer Color

	Secondary            Color
	OnSecondary          Color
	SecondaryContainer   Color
	OnSecondaryContainer Color

	Tertiary   Color
	OnTertiary Color

	Error   Color
	OnError Color

	Background   Color
	OnBackground Color

	Surface                 Color
	OnSurface               Color
	SurfaceVariant          Color
	OnSurfaceVariant        Color
	SurfaceContainer        Color
	SurfaceContainerHigh    Color
	SurfaceContainerHighest Color

	InverseSurface   Color
	InverseOnSurface Color

	Outline        Color
	OutlineVariant Color
	Shadow         Color
	Scrim          Color
}

// LightColorScheme returns the baseline light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:            Hex(0x6750a4),
		OnPrimary:          Hex(0xffffff),
		PrimaryContainer:   Hex(0xeaddff),
		OnPrimaryContainer: Hex(0x21005d),

		Secondary:            Hex(0x625b71),
		OnSecondary:          Hex(0xffffff),
		SecondaryContainer:   Hex(0xe8def8),
		OnSecondaryContainer: Hex(0x1d192b),

		Tertiary:   Hex(0x7d5260),
		OnTertiary: Hex(0xffffff),

		Error:   Hex(0xb3261e),
		OnError: Hex(0xffffff),

		Background:   Hex(0xfef7ff),
		OnBackground: Hex(0x1d1b20),

		Surface:                 Hex(0xfef7ff),
		OnSurface:               Hex(0x1d1b20),
		SurfaceVariant:          Hex(0xe7e0ec),
		OnSurfaceVariant:        Hex(0x49454f),
		SurfaceContainer:        Hex(0xf3edf7),
		SurfaceContainerHigh:    Hex(0xece6f0),
		SurfaceContainerHighest: Hex(0xe6e0e9),

		InverseSurface:   Hex(0x322f35),
		InverseOnSurface: Hex(0xf5eff7),

		Outline:        Hex(0x79747e),
		OutlineVariant: Hex(0xcac4d0),
		Shadow:         Hex(0x000000),
		Scrim:          Hex(0x000000),
	}
}

// DarkColorScheme returns the baseline dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:            Hex(0xd0bcff),
		OnPrimary:          Hex(0x381e72),
		PrimaryContainer:   Hex(0x4f378b),
		OnPrimaryContainer: Hex(0xeaddff),

		Secondary:            Hex(0xccc2dc),
		OnSecondary:          Hex(0x332d41),
		SecondaryContainer:   Hex(0x4a4458),
		OnSecondaryContainer: Hex(0xe8def8),

		Tertiary:   Hex(0xefb8c8),
		OnTertiary: Hex(0x492532),

		Error:   Hex(0xf2b8b5),
		OnError: Hex(0x601410),

		Background:   Hex(0x141218),
		OnBackground: Hex(0xe6e0e9),

		Surface:                 Hex(0x141218),
		OnSurface:               Hex(0xe6e0e9),
		SurfaceVariant:          Hex(0x49454f),
		OnSurfaceVariant:        Hex(0xcac4d0),
		SurfaceContainer:        Hex(0x211f26),
		SurfaceContainerHigh:    Hex(0x2b2930),
		SurfaceContainerHighest: Hex(0x36343b),

		InverseSurface:   Hex(0xe6e0e9),
		InverseOnSurface: Hex(0x322f35),

		Outline:        Hex(0x938f99),
		OutlineVariant: Hex(0x49454f),
		Shadow:         Hex(0x000000),
		Scrim:          Hex(0x000000),
	}
}

// roles lists the scheme colors in CSS order with their token names.
func (s ColorScheme) roles() []colorRole {
	return []colorRole{
		{"primary", s.Primary},
		{"on-primary", s.OnPrimary},
		{"primary-container", s.PrimaryContainer},
		{"on-primary-container", s.OnPrimaryContainer},
		{"secondary", s.Secondary},
		{"on-secondary", s.OnSecondary},
		{"secondary-container", s.SecondaryContainer},
		{"on-secondary-container", s.OnSecondaryContainer},
		{"tertiary", s.Tertiary},
		{"on-tertiary", s.OnTertiary},
		{"error", s.Error},
		{"on-error", s.OnError},
		{"background", s.Background},
		{"on-background", s.OnBackground},
		{"surface", s.Surface},
		{"on-surface", s.OnSurface},
		{"surface-variant", s.SurfaceVariant},
		{"on-surface-variant", s.OnSurfaceVariant},
		{"surface-container", s.SurfaceContainer},
		{"surface-container-high", s.SurfaceContainerHigh},
		{"surface-container-highest", s.SurfaceContainerHighest},
		{"inverse-surface", s.InverseSurface},
		{"inverse-on-surface", s.InverseOnSurface},
		{"outline", s.Outline},
		{"outline-variant", s.OutlineVariant},
		{"shadow", s.Shadow},
		{"scrim", s.Scrim},
	}
}

type colorRole struct {
	name  string
	color Color
}
