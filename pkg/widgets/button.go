package widgets

import (
	"github.com/go-mtrl/mtrl/pkg/compose"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
)

// ButtonVariant selects the button emphasis.
type ButtonVariant string

const (
	ButtonFilled   ButtonVariant = "filled"
	ButtonElevated ButtonVariant = "elevated"
	ButtonTonal    ButtonVariant = "tonal"
	ButtonOutlined ButtonVariant = "outlined"
	ButtonText     ButtonVariant = "text"
)

// ButtonSize selects the button size.
type ButtonSize string

const (
	ButtonSmall  ButtonSize = "small"
	ButtonMedium ButtonSize = "medium"
	ButtonLarge  ButtonSize = "large"
)

// ButtonConfig configures NewButton.
type ButtonConfig struct {
	// Document owns the button. Defaults to dom.Default().
	Document *dom.Document
	// Prefix overrides the class prefix.
	Prefix string
	// Variant defaults to ButtonFilled.
	Variant ButtonVariant
	Size    ButtonSize
	Text    string
	// Icon is an HTML snippet shown before the text unless IconPosition is
	// core.IconEnd.
	Icon         string
	IconPosition core.IconPosition
	// Type is the button type attribute. Defaults to "button".
	Type      string
	Name      string
	Value     string
	AriaLabel string
	Disabled  bool
	// NoRipple turns off press feedback.
	NoRipple bool
	// Class holds extra space separated classes.
	Class string
}

var buttonDefaults = ButtonConfig{Variant: ButtonFilled, Type: "button"}

// Button is a Material button.
type Button struct {
	base
}

// NewButton creates a button.
func NewButton(cfg ButtonConfig) (*Button, error) {
	return create("button", func() (*Button, error) {
		cfg = withDefaults(cfg, buttonDefaults)
		c := compose.Pipe(
			core.WithEvents(),
			core.WithElement(core.ElementOptions{
				Tag:     "button",
				Classes: classes(cfg.Class),
				Attrs: map[string]string{
					"type":       cfg.Type,
					"name":       cfg.Name,
					"value":      cfg.Value,
					"aria-label": cfg.AriaLabel,
				},
				Interactive:   true,
				ForwardEvents: map[string]core.ForwardPredicate{EventClick: whenEnabled, "focus": nil, "blur": nil},
			}),
			core.WithVariant(cfg.Variant),
			core.WithSize(cfg.Size),
			core.WithText(core.TextConfig{Text: cfg.Text}),
			core.WithIcon(core.IconConfig{Icon: cfg.Icon, Position: cfg.IconPosition}),
			core.WithDisabled(cfg.Disabled),
			core.WithRipple(core.RippleConfig{Enabled: !cfg.NoRipple}),
			core.WithLifecycle(),
		)(newBase("button", cfg.Prefix, cfg.Document))

		b := &Button{base{c}}
		b.syncIconOnly()
		c.Log.Debug().Str("variant", string(cfg.Variant)).Msg("button created")
		return b, nil
	})
}

func (b *Button) syncIconOnly() {
	b.c.Element.ToggleClass(b.c.Modifier("icon"), b.c.Icon.Get() != "" && b.c.Text.Get() == "")
}

// SetText replaces the label.
func (b *Button) SetText(text string) *Button {
	b.c.Text.Set(text)
	b.syncIconOnly()
	return b
}

// Text returns the label.
func (b *Button) Text() string { return b.c.Text.Get() }

// SetIcon replaces the icon markup.
func (b *Button) SetIcon(icon string) *Button {
	b.c.Icon.Set(icon)
	b.syncIconOnly()
	return b
}

// Icon returns the icon markup.
func (b *Button) Icon() string { return b.c.Icon.Get() }

// Enable enables the button.
func (b *Button) Enable() *Button {
	b.c.Disabled.Enable()
	return b
}

// Disable disables the button.
func (b *Button) Disable() *Button {
	b.c.Disabled.Disable()
	return b
}

// IsDisabled reports whether the button is disabled.
func (b *Button) IsDisabled() bool { return b.c.Disabled.IsDisabled() }

// Focus moves focus to the button.
func (b *Button) Focus() *Button {
	b.c.Element.Focus()
	return b
}
