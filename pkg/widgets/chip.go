package widgets

import (
	"github.com/go-mtrl/mtrl/pkg/compose"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
)

// ChipVariant selects the chip type.
type ChipVariant string

const (
	ChipFilled     ChipVariant = "filled"
	ChipOutlined   ChipVariant = "outlined"
	ChipElevated   ChipVariant = "elevated"
	ChipAssist     ChipVariant = "assist"
	ChipFilter     ChipVariant = "filter"
	ChipInput      ChipVariant = "input"
	ChipSuggestion ChipVariant = "suggestion"
)

// ChipChangeDetail is the payload of a chip's EventChange.
type ChipChangeDetail struct {
	Selected bool
	Value    string
}

// ChipConfig configures NewChip.
type ChipConfig struct {
	Document *dom.Document
	Prefix   string
	// Variant defaults to ChipFilled.
	Variant ChipVariant
	Text    string
	// Icon is the leading icon markup.
	Icon string
	// TrailingIcon is shown after the text. Clicking it emits EventRemove.
	TrailingIcon string
	// Value identifies the chip in a chip set. Defaults to Text.
	Value    string
	Selected bool
	// Selectable makes clicks toggle the selection. Filter chips and chips
	// in a chip set are always selectable.
	Selectable bool
	Disabled   bool
	NoRipple   bool
	AriaLabel  string
	Class      string
}

var chipDefaults = ChipConfig{Variant: ChipFilled}

// Chip is a compact element representing an input, attribute or action.
type Chip struct {
	base
	value      string
	selected   bool
	selectable bool
	trailing   *dom.Element
}

// NewChip creates a chip.
func NewChip(cfg ChipConfig) (*Chip, error) {
	return create("chip", func() (*Chip, error) {
		cfg = withDefaults(cfg, chipDefaults)
		if cfg.Value == "" {
			cfg.Value = cfg.Text
		}
		tabindex := "0"
		if cfg.Disabled {
			tabindex = "-1"
		}

		c := compose.Pipe(
			core.WithEvents(),
			core.WithElement(core.ElementOptions{
				Classes: classes(cfg.Class),
				Attrs: map[string]string{
					"role":       "button",
					"tabindex":   tabindex,
					"aria-label": cfg.AriaLabel,
					"data-value": cfg.Value,
				},
				Interactive: true,
			}),
			core.WithVariant(cfg.Variant),
			core.WithText(core.TextConfig{Text: cfg.Text}),
			core.WithIcon(core.IconConfig{Icon: cfg.Icon, Part: "leading-icon"}),
			core.WithDisabled(cfg.Disabled),
			core.WithRipple(core.RippleConfig{Enabled: !cfg.NoRipple}),
			core.WithLifecycle(),
		)(newBase("chip", cfg.Prefix, cfg.Document))

		chip := &Chip{
			base:       base{c},
			value:      cfg.Value,
			selectable: cfg.Selectable || cfg.Variant == ChipFilter,
		}
		chip.SetTrailingIcon(cfg.TrailingIcon)
		chip.selected = !cfg.Selected
		chip.apply(cfg.Selected)

		c.Listen(c.Element, "click", func(ev *dom.Event) { chip.activate(ev) })
		c.Listen(c.Element, "keydown", func(ev *dom.Event) {
			switch {
			case isActivationKey(ev.Key):
				ev.PreventDefault()
				chip.activate(ev)
			case (ev.Key == "Backspace" || ev.Key == "Delete") && chip.trailing != nil:
				ev.PreventDefault()
				chip.remove()
			}
		})
		c.Log.Debug().Str("value", chip.value).Msg("chip created")
		return chip, nil
	})
}

func (chip *Chip) enabled() bool { return !chip.c.Disabled.IsDisabled() }

func (chip *Chip) activate(ev *dom.Event) {
	if !chip.enabled() {
		return
	}
	chip.c.Emit(EventClick, ev)
	if chip.selectable {
		chip.ToggleSelected()
	}
}

func (chip *Chip) remove() {
	if chip.enabled() {
		chip.c.Emit(EventRemove, chip)
	}
}

// apply reflects the selection into the DOM and reports whether it changed.
func (chip *Chip) apply(selected bool) bool {
	if chip.selected == selected {
		return false
	}
	chip.selected = selected
	chip.c.Element.ToggleClass(chip.c.Modifier("selected"), selected)
	chip.c.Element.SetAttribute("aria-selected", boolAttr(selected))
	return true
}

// SetSelected sets the selection. It emits EventChange when the state
// changes.
func (chip *Chip) SetSelected(selected bool) *Chip {
	if chip.apply(selected) {
		chip.c.Emit(EventChange, ChipChangeDetail{Selected: selected, Value: chip.value})
	}
	return chip
}

// ToggleSelected flips the selection.
func (chip *Chip) ToggleSelected() *Chip {
	return chip.SetSelected(!chip.selected)
}

// IsSelected reports whether the chip is selected.
func (chip *Chip) IsSelected() bool { return chip.selected }

// Value returns the chip value.
func (chip *Chip) Value() string { return chip.value }

// SetValue replaces the chip value.
func (chip *Chip) SetValue(value string) *Chip {
	chip.value = value
	chip.c.Element.SetAttribute("data-value", value)
	return chip
}

// SetText replaces the label.
func (chip *Chip) SetText(text string) *Chip {
	chip.c.Text.Set(text)
	return chip
}

// Text returns the label.
func (chip *Chip) Text() string { return chip.c.Text.Get() }

// SetIcon replaces the leading icon.
func (chip *Chip) SetIcon(icon string) *Chip {
	chip.c.Icon.Set(icon)
	return chip
}

// Icon returns the leading icon markup.
func (chip *Chip) Icon() string { return chip.c.Icon.Get() }

// SetTrailingIcon replaces the trailing icon. An empty icon removes it.
func (chip *Chip) SetTrailingIcon(icon string) *Chip {
	if icon == "" {
		if chip.trailing != nil {
			chip.trailing.Remove()
			chip.trailing = nil
		}
		chip.c.Element.RemoveClass(chip.c.Modifier("with-trailing-icon"))
		return chip
	}
	if chip.trailing == nil {
		chip.trailing = chip.c.CreateElement("span", chip.c.Part("trailing-icon"))
		chip.trailing.SetAttribute("role", "button").SetAttribute("aria-label", "Remove")
		chip.c.Listen(chip.trailing, "click", func(ev *dom.Event) {
			ev.StopPropagation()
			chip.remove()
		})
		chip.c.Element.AppendChild(chip.trailing)
	}
	if err := chip.trailing.SetInnerHTML(icon); err != nil {
		chip.trailing.SetText(icon)
	}
	chip.c.Element.AddClass(chip.c.Modifier("with-trailing-icon"))
	return chip
}

// TrailingIcon returns the trailing icon element, or nil.
func (chip *Chip) TrailingIcon() *dom.Element { return chip.trailing }

// Enable enables the chip.
func (chip *Chip) Enable() *Chip {
	chip.c.Disabled.Enable()
	chip.c.Element.SetAttribute("tabindex", "0")
	return chip
}

// Disable disables the chip.
func (chip *Chip) Disable() *Chip {
	chip.c.Disabled.Disable()
	chip.c.Element.SetAttribute("tabindex", "-1")
	return chip
}

// IsDisabled reports whether the chip is disabled.
func (chip *Chip) IsDisabled() bool { return chip.c.Disabled.IsDisabled() }

// Focus moves focus to the chip.
func (chip *Chip) Focus() *Chip {
	chip.c.Element.Focus()
	return chip
}
