package widgets

import (
	"github.com/go-mtrl/mtrl/pkg/compose"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
)

// CheckboxConfig configures NewCheckbox.
type CheckboxConfig struct {
	Document *dom.Document
	Prefix   string
	Label    string
	Name     string
	// Value is submitted with the form. Defaults to "on".
	Value         string
	Checked       bool
	Indeterminate bool
	Required      bool
	Disabled      bool
	AriaLabel     string
	Class         string
}

var checkboxDefaults = CheckboxConfig{Value: "on"}

// checkControlConfig is what checkboxes and switches have in common.
type checkControlConfig struct {
	name      string
	prefix    string
	doc       *dom.Document
	label     string
	input     core.InputConfig
	disabled  bool
	className string
}

// newCheckControl assembles a label wrapping a native checkbox input. The
// label text follows the input.
func newCheckControl(cfg checkControlConfig) *core.InputComponent {
	ic := compose.Then(
		compose.Then(
			compose.Pipe(
				core.WithEvents(),
				core.WithElement(core.ElementOptions{Tag: "label", Classes: classes(cfg.className)}),
			),
			core.WithInput(cfg.input),
		),
		compose.Pipe(
			core.WithCheckable(cfg.input.Checked),
			core.Stage(core.WithText(core.TextConfig{Text: cfg.label, Part: "label"})),
			core.Stage(core.WithDisabled(cfg.disabled)),
			core.Stage(core.WithLifecycle()),
		),
	)(newBase(cfg.name, cfg.prefix, cfg.doc))

	ic.Listen(ic.Element, "click", func(*dom.Event) {
		if !ic.Disabled.IsDisabled() {
			ic.Checkable.Toggle()
		}
	})
	ic.Listen(ic.Element, "keydown", func(ev *dom.Event) {
		if ev.Key != " " && ev.Key != "Spacebar" {
			return
		}
		ev.PreventDefault()
		if !ic.Disabled.IsDisabled() {
			ic.Checkable.Toggle()
		}
	})
	return ic
}

// Checkbox is a labelled checkbox with an optional indeterminate state.
type Checkbox struct {
	base
	ic            *core.InputComponent
	indeterminate bool
}

// NewCheckbox creates a checkbox.
func NewCheckbox(cfg CheckboxConfig) (*Checkbox, error) {
	return create("checkbox", func() (*Checkbox, error) {
		cfg = withDefaults(cfg, checkboxDefaults)
		ic := newCheckControl(checkControlConfig{
			name:   "checkbox",
			prefix: cfg.Prefix,
			doc:    cfg.Document,
			label:  cfg.Label,
			input: core.InputConfig{
				Name:      cfg.Name,
				Value:     cfg.Value,
				Checked:   cfg.Checked,
				Required:  cfg.Required,
				AriaLabel: cfg.AriaLabel,
			},
			disabled:  cfg.Disabled,
			className: cfg.Class,
		})
		icon := ic.CreateElement("span", ic.Part("icon"))
		icon.SetAttribute("aria-hidden", "true")
		ic.Element.InsertAfter(icon, ic.Input)

		cb := &Checkbox{base: base{ic.Component}, ic: ic}
		cb.SetIndeterminate(cfg.Indeterminate)
		ic.On(EventChange, func(any) { cb.SetIndeterminate(false) })
		ic.Log.Debug().Str("name", cfg.Name).Bool("checked", cfg.Checked).Msg("checkbox created")
		return cb, nil
	})
}

// Check checks the box, clearing the indeterminate state.
func (cb *Checkbox) Check() *Checkbox {
	cb.SetIndeterminate(false)
	cb.ic.Checkable.Check()
	return cb
}

// Uncheck clears the box and the indeterminate state.
func (cb *Checkbox) Uncheck() *Checkbox {
	cb.SetIndeterminate(false)
	cb.ic.Checkable.Uncheck()
	return cb
}

// Toggle flips the checked state.
func (cb *Checkbox) Toggle() *Checkbox {
	cb.ic.Checkable.Toggle()
	return cb
}

// IsChecked reports the checked state.
func (cb *Checkbox) IsChecked() bool { return cb.ic.Checkable.IsChecked() }

// SetIndeterminate shows the mixed state. Any change of the checked state
// clears it.
func (cb *Checkbox) SetIndeterminate(on bool) *Checkbox {
	cb.indeterminate = on
	cb.c.Element.ToggleClass(cb.c.Modifier("indeterminate"), on)
	if on {
		cb.ic.Input.SetAttribute("aria-checked", "mixed")
	} else {
		cb.ic.Input.RemoveAttribute("aria-checked")
	}
	return cb
}

// IsIndeterminate reports the mixed state.
func (cb *Checkbox) IsIndeterminate() bool { return cb.indeterminate }

// SetLabel replaces the label text.
func (cb *Checkbox) SetLabel(label string) *Checkbox {
	cb.c.Text.Set(label)
	return cb
}

// Label returns the label text.
func (cb *Checkbox) Label() string { return cb.c.Text.Get() }

// Value returns the submitted value.
func (cb *Checkbox) Value() string { return cb.ic.Input.Value() }

// Input returns the native input.
func (cb *Checkbox) Input() *dom.Element { return cb.ic.Input }

// Enable enables the checkbox.
func (cb *Checkbox) Enable() *Checkbox {
	cb.c.Disabled.Enable()
	return cb
}

// Disable disables the checkbox.
func (cb *Checkbox) Disable() *Checkbox {
	cb.c.Disabled.Disable()
	return cb
}

// IsDisabled reports whether the checkbox is disabled.
func (cb *Checkbox) IsDisabled() bool { return cb.c.Disabled.IsDisabled() }
