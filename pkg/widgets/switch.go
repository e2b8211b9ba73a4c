package widgets

import (
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
)

// SwitchConfig configures NewSwitch.
type SwitchConfig struct {
	Document *dom.Document
	Prefix   string
	Label    string
	Name     string
	// Value is submitted with the form. Defaults to "on".
	Value     string
	Checked   bool
	Required  bool
	Disabled  bool
	AriaLabel string
	Class     string
}

var switchDefaults = SwitchConfig{Value: "on"}

// Switch toggles a single setting on or off.
type Switch struct {
	base
	ic *core.InputComponent
}

// NewSwitch creates a switch.
func NewSwitch(cfg SwitchConfig) (*Switch, error) {
	return create("switch", func() (*Switch, error) {
		cfg = withDefaults(cfg, switchDefaults)
		ic := newCheckControl(checkControlConfig{
			name:   "switch",
			prefix: cfg.Prefix,
			doc:    cfg.Document,
			label:  cfg.Label,
			input: core.InputConfig{
				Name:      cfg.Name,
				Value:     cfg.Value,
				Checked:   cfg.Checked,
				Required:  cfg.Required,
				AriaLabel: cfg.AriaLabel,
				Role:      "switch",
			},
			disabled:  cfg.Disabled,
			className: cfg.Class,
		})
		track := ic.CreateElement("span", ic.Part("track"))
		track.SetAttribute("aria-hidden", "true")
		track.AppendChild(ic.CreateElement("span", ic.Part("thumb")))
		ic.Element.InsertAfter(track, ic.Input)

		ic.Log.Debug().Str("name", cfg.Name).Bool("checked", cfg.Checked).Msg("switch created")
		return &Switch{base: base{ic.Component}, ic: ic}, nil
	})
}

// Check turns the switch on.
func (sw *Switch) Check() *Switch {
	sw.ic.Checkable.Check()
	return sw
}

// Uncheck turns the switch off.
func (sw *Switch) Uncheck() *Switch {
	sw.ic.Checkable.Uncheck()
	return sw
}

// Toggle flips the switch.
func (sw *Switch) Toggle() *Switch {
	sw.ic.Checkable.Toggle()
	return sw
}

// IsChecked reports whether the switch is on.
func (sw *Switch) IsChecked() bool { return sw.ic.Checkable.IsChecked() }

// SetLabel replaces the label text.
func (sw *Switch) SetLabel(label string) *Switch {
	sw.c.Text.Set(label)
	return sw
}

// Label returns the label text.
func (sw *Switch) Label() string { return sw.c.Text.Get() }

// Value returns the submitted value.
func (sw *Switch) Value() string { return sw.ic.Input.Value() }

// Input returns the native input.
func (sw *Switch) Input() *dom.Element { return sw.ic.Input }

// Enable enables the switch.
func (sw *Switch) Enable() *Switch {
	sw.c.Disabled.Enable()
	return sw
}

// Disable disables the switch.
func (sw *Switch) Disable() *Switch {
	sw.c.Disabled.Disable()
	return sw
}

// IsDisabled reports whether the switch is disabled.
func (sw *Switch) IsDisabled() bool { return sw.c.Disabled.IsDisabled() }
