package core

import "github.com/go-mtrl/mtrl/pkg/dom"

// EventChange is emitted when a checked or selected state changes.
const EventChange = "change"

// ChangeDetail is the payload of EventChange for checkable components.
type ChangeDetail struct {
	Checked bool
	Value   string
}

// Checkable tracks the checked state of an input.
type Checkable struct {
	ic      *InputComponent
	checked bool
}

// WithCheckable adds a Checkable with the given initial state. A native
// "change" event on the input (user interaction) re-syncs the state.
func WithCheckable(checked bool) func(*InputComponent) *InputComponent {
	return func(ic *InputComponent) *InputComponent {
		ck := &Checkable{ic: ic, checked: checked}
		ic.Checkable = ck
		ck.reflect()
		ic.Listen(ic.Input, "change", func(*dom.Event) {
			if ic.Input.Checked() != ck.checked {
				ck.checked = ic.Input.Checked()
				ck.reflect()
				ck.emit()
			}
		})
		return ic
	}
}

// Check sets the checked state. It emits only when the state changes.
func (k *Checkable) Check() *Checkable { return k.set(true) }

// Uncheck clears the checked state. It emits only when the state changes.
func (k *Checkable) Uncheck() *Checkable { return k.set(false) }

// Toggle flips the checked state and always emits.
func (k *Checkable) Toggle() *Checkable { return k.set(!k.checked) }

// IsChecked reports the checked state.
func (k *Checkable) IsChecked() bool { return k.checked }

func (k *Checkable) set(checked bool) *Checkable {
	if k.checked == checked {
		return k
	}
	k.checked = checked
	k.reflect()
	k.emit()
	return k
}

func (k *Checkable) reflect() {
	k.ic.Input.SetChecked(k.checked)
	k.ic.Element.ToggleClass(k.ic.Modifier("checked"), k.checked)
}

func (k *Checkable) emit() {
	k.ic.Emit(EventChange, ChangeDetail{Checked: k.checked, Value: k.ic.Input.Value()})
}
