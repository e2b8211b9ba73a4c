package widgets

import (
	"slices"

	"github.com/go-mtrl/mtrl/pkg/compose"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
	"github.com/go-mtrl/mtrl/pkg/focus"
)

// ChipSetChangeDetail is the payload of a chip set's EventChange.
type ChipSetChangeDetail struct {
	SelectedValues []string
	// ChangedValue is the value of the chip that triggered the change.
	ChangedValue string
}

// ChipSetConfig configures NewChipSet.
type ChipSetConfig struct {
	Document *dom.Document
	Prefix   string
	Chips    []ChipConfig
	// Scrollable lays chips out on one scrolling row.
	Scrollable bool
	Vertical   bool
	// MultiSelect allows several selected chips. Otherwise selecting a chip
	// deselects the others.
	MultiSelect bool
	Label       string
	Disabled    bool
	Class       string
}

// ChipSet groups chips and coordinates their selection.
type ChipSet struct {
	base
	chips   []*Chip
	subs    map[*Chip][2]core.ListenerID
	multi   bool
	syncing bool
}

// NewChipSet creates a chip set.
func NewChipSet(cfg ChipSetConfig) (*ChipSet, error) {
	return create("chip-set", func() (*ChipSet, error) {
		c := compose.Pipe(
			core.WithEvents(),
			core.WithElement(core.ElementOptions{
				Classes: classes(cfg.Class),
				Attrs:   map[string]string{"role": "group"},
			}),
			core.WithModifier("scrollable", cfg.Scrollable),
			core.WithModifier("vertical", cfg.Vertical),
			core.WithModifier("multi-select", cfg.MultiSelect),
			core.WithDisabled(false),
			core.WithLifecycle(),
		)(newBase("chip-set", cfg.Prefix, cfg.Document))

		cs := &ChipSet{base: base{c}, subs: make(map[*Chip][2]core.ListenerID), multi: cfg.MultiSelect}
		if cfg.Label != "" {
			label := c.CreateElement("span", c.Part("label")).SetText(cfg.Label)
			label.SetID(newID(c, "chip-set-label"))
			c.Element.AppendChild(label)
			c.Element.SetAttribute("aria-labelledby", label.ID())
		}
		for _, chipCfg := range cfg.Chips {
			if _, err := cs.AddChipConfig(chipCfg); err != nil {
				return nil, err
			}
		}
		if cfg.Disabled {
			cs.Disable()
		}
		c.Listen(c.Element, "keydown", cs.onKeyDown)
		c.AddDestroyer(func() {
			for _, chip := range slices.Clone(cs.chips) {
				cs.detach(chip)
				chip.Destroy()
			}
		})
		c.Log.Debug().Int("chips", len(cs.chips)).Bool("multi", cs.multi).Msg("chip set created")
		return cs, nil
	})
}

// AddChipConfig builds a chip in the set's document and adds it.
func (cs *ChipSet) AddChipConfig(cfg ChipConfig) (*Chip, error) {
	cfg.Document = cs.c.Document
	if cfg.Prefix == "" {
		cfg.Prefix = cs.c.Prefix()
	}
	chip, err := NewChip(cfg)
	if err != nil {
		return nil, err
	}
	cs.AddChip(chip)
	return chip, nil
}

// AddChip appends chip to the set. In single-select mode a selected chip
// takes over the selection.
func (cs *ChipSet) AddChip(chip *Chip) *ChipSet {
	if chip == nil || slices.Contains(cs.chips, chip) {
		return cs
	}
	chip.selectable = true
	cs.chips = append(cs.chips, chip)
	cs.c.Element.AppendChild(chip.Element())
	if cs.c.Disabled.IsDisabled() {
		chip.Disable()
	}
	changeID := chip.On(EventChange, func(data any) {
		if d, ok := data.(ChipChangeDetail); ok {
			cs.onChipChange(chip, d.Selected)
		}
	})
	removeID := chip.On(EventRemove, func(any) {
		cs.RemoveChip(chip)
		cs.c.Emit(EventRemove, chip)
	})
	cs.subs[chip] = [2]core.ListenerID{changeID, removeID}
	if chip.IsSelected() && !cs.multi {
		cs.deselectOthers(chip)
	}
	return cs
}

// RemoveChip removes and destroys chip.
func (cs *ChipSet) RemoveChip(chip *Chip) *ChipSet {
	idx := slices.Index(cs.chips, chip)
	if idx < 0 {
		return cs
	}
	wasSelected := chip.IsSelected()
	cs.detach(chip)
	chip.Destroy()
	if wasSelected {
		cs.emitChange(chip.Value())
	}
	return cs
}

func (cs *ChipSet) detach(chip *Chip) {
	if ids, ok := cs.subs[chip]; ok {
		chip.Off(EventChange, ids[0])
		chip.Off(EventRemove, ids[1])
		delete(cs.subs, chip)
	}
	cs.chips = slices.DeleteFunc(cs.chips, func(c *Chip) bool { return c == chip })
}

// Chips returns the chips in order.
func (cs *ChipSet) Chips() []*Chip { return slices.Clone(cs.chips) }

// SelectedChips returns the selected chips in order.
func (cs *ChipSet) SelectedChips() []*Chip {
	var out []*Chip
	for _, chip := range cs.chips {
		if chip.IsSelected() {
			out = append(out, chip)
		}
	}
	return out
}

// SelectedValues returns the values of the selected chips in order.
func (cs *ChipSet) SelectedValues() []string {
	out := []string{}
	for _, chip := range cs.SelectedChips() {
		out = append(out, chip.Value())
	}
	return out
}

// SelectByValue selects the chips whose value is in values and deselects
// the rest. In single-select mode only the first matching chip is selected.
func (cs *ChipSet) SelectByValue(values ...string) *ChipSet {
	changed := false
	first := ""
	found := false
	cs.sync(func() {
		for _, chip := range cs.chips {
			want := slices.Contains(values, chip.Value())
			if !cs.multi {
				want = want && !found
			}
			if want && !found {
				found = true
				first = chip.Value()
			}
			if chip.IsSelected() != want {
				chip.SetSelected(want)
				changed = true
			}
		}
	})
	if changed {
		cs.emitChange(first)
	}
	return cs
}

// ClearSelection deselects every chip.
func (cs *ChipSet) ClearSelection() *ChipSet {
	changed := false
	cs.sync(func() {
		for _, chip := range cs.chips {
			if chip.IsSelected() {
				chip.SetSelected(false)
				changed = true
			}
		}
	})
	if changed {
		cs.emitChange("")
	}
	return cs
}

// IsMultiSelect reports whether several chips may be selected.
func (cs *ChipSet) IsMultiSelect() bool { return cs.multi }

// SetScrollable toggles the single scrolling row layout.
func (cs *ChipSet) SetScrollable(scrollable bool) *ChipSet {
	cs.c.Element.ToggleClass(cs.c.Modifier("scrollable"), scrollable)
	return cs
}

// SetVertical toggles the vertical layout.
func (cs *ChipSet) SetVertical(vertical bool) *ChipSet {
	cs.c.Element.ToggleClass(cs.c.Modifier("vertical"), vertical)
	return cs
}

// Enable enables the set and every chip in it.
func (cs *ChipSet) Enable() *ChipSet {
	cs.c.Disabled.Enable()
	for _, chip := range cs.chips {
		chip.Enable()
	}
	return cs
}

// Disable disables the set and every chip in it.
func (cs *ChipSet) Disable() *ChipSet {
	cs.c.Disabled.Disable()
	for _, chip := range cs.chips {
		chip.Disable()
	}
	return cs
}

// IsDisabled reports whether the set is disabled.
func (cs *ChipSet) IsDisabled() bool { return cs.c.Disabled.IsDisabled() }

func (cs *ChipSet) sync(fn func()) {
	cs.syncing = true
	defer func() { cs.syncing = false }()
	fn()
}

func (cs *ChipSet) onChipChange(chip *Chip, selected bool) {
	if cs.syncing {
		return
	}
	if selected && !cs.multi {
		cs.deselectOthers(chip)
	}
	cs.emitChange(chip.Value())
}

func (cs *ChipSet) deselectOthers(keep *Chip) {
	cs.sync(func() {
		for _, chip := range cs.chips {
			if chip != keep && chip.IsSelected() {
				chip.SetSelected(false)
			}
		}
	})
}

func (cs *ChipSet) emitChange(changed string) {
	cs.c.Emit(EventChange, ChipSetChangeDetail{SelectedValues: cs.SelectedValues(), ChangedValue: changed})
}

// onKeyDown moves focus between enabled chips with the arrow, Home and End
// keys.
func (cs *ChipSet) onKeyDown(ev *dom.Event) {
	var enabled []*dom.Element
	for _, chip := range cs.chips {
		if !chip.IsDisabled() {
			enabled = append(enabled, chip.Element())
		}
	}
	focus.HandleKey(ev, enabled)
}
