package page

import (
	"fmt"

	"github.com/go-mtrl/mtrl/cmd/mtrl/internal/config"
	"github.com/go-mtrl/mtrl/pkg/widgets"
)

// builders maps page file widget types to constructors.
var builders map[string]buildFunc

func init() {
	builders = map[string]buildFunc{
		"bottom-app-bar": buildBottomAppBar,
		"button":         buildButton,
		"card":           buildCard,
		"checkbox":       buildCheckbox,
		"chip":           buildChip,
		"chip-set":       buildChipSet,
		"navigation":     buildNavigation,
		"sheet":          buildSheet,
		"switch":         buildSwitch,
		"tooltip":        buildTooltip,
		"top-app-bar":    buildTopAppBar,
	}
}

func buildButton(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	btn, err := widgets.NewButton(widgets.ButtonConfig{
		Document:  b.doc,
		Prefix:    b.prefix,
		Variant:   widgets.ButtonVariant(w.Variant),
		Text:      w.Text,
		Icon:      w.Icon,
		Value:     w.Value,
		AriaLabel: w.Label,
		Disabled:  w.Disabled,
		Class:     w.Class,
	})
	return btn, false, err
}

func chipConfig(w config.Widget) widgets.ChipConfig {
	return widgets.ChipConfig{
		Variant:   widgets.ChipVariant(w.Variant),
		Text:      w.Text,
		Icon:      w.Icon,
		Value:     w.Value,
		Selected:  w.Selected,
		Disabled:  w.Disabled,
		AriaLabel: w.Label,
		Class:     w.Class,
	}
}

func buildChip(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	cfg := chipConfig(w)
	cfg.Document, cfg.Prefix = b.doc, b.prefix
	chip, err := widgets.NewChip(cfg)
	return chip, false, err
}

func buildChipSet(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	chips := make([]widgets.ChipConfig, 0, len(w.Children))
	for _, child := range w.Children {
		chips = append(chips, chipConfig(child))
	}
	set, err := widgets.NewChipSet(widgets.ChipSetConfig{
		Document:    b.doc,
		Prefix:      b.prefix,
		Chips:       chips,
		MultiSelect: w.MultiSelect,
		Label:       w.Label,
		Disabled:    w.Disabled,
		Class:       w.Class,
	})
	if err != nil {
		return nil, false, err
	}
	for i, chip := range set.Chips() {
		if id := w.Children[i].ID; id != "" {
			chip.Element().SetID(id)
		}
	}
	return set, false, nil
}

func buildCard(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	cfg := widgets.CardConfig{
		Document:  b.doc,
		Prefix:    b.prefix,
		Variant:   widgets.CardVariant(w.Variant),
		AriaLabel: w.Label,
		Class:     w.Class,
	}
	if w.Title != "" || w.Subtitle != "" {
		cfg.Header = &widgets.CardHeaderConfig{Title: w.Title, Subtitle: w.Subtitle}
	}
	if w.Text != "" {
		cfg.Content = append(cfg.Content, widgets.CardContentConfig{Text: w.Text})
	}
	if w.Content != "" {
		cfg.Content = append(cfg.Content, widgets.CardContentConfig{HTML: w.Content})
	}
	if len(w.Children) > 0 {
		actions, err := b.children(w.Children)
		if err != nil {
			return nil, false, err
		}
		cfg.Actions = &widgets.CardActionsConfig{Actions: actions}
	}
	card, err := widgets.NewCard(cfg)
	return card, false, err
}

func buildCheckbox(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	cb, err := widgets.NewCheckbox(widgets.CheckboxConfig{
		Document: b.doc,
		Prefix:   b.prefix,
		Label:    w.Label,
		Name:     w.ID,
		Value:    w.Value,
		Checked:  w.Checked,
		Disabled: w.Disabled,
		Class:    w.Class,
	})
	return cb, false, err
}

func buildSwitch(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	sw, err := widgets.NewSwitch(widgets.SwitchConfig{
		Document: b.doc,
		Prefix:   b.prefix,
		Label:    w.Label,
		Name:     w.ID,
		Value:    w.Value,
		Checked:  w.Checked,
		Disabled: w.Disabled,
		Class:    w.Class,
	})
	return sw, false, err
}

func navItems(items []config.NavItem) []widgets.NavItemConfig {
	out := make([]widgets.NavItemConfig, 0, len(items))
	for _, item := range items {
		out = append(out, widgets.NavItemConfig{
			ID:       item.ID,
			Icon:     item.Icon,
			Label:    item.Label,
			Badge:    item.Badge,
			Disabled: item.Disabled,
			Expanded: item.Expanded,
			Items:    navItems(item.Items),
		})
	}
	return out
}

func buildNavigation(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	nav, err := widgets.NewNavigation(widgets.NavigationConfig{
		Document:  b.doc,
		Prefix:    b.prefix,
		Variant:   widgets.NavVariant(w.Variant),
		Position:  widgets.NavPosition(w.Position),
		Items:     navItems(w.Items),
		Active:    w.Active,
		AriaLabel: w.Label,
		Disabled:  w.Disabled,
		Class:     w.Class,
	})
	return nav, false, err
}

func buildSheet(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	sheet, err := widgets.NewSheet(widgets.SheetConfig{
		Document: b.doc,
		Prefix:   b.prefix,
		Variant:  widgets.SheetVariant(w.Variant),
		Position: widgets.SheetPosition(w.Position),
		Title:    w.Title,
		Content:  w.Content,
		Open:     w.Open,
		Class:    w.Class,
	})
	return sheet, true, err
}

func buildTooltip(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	target := b.doc.GetElementByID(w.Target)
	if target == nil {
		return nil, false, fmt.Errorf("tooltip target %q not found", w.Target)
	}
	tip, err := widgets.NewTooltip(widgets.TooltipConfig{
		Document: b.doc,
		Prefix:   b.prefix,
		Target:   target,
		Text:     w.Text,
		Position: widgets.TooltipPosition(w.Position),
		Variant:  widgets.TooltipVariant(w.Variant),
		Visible:  w.Open,
		Class:    w.Class,
	})
	return tip, true, err
}

func buildTopAppBar(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	bar, err := widgets.NewTopAppBar(widgets.TopAppBarConfig{
		Document: b.doc,
		Prefix:   b.prefix,
		Type:     widgets.TopAppBarType(w.Variant),
		Title:    w.Title,
		Class:    w.Class,
	})
	if err != nil {
		return nil, false, err
	}
	trailing, err := b.children(w.Children)
	if err != nil {
		bar.Destroy()
		return nil, false, err
	}
	for _, el := range trailing {
		bar.AddTrailingElement(el)
	}
	return bar, false, nil
}

// buildBottomAppBar places children as actions, except children with the
// "fab" variant which fill the floating action button slot.
func buildBottomAppBar(b *builder, w config.Widget) (widgets.Widget, bool, error) {
	bar, err := widgets.NewBottomAppBar(widgets.BottomAppBarConfig{
		Document:    b.doc,
		Prefix:      b.prefix,
		FabPosition: widgets.FabPosition(w.Position),
		AutoHide:    w.AutoHide,
		Class:       w.Class,
	})
	if err != nil {
		return nil, false, err
	}
	els, err := b.children(w.Children)
	if err != nil {
		bar.Destroy()
		return nil, false, err
	}
	for i, el := range els {
		if w.Children[i].Variant == "fab" {
			bar.AddFab(el)
			continue
		}
		bar.AddAction(el)
	}
	return bar, false, nil
}
