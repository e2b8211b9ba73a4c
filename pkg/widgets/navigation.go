package widgets

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-mtrl/mtrl/pkg/compose"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
	"github.com/go-mtrl/mtrl/pkg/errors"
	"github.com/go-mtrl/mtrl/pkg/focus"
)

// NavVariant selects the navigation type.
type NavVariant string

const (
	NavRail     NavVariant = "rail"
	NavBar      NavVariant = "bar"
	NavDrawer   NavVariant = "drawer"
	NavModal    NavVariant = "modal"
	NavStandard NavVariant = "standard"
)

// NavPosition is the screen edge the navigation is attached to.
type NavPosition string

const (
	NavLeft   NavPosition = "left"
	NavRight  NavPosition = "right"
	NavTop    NavPosition = "top"
	NavBottom NavPosition = "bottom"
)

// NavItemConfig describes a navigation destination. Items with children
// form a group that expands and collapses instead of becoming active.
type NavItemConfig struct {
	ID       string
	Icon     string
	Label    string
	Badge    string
	Disabled bool
	Items    []NavItemConfig
	Expanded bool
}

// NavChangeDetail is the payload of a navigation's EventChange.
type NavChangeDetail struct {
	ID         string
	PreviousID string
	// Path lists the ids from the top level down to ID.
	Path []string
}

// NavigationConfig configures NewNavigation.
type NavigationConfig struct {
	Document *dom.Document
	Prefix   string
	// Variant defaults to NavRail.
	Variant NavVariant
	// Position defaults to NavLeft.
	Position NavPosition
	Items    []NavItemConfig
	// Active is the id of the initially active item.
	Active    string
	AriaLabel string
	Disabled  bool
	Class     string
}

var navigationDefaults = NavigationConfig{Variant: NavRail, Position: NavLeft, AriaLabel: "Main navigation"}

// NavItem is a destination or group inside a Navigation.
type NavItem struct {
	nav      *Navigation
	id       string
	parent   *NavItem
	children []*NavItem

	wrapper *dom.Element
	button  *dom.Element
	badge   *dom.Element
	nested  *dom.Element

	disabled bool
	expanded bool
}

// ID returns the item id.
func (it *NavItem) ID() string { return it.id }

// Element returns the item's clickable element.
func (it *NavItem) Element() *dom.Element { return it.button }

// Parent returns the enclosing group, or nil for top-level items.
func (it *NavItem) Parent() *NavItem { return it.parent }

// Items returns the nested items.
func (it *NavItem) Items() []*NavItem { return slices.Clone(it.children) }

// IsGroup reports whether the item has nested items.
func (it *NavItem) IsGroup() bool { return len(it.children) > 0 }

// IsDisabled reports whether the item is disabled.
func (it *NavItem) IsDisabled() bool { return it.disabled }

// SetBadge replaces the badge text. Empty removes it.
func (it *NavItem) SetBadge(badge string) *NavItem {
	if badge == "" {
		if it.badge != nil {
			it.badge.Remove()
			it.badge = nil
		}
		return it
	}
	if it.badge == nil {
		it.badge = it.nav.c.CreateElement("span", it.nav.itemClass("badge"))
		it.button.AppendChild(it.badge)
	}
	it.badge.SetText(badge)
	return it
}

// SetDisabled enables or disables the item.
func (it *NavItem) SetDisabled(disabled bool) *NavItem {
	it.disabled = disabled
	it.button.ToggleAttribute("disabled", disabled)
	it.button.SetAttribute("aria-disabled", boolAttr(disabled))
	it.button.ToggleClass(it.nav.itemClass("")+"--disabled", disabled)
	return it
}

// Navigation is a rail, bar or drawer of destinations.
type Navigation struct {
	base
	items  []*NavItem
	byID   map[string]*NavItem
	active *NavItem
}

// NewNavigation creates a navigation component.
func NewNavigation(cfg NavigationConfig) (*Navigation, error) {
	return create("navigation", func() (*Navigation, error) {
		cfg = withDefaults(cfg, navigationDefaults)

		c := compose.Pipe(
			core.WithEvents(),
			core.WithElement(core.ElementOptions{
				Tag:     "nav",
				Classes: classes(cfg.Class),
				Attrs:   map[string]string{"aria-label": cfg.AriaLabel},
			}),
			core.WithVariant(cfg.Variant),
			core.WithModifier(string(cfg.Position), true),
			core.WithDisabled(cfg.Disabled),
			core.WithLifecycle(),
		)(newBase("navigation", cfg.Prefix, cfg.Document))

		nav := &Navigation{base: base{c}, byID: make(map[string]*NavItem)}
		for _, item := range cfg.Items {
			if _, err := nav.AddItem(item); err != nil {
				return nil, err
			}
		}
		if cfg.Active != "" {
			if nav.Item(cfg.Active) == nil {
				return nil, fmt.Errorf("unknown active item %q", cfg.Active)
			}
			nav.SetActive(cfg.Active)
		}

		c.Listen(c.Element, "click", func(ev *dom.Event) {
			if item := nav.itemFor(ev.Target); item != nil {
				nav.activate(item)
			}
		})
		c.Listen(c.Element, "keydown", nav.onKeyDown)
		c.Log.Debug().Int("items", len(nav.byID)).Msg("navigation created")
		return nav, nil
	})
}

func (nav *Navigation) itemClass(part string) string {
	if part == "" {
		return nav.c.Part("item")
	}
	return nav.c.Part("item-" + part)
}

// itemFor returns the item whose button contains el.
func (nav *Navigation) itemFor(el *dom.Element) *NavItem {
	if el == nil {
		return nil
	}
	button := el.Closest("." + nav.itemClass(""))
	if button == nil || !nav.c.Element.Contains(button) {
		return nil
	}
	return nav.byID[button.Attr("data-id")]
}

func (nav *Navigation) activate(item *NavItem) {
	if nav.IsDisabled() || item.disabled {
		return
	}
	if item.IsGroup() {
		if item.expanded {
			nav.Collapse(item.id)
		} else {
			nav.Expand(item.id)
		}
		return
	}
	nav.SetActive(item.id)
}

// AddItem appends a top-level item.
func (nav *Navigation) AddItem(cfg NavItemConfig) (*NavItem, error) {
	return nav.addItem(nil, cfg)
}

// AddItemTo appends an item to the group identified by parentID.
func (nav *Navigation) AddItemTo(parentID string, cfg NavItemConfig) (*NavItem, error) {
	parent := nav.Item(parentID)
	if parent == nil {
		return nil, nav.configError("AddItemTo", fmt.Errorf("unknown parent item %q", parentID))
	}
	return nav.addItem(parent, cfg)
}

func (nav *Navigation) configError(op string, err error) error {
	ce := &errors.ComponentError{Op: "navigation." + op, Kind: errors.KindConfig, Err: err, Timestamp: time.Now()}
	errors.Report(ce)
	return ce
}

func (nav *Navigation) addItem(parent *NavItem, cfg NavItemConfig) (*NavItem, error) {
	if cfg.ID == "" {
		return nil, nav.configError("AddItem", fmt.Errorf("item %q has no id", cfg.Label))
	}
	if _, dup := nav.byID[cfg.ID]; dup {
		return nil, nav.configError("AddItem", fmt.Errorf("duplicate item id %q", cfg.ID))
	}
	c := nav.c
	item := &NavItem{nav: nav, id: cfg.ID, parent: parent}
	item.wrapper = c.CreateElement("div", nav.itemClass("container"))
	item.button = c.CreateElement("button", nav.itemClass(""))
	item.button.
		SetAttribute("type", "button").
		SetAttribute("data-id", cfg.ID)
	if cfg.Icon != "" {
		icon := c.CreateElement("span", nav.itemClass("icon"))
		if err := icon.SetInnerHTML(cfg.Icon); err != nil {
			icon.SetText(cfg.Icon)
		}
		item.button.AppendChild(icon)
	}
	if cfg.Label != "" {
		item.button.AppendChild(c.CreateElement("span", nav.itemClass("label")).SetText(cfg.Label))
	}
	item.wrapper.AppendChild(item.button)
	item.SetBadge(cfg.Badge)
	item.SetDisabled(cfg.Disabled)

	nav.byID[cfg.ID] = item
	if parent == nil {
		nav.items = append(nav.items, item)
		c.Element.AppendChild(item.wrapper)
	} else {
		parent.ensureNested()
		parent.children = append(parent.children, item)
		parent.nested.AppendChild(item.wrapper)
	}

	for _, child := range cfg.Items {
		if _, err := nav.addItem(item, child); err != nil {
			nav.RemoveItem(cfg.ID)
			return nil, err
		}
	}
	if item.IsGroup() {
		item.setExpanded(cfg.Expanded)
	}
	return item, nil
}

func (it *NavItem) ensureNested() {
	if it.nested != nil {
		return
	}
	c := it.nav.c
	it.nested = c.CreateElement("div", c.Part("nested"))
	it.nested.SetID(newID(c, "navigation-nested"))
	it.nested.SetAttribute("role", "group")
	it.wrapper.AppendChild(it.nested)
	it.button.SetAttribute("aria-controls", it.nested.ID())
	it.button.AddClass(it.nav.itemClass("") + "--group")
}

func (it *NavItem) setExpanded(expanded bool) {
	it.expanded = expanded
	it.button.SetAttribute("aria-expanded", boolAttr(expanded))
	it.wrapper.ToggleClass(it.nav.itemClass("container")+"--expanded", expanded)
	if it.nested != nil {
		it.nested.ToggleAttribute("hidden", !expanded)
	}
}

// RemoveItem removes the item and its nested items. Removing the active
// item leaves the navigation without an active item.
func (nav *Navigation) RemoveItem(id string) *Navigation {
	item := nav.Item(id)
	if item == nil {
		return nav
	}
	var forget func(*NavItem)
	forget = func(it *NavItem) {
		if nav.active == it {
			nav.active = nil
		}
		delete(nav.byID, it.id)
		for _, child := range it.children {
			forget(child)
		}
	}
	forget(item)
	if item.parent == nil {
		nav.items = slices.DeleteFunc(nav.items, func(it *NavItem) bool { return it == item })
	} else {
		p := item.parent
		p.children = slices.DeleteFunc(p.children, func(it *NavItem) bool { return it == item })
		if len(p.children) == 0 && p.nested != nil {
			p.nested.Remove()
			p.nested = nil
			p.button.RemoveAttribute("aria-controls").RemoveAttribute("aria-expanded")
			p.button.RemoveClass(nav.itemClass("") + "--group")
			p.wrapper.RemoveClass(nav.itemClass("container") + "--expanded")
			p.expanded = false
		}
	}
	item.wrapper.Remove()
	return nav
}

// Item returns the item with id, or nil.
func (nav *Navigation) Item(id string) *NavItem { return nav.byID[id] }

// Items returns the top-level items in order.
func (nav *Navigation) Items() []*NavItem { return slices.Clone(nav.items) }

// SetActive marks the item with id as the current destination and expands
// its ancestors. Unknown ids, groups and disabled items are ignored.
func (nav *Navigation) SetActive(id string) *Navigation {
	item := nav.Item(id)
	if item == nil || item.IsGroup() || item.disabled || item == nav.active {
		return nav
	}
	prev := nav.active
	previousID := ""
	if prev != nil {
		previousID = prev.id
		prev.button.RemoveClass(nav.itemClass("") + "--active").RemoveAttribute("aria-current")
	}
	nav.active = item
	item.button.AddClass(nav.itemClass("") + "--active").SetAttribute("aria-current", "page")
	for p := item.parent; p != nil; p = p.parent {
		if !p.expanded {
			nav.Expand(p.id)
		}
	}
	nav.c.Emit(EventChange, NavChangeDetail{ID: id, PreviousID: previousID, Path: nav.ItemPath(id)})
	return nav
}

// Active returns the active item, or nil.
func (nav *Navigation) Active() *NavItem { return nav.active }

// ItemPath returns the ids from the top level down to id, or nil when id is
// unknown.
func (nav *Navigation) ItemPath(id string) []string {
	item := nav.Item(id)
	if item == nil {
		return nil
	}
	var path []string
	for it := item; it != nil; it = it.parent {
		path = append(path, it.id)
	}
	slices.Reverse(path)
	return path
}

// Expand opens the group with id and emits EventExpandedChanged.
func (nav *Navigation) Expand(id string) *Navigation { return nav.setExpanded(id, true) }

// Collapse closes the group with id and emits EventExpandedChanged.
func (nav *Navigation) Collapse(id string) *Navigation { return nav.setExpanded(id, false) }

func (nav *Navigation) setExpanded(id string, expanded bool) *Navigation {
	item := nav.Item(id)
	if item == nil || !item.IsGroup() || item.expanded == expanded {
		return nav
	}
	item.setExpanded(expanded)
	nav.c.Emit(EventExpandedChanged, ExpandedDetail{ID: id, Expanded: expanded})
	return nav
}

// IsExpanded reports whether the group with id is open.
func (nav *Navigation) IsExpanded(id string) bool {
	item := nav.Item(id)
	return item != nil && item.expanded
}

// Enable enables the navigation.
func (nav *Navigation) Enable() *Navigation {
	nav.c.Disabled.Enable()
	return nav
}

// Disable disables the navigation. Clicks on items are ignored.
func (nav *Navigation) Disable() *Navigation {
	nav.c.Disabled.Disable()
	return nav
}

// IsDisabled reports whether the navigation is disabled.
func (nav *Navigation) IsDisabled() bool { return nav.c.Disabled.IsDisabled() }

// visible returns the enabled items reachable without expanding a group, in
// document order.
func (nav *Navigation) visible() []*NavItem {
	var out []*NavItem
	var walk func([]*NavItem)
	walk = func(items []*NavItem) {
		for _, it := range items {
			if !it.disabled {
				out = append(out, it)
			}
			if it.expanded {
				walk(it.children)
			}
		}
	}
	walk(nav.items)
	return out
}

func (nav *Navigation) onKeyDown(ev *dom.Event) {
	item := nav.itemFor(ev.Target)
	if item == nil {
		return
	}
	if isActivationKey(ev.Key) {
		ev.PreventDefault()
		nav.activate(item)
		return
	}
	items := nav.visible()
	buttons := make([]*dom.Element, len(items))
	for i, it := range items {
		buttons[i] = it.button
	}
	focus.HandleKey(ev, buttons)
}
