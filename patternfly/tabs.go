package patternfly

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// Tab is one entry of a Bootstrap tab strip, matched by its label.
type Tab struct {
	root playwright.Locator
	log  zerolog.Logger
	name string
}

// Tab constructs the widget for the tab with the given label.
func (v *View) Tab(name string) *Tab {
	expr := fmt.Sprintf(
		`.//ul[contains(@class, "nav-tabs")]/li[./a[normalize-space(.)=%s]]`, Quote(name))
	return &Tab{root: v.xp(expr).First(), log: v.log, name: name}
}

// IsDisplayed reports whether the tab is visible.
func (t *Tab) IsDisplayed() (bool, error) {
	return t.root.IsVisible()
}

// IsActive reports whether the tab is the selected one.
func (t *Tab) IsActive() (bool, error) {
	return hasClass(t.root, "active")
}

// IsDisabled reports whether the tab cannot be selected.
func (t *Tab) IsDisabled() (bool, error) {
	return hasClass(t.root, "disabled")
}

// Click clicks the tab label regardless of its current state.
func (t *Tab) Click() error {
	return childXP(t.root, "./a").Click()
}

// Select activates the tab if it is not already active. Selecting a
// disabled tab is an error.
func (t *Tab) Select() error {
	disabled, err := t.IsDisabled()
	if err != nil {
		return err
	}
	if disabled {
		return fmt.Errorf("tab %q is disabled", t.name)
	}
	active, err := t.IsActive()
	if err != nil || active {
		return err
	}
	t.log.Debug().Str("tab", t.name).Msg("selecting tab")
	return t.Click()
}

// TabWithDropdown is a tab whose label opens a menu of sub-tabs.
type TabWithDropdown struct {
	Tab
}

// TabWithDropdown constructs the widget for the dropdown tab with the
// given label.
func (v *View) TabWithDropdown(name string) *TabWithDropdown {
	expr := fmt.Sprintf(
		`.//ul[contains(@class, "nav-tabs")]/li[./a[contains(@class, "dropdown-toggle") and normalize-space(.)=%s]]`,
		Quote(name))
	return &TabWithDropdown{Tab{root: v.xp(expr).First(), log: v.log, name: name}}
}

// IsDropdown reports whether the tab label really carries a menu.
func (t *TabWithDropdown) IsDropdown() (bool, error) {
	return hasClass(t.root, "dropdown")
}

// IsOpen reports whether the tab's menu is open.
func (t *TabWithDropdown) IsOpen() (bool, error) {
	return hasClass(t.root, "open")
}

// Open opens the tab's menu if it is closed.
func (t *TabWithDropdown) Open() error {
	open, err := t.IsOpen()
	if err != nil || open {
		return err
	}
	return t.Click()
}

// Close closes the tab's menu if it is open.
func (t *TabWithDropdown) Close() error {
	open, err := t.IsOpen()
	if err != nil || !open {
		return err
	}
	return t.Click()
}

// SelectItem opens the tab's menu and clicks the sub-tab with the given
// text.
func (t *TabWithDropdown) SelectItem(item string) error {
	if err := t.Open(); err != nil {
		return err
	}
	link := childXP(t.root, fmt.Sprintf("./ul/li/a[normalize-space(.)=%s]", Quote(item)))
	ok, err := exists(link)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("tab %q, item %q: %w", t.name, item, ErrDropdownItemNotFound)
	}
	return link.First().Click()
}
