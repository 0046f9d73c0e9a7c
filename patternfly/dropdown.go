package patternfly

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// Dropdown is a PatternFly dropdown: a div.dropdown wrapping a toggle button
// and a menu of anchor items. It is matched by the toggle's text or title.
type Dropdown struct {
	root playwright.Locator
	log  zerolog.Logger
	text string
}

// Dropdown constructs a dropdown widget matched by the toggle button's
// normalized text or title attribute.
func (v *View) Dropdown(text string) *Dropdown {
	q := Quote(text)
	expr := fmt.Sprintf(
		`.//div[contains(@class, "dropdown") and ./button[normalize-space(.)=%s or normalize-space(@title)=%s]]`,
		q, q)
	return &Dropdown{root: v.xp(expr).First(), log: v.log, text: text}
}

func (d *Dropdown) button() playwright.Locator {
	return childXP(d.root, "./button")
}

func (d *Dropdown) itemLinks() playwright.Locator {
	return childXP(d.root, "./ul/li/a")
}

func (d *Dropdown) itemLink(item string) playwright.Locator {
	return childXP(d.root, fmt.Sprintf("./ul/li/a[normalize-space(.)=%s]", Quote(item)))
}

// IsDisplayed reports whether the dropdown is visible.
func (d *Dropdown) IsDisplayed() (bool, error) {
	return d.root.IsVisible()
}

// IsEnabled reports whether the dropdown toggle is usable.
func (d *Dropdown) IsEnabled() (bool, error) {
	disabled, err := hasClass(d.root, "disabled")
	return !disabled, err
}

func (d *Dropdown) verifyEnabled() error {
	enabled, err := d.IsEnabled()
	if err != nil {
		return err
	}
	if !enabled {
		return fmt.Errorf("dropdown %q: %w", d.text, ErrDropdownDisabled)
	}
	return nil
}

// IsOpen reports whether the menu is currently expanded.
func (d *Dropdown) IsOpen() (bool, error) {
	return hasClass(d.root, "open")
}

// Open expands the menu if it is not already expanded.
func (d *Dropdown) Open() error {
	if err := d.verifyEnabled(); err != nil {
		return err
	}
	open, err := d.IsOpen()
	if err != nil || open {
		return err
	}
	return d.button().Click()
}

// Close collapses the menu if it is expanded.
func (d *Dropdown) Close() error {
	open, err := d.IsOpen()
	if err != nil || !open {
		return err
	}
	return d.button().Click()
}

// Hover moves the pointer over the dropdown toggle and returns the
// toggle's title attribute.
func (d *Dropdown) Hover() (string, error) {
	if err := d.button().Hover(); err != nil {
		return "", err
	}
	return d.button().GetAttribute("title")
}

// Items returns the text of every item in the menu.
func (d *Dropdown) Items() ([]string, error) {
	if err := d.verifyEnabled(); err != nil {
		return nil, err
	}
	return elementTexts(d.itemLinks())
}

// HasItem reports whether the menu contains an item with the given text.
func (d *Dropdown) HasItem(item string) (bool, error) {
	items, err := d.Items()
	if err != nil {
		return false, err
	}
	for _, i := range items {
		if i == item {
			return true, nil
		}
	}
	return false, nil
}

func (d *Dropdown) itemElement(item string) (playwright.Locator, error) {
	if err := d.verifyEnabled(); err != nil {
		return nil, err
	}
	link := d.itemLink(item)
	ok, err := exists(link)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("dropdown %q, item %q: %w", d.text, item, ErrDropdownItemNotFound)
	}
	return link.First(), nil
}

// ItemEnabled reports whether the given item can be selected.
func (d *Dropdown) ItemEnabled(item string) (bool, error) {
	link, err := d.itemElement(item)
	if err != nil {
		return false, err
	}
	disabled, err := hasClass(childXP(link, ".."), "disabled")
	return !disabled, err
}

// ItemSelect opens the menu, clicks the given item and closes the menu
// again. It fails with ErrDropdownItemNotFound or ErrDropdownItemDisabled
// when the item cannot be selected.
func (d *Dropdown) ItemSelect(item string) error {
	d.log.Debug().Str("dropdown", d.text).Str("item", item).Msg("selecting dropdown item")
	link, err := d.itemElement(item)
	if err != nil {
		return err
	}
	enabled, err := d.ItemEnabled(item)
	if err != nil {
		return err
	}
	if !enabled {
		reason, rErr := link.GetAttribute("title")
		if rErr != nil || reason == "" {
			return fmt.Errorf("dropdown %q, item %q: %w", d.text, item, ErrDropdownItemDisabled)
		}
		return fmt.Errorf("dropdown %q, item %q (%s): %w", d.text, item, reason, ErrDropdownItemDisabled)
	}
	if err := d.Open(); err != nil {
		return err
	}
	clickErr := link.Click()
	if closeErr := d.closeIfPresent(); clickErr == nil {
		clickErr = closeErr
	}
	return clickErr
}

// closeIfPresent collapses the menu after a selection. The clicked item
// may have navigated away or removed the dropdown, which is not an error.
func (d *Dropdown) closeIfPresent() error {
	present, err := exists(d.root)
	if err != nil || !present {
		return err
	}
	if err := d.Close(); err != nil && !isDetachedError(err) {
		return err
	}
	return nil
}

// SelectorDropdown is a dropdown matched by an attribute of its toggle
// button rather than by text. Its toggle shows the currently selected item.
type SelectorDropdown struct {
	Dropdown
}

// SelectorDropdown constructs the widget by a toggle button attribute,
// e.g. view.SelectorDropdown("id", "filterSelector").
func (v *View) SelectorDropdown(attr, value string) *SelectorDropdown {
	expr := fmt.Sprintf(
		`.//div[contains(@class, "dropdown") and ./button[@%s=%s]]`,
		attr, Quote(value))
	return &SelectorDropdown{Dropdown{
		root: v.xp(expr).First(),
		log:  v.log,
		text: fmt.Sprintf("%s=%s", attr, value),
	}}
}

// CurrentlySelected returns the selection shown on the toggle button.
func (d *SelectorDropdown) CurrentlySelected() (string, error) {
	return elementText(d.button())
}

// Read returns the current selection.
func (d *SelectorDropdown) Read() (string, error) {
	return d.CurrentlySelected()
}

// Fill selects the given value, reporting whether the selection changed.
func (d *SelectorDropdown) Fill(value string) (bool, error) {
	current, err := d.CurrentlySelected()
	if err != nil {
		return false, err
	}
	if current == value {
		return false, nil
	}
	return true, d.ItemSelect(value)
}

// ItemSelect selects the item and waits for the toggle to reflect it.
func (d *SelectorDropdown) ItemSelect(item string) error {
	if err := d.Dropdown.ItemSelect(item); err != nil {
		return err
	}
	return waitUntil(defaultWaitTimeout, func() (bool, error) {
		current, err := d.CurrentlySelected()
		if err != nil {
			return false, err
		}
		return current == item, nil
	})
}

// Kebab is the PatternFly kebab menu, the vertical-ellipsis dropdown used
// on list rows and cards.
type Kebab struct {
	root playwright.Locator
	log  zerolog.Logger
	id   string
}

// Kebab constructs a kebab widget matched by its toggle button id.
func (v *View) Kebab(id string) *Kebab {
	expr := fmt.Sprintf(
		`.//div[contains(@class, "dropdown-kebab-pf") and ./button[@id=%s]]`, Quote(id))
	return &Kebab{root: v.xp(expr).First(), log: v.log, id: id}
}

// KebabByLocator constructs a kebab widget from an XPath locator for the
// kebab div itself, for menus whose toggle has no id.
func (v *View) KebabByLocator(locator string) *Kebab {
	return &Kebab{root: v.xp(locator).First(), log: v.log, id: locator}
}

// IsOpened reports whether the kebab menu is expanded.
func (k *Kebab) IsOpened() (bool, error) {
	return hasClass(k.root, "open")
}

// Open expands the kebab menu if needed.
func (k *Kebab) Open() error {
	opened, err := k.IsOpened()
	if err != nil || opened {
		return err
	}
	return childXP(k.root, "./button").Click()
}

// Close collapses the kebab menu if needed.
func (k *Kebab) Close() error {
	opened, err := k.IsOpened()
	if err != nil || !opened {
		return err
	}
	return childXP(k.root, "./button").Click()
}

// Items returns the text of every item in the kebab menu.
func (k *Kebab) Items() ([]string, error) {
	return elementTexts(childXP(k.root, "./ul/li/a"))
}

// Select opens the menu and clicks the given item. When closeAfter is true
// the menu is collapsed again afterwards, for items that do not navigate.
func (k *Kebab) Select(item string, closeAfter bool) error {
	k.log.Debug().Str("kebab", k.id).Str("item", item).Msg("selecting kebab item")
	if err := k.Open(); err != nil {
		return err
	}
	link := childXP(k.root, fmt.Sprintf("./ul/li/a[normalize-space(.)=%s]", Quote(item)))
	ok, err := exists(link)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("kebab %q, item %q: %w", k.id, item, ErrDropdownItemNotFound)
	}
	if err := link.First().Click(); err != nil {
		return err
	}
	if closeAfter {
		return k.Close()
	}
	return nil
}
