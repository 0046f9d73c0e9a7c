package patternfly

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// NavDropdown is a dropdown hosted in a navigation bar: an <li> with a
// toggle anchor and a menu.
type NavDropdown struct {
	root playwright.Locator
	log  zerolog.Logger
}

// NavDropdown constructs the widget from an XPath locator for the <li>.
func (v *View) NavDropdown(locator string) *NavDropdown {
	return &NavDropdown{root: v.xp(locator).First(), log: v.log}
}

// IsDisplayed reports whether the dropdown is visible.
func (n *NavDropdown) IsDisplayed() (bool, error) {
	return n.root.IsVisible()
}

// Text returns the toggle anchor's text.
func (n *NavDropdown) Text() (string, error) {
	return elementText(childXP(n.root, "./a"))
}

// Expandable reports whether the toggle renders a caret, meaning it opens
// a menu rather than navigating directly.
func (n *NavDropdown) Expandable() (bool, error) {
	return exists(childXP(n.root, `./a/span[contains(@class, "caret")]`))
}

// Expanded reports whether the menu is currently open.
func (n *NavDropdown) Expanded() (bool, error) {
	return hasClass(n.root, "open")
}

// Expand opens the menu if it is closed.
func (n *NavDropdown) Expand() error {
	expanded, err := n.Expanded()
	if err != nil || expanded {
		return err
	}
	return childXP(n.root, "./a").Click()
}

// Collapse closes the menu if it is open.
func (n *NavDropdown) Collapse() error {
	expanded, err := n.Expanded()
	if err != nil || !expanded {
		return err
	}
	return childXP(n.root, "./a").Click()
}

// Icon returns the icon shown on the toggle anchor, IconNone when the
// anchor has no single icon child.
func (n *NavDropdown) Icon() (Icon, error) {
	return iconFromElement(childXP(n.root, "./a"))
}

// Items returns the text of every item in the menu.
func (n *NavDropdown) Items() ([]string, error) {
	return elementTexts(childXP(n.root, "./ul/li/a"))
}

// HasItem reports whether the menu contains an item with the given text.
func (n *NavDropdown) HasItem(item string) (bool, error) {
	return exists(childXP(n.root, fmt.Sprintf("./ul/li/a[normalize-space(.)=%s]", Quote(item))))
}

// ItemEnabled reports whether the given item's list entry is enabled.
func (n *NavDropdown) ItemEnabled(item string) (bool, error) {
	entry := childXP(n.root, fmt.Sprintf("./ul/li[a[normalize-space(.)=%s]]", Quote(item)))
	ok, err := exists(entry)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("nav dropdown item %q: %w", item, ErrDropdownItemNotFound)
	}
	disabled, err := hasClass(entry.First(), "disabled")
	return !disabled, err
}

// Select expands the menu and clicks the item with the given text.
func (n *NavDropdown) Select(item string) error {
	if err := n.Expand(); err != nil {
		return err
	}
	link := childXP(n.root, fmt.Sprintf("./ul/li/a[normalize-space(.)=%s]", Quote(item)))
	ok, err := exists(link)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("nav dropdown item %q: %w", item, ErrDropdownItemNotFound)
	}
	return link.First().Click()
}

// BootstrapNav is a Bootstrap nav list (nav-pills, nav-stacked and
// friends). Items may be matched by text, partial text or an attribute.
type BootstrapNav struct {
	root playwright.Locator
	log  zerolog.Logger
}

// BootstrapNav constructs the widget from an XPath locator for the <ul>.
func (v *View) BootstrapNav(locator string) *BootstrapNav {
	return &BootstrapNav{root: v.xp(locator).First(), log: v.log}
}

// IsDisplayed reports whether the nav is visible.
func (n *BootstrapNav) IsDisplayed() (bool, error) {
	return n.root.IsVisible()
}

// CurrentlySelected returns the text of every active item.
func (n *BootstrapNav) CurrentlySelected() ([]string, error) {
	return elementTexts(childXP(n.root, `.//li[contains(@class, "active")]/a`))
}

// Read returns the currently selected items.
func (n *BootstrapNav) Read() ([]string, error) {
	return n.CurrentlySelected()
}

// AllOptions returns the text of every item in the nav.
func (n *BootstrapNav) AllOptions() ([]string, error) {
	return elementTexts(childXP(n.root, "./li/a"))
}

// HasItem reports whether the nav contains an item with the given text.
func (n *BootstrapNav) HasItem(text string) (bool, error) {
	return exists(n.itemByText(text))
}

func (n *BootstrapNav) itemByText(text string) playwright.Locator {
	return childXP(n.root, fmt.Sprintf(".//li/a[text()=%s]", Quote(text)))
}

func (n *BootstrapNav) itemByPartialText(text string) playwright.Locator {
	return childXP(n.root, fmt.Sprintf(".//li/a[contains(normalize-space(.), %s)]", Quote(text)))
}

// Select clicks the item with the given exact text.
func (n *BootstrapNav) Select(text string) error {
	n.log.Debug().Str("item", text).Msg("selecting nav item")
	link := n.itemByText(text)
	ok, err := exists(link)
	if err != nil {
		return err
	}
	if !ok {
		return &SelectItemNotFoundError{Item: text}
	}
	return link.First().Click()
}

// SelectPartial clicks the first item containing the given text.
func (n *BootstrapNav) SelectPartial(text string) error {
	link := n.itemByPartialText(text)
	ok, err := exists(link)
	if err != nil {
		return err
	}
	if !ok {
		return &SelectItemNotFoundError{Item: text}
	}
	return link.First().Click()
}

// SelectAttr clicks the item whose anchor carries the given attribute value.
func (n *BootstrapNav) SelectAttr(attr, value string) error {
	link := childXP(n.root, fmt.Sprintf(".//li/a[@%s=%s]", attr, Quote(value)))
	ok, err := exists(link)
	if err != nil {
		return err
	}
	if !ok {
		return &SelectItemNotFoundError{Item: attr + "=" + value}
	}
	return link.First().Click()
}

// IsDisabled reports whether the item with the given exact text sits in a
// disabled list entry.
func (n *BootstrapNav) IsDisabled(text string) (bool, error) {
	return exists(childXP(n.root,
		fmt.Sprintf(`.//li[contains(@class, "disabled")]/a[text()=%s]`, Quote(text))))
}

// IsDisabledPartial reports like IsDisabled but with substring matching.
func (n *BootstrapNav) IsDisabledPartial(text string) (bool, error) {
	return exists(childXP(n.root,
		fmt.Sprintf(`.//li[contains(@class, "disabled")]/a[contains(normalize-space(.), %s)]`, Quote(text))))
}

// NavItem is one entry of a vertical navigation tree.
type NavItem struct {
	Text     string
	Children []NavItem
}

// VerticalNavigation is the PatternFly left-hand navigation menu with
// optional nested levels.
type VerticalNavigation struct {
	root playwright.Locator
	log  zerolog.Logger
}

// VerticalNavigation constructs the widget from an XPath locator for the
// top-level <ul>.
func (v *View) VerticalNavigation(locator string) *VerticalNavigation {
	return &VerticalNavigation{root: v.xp(locator).First(), log: v.log}
}

// IsDisplayed reports whether the navigation is visible.
func (n *VerticalNavigation) IsDisplayed() (bool, error) {
	return n.root.IsVisible()
}

// CurrentlySelected returns the active item texts, outermost level first.
func (n *VerticalNavigation) CurrentlySelected() ([]string, error) {
	return elementTexts(childXP(n.root, `.//li[contains(@class, "active")]/a`))
}

func (n *VerticalNavigation) sublist(scope playwright.Locator, level string) playwright.Locator {
	return childXP(scope, fmt.Sprintf(
		`./li[a[normalize-space(.)=%s]]/div[contains(@class, "nav-pf-")]/ul`, Quote(level)))
}

// NavLinks returns the link texts under the given path of levels. With no
// levels it returns the top-level links.
func (n *VerticalNavigation) NavLinks(levels ...string) ([]string, error) {
	scope := n.root
	for _, level := range levels {
		sub := n.sublist(scope, level)
		ok, err := exists(sub)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		scope = sub.First()
	}
	return elementTexts(childXP(scope, "./li/a"))
}

// NavItemTree reads the whole navigation into a tree of NavItems.
func (n *VerticalNavigation) NavItemTree(levels ...string) ([]NavItem, error) {
	links, err := n.NavLinks(levels...)
	if err != nil {
		return nil, err
	}
	var tree []NavItem
	for _, link := range links {
		children, err := n.NavItemTree(append(append([]string{}, levels...), link)...)
		if err != nil {
			return nil, err
		}
		tree = append(tree, NavItem{Text: link, Children: children})
	}
	return tree, nil
}

// Select navigates through the given levels, hovering intermediate entries
// to reveal their sub-menus and clicking the final one.
func (n *VerticalNavigation) Select(levels ...string) error {
	if len(levels) == 0 {
		return fmt.Errorf("vertical navigation: no levels given")
	}
	n.log.Debug().Str("path", strings.Join(levels, " / ")).Msg("selecting navigation item")
	scope := n.root
	for i, level := range levels {
		link := childXP(scope, fmt.Sprintf("./li/a[normalize-space(.)=%s]", Quote(level)))
		ok, err := exists(link)
		if err != nil {
			return err
		}
		if !ok {
			return &SelectItemNotFoundError{Item: level}
		}
		if i == len(levels)-1 {
			return link.First().Click()
		}
		if err := link.First().Hover(); err != nil {
			return err
		}
		sub := n.sublist(scope, level)
		if subOK, err := exists(sub); err != nil {
			return err
		} else if !subOK {
			return &SelectItemNotFoundError{Item: levels[i+1]}
		}
		scope = sub.First()
	}
	return nil
}
