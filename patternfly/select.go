package patternfly

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// BootstrapSelect is the bootstrap-select enhanced <select>: the original
// element is hidden and a button plus menu are rendered next to it.
type BootstrapSelect struct {
	root playwright.Locator
	log  zerolog.Logger
	id   string
	// selXP locates the hidden <select> inside the wrapper.
	selXP string
}

// BootstrapSelect constructs the widget for the select whose generated
// toggle button carries the given data-id. The root is the wrapper the
// plugin renders around the hidden <select>.
func (v *View) BootstrapSelect(id string) *BootstrapSelect {
	expr := fmt.Sprintf(
		`.//div[contains(@class, "bootstrap-select")][./button[normalize-space(@data-id)=%s]]`, Quote(id))
	return &BootstrapSelect{root: v.xp(expr).First(), log: v.log, id: id, selXP: "./select"}
}

// BootstrapSelectByName constructs the widget for the select with the
// given name attribute.
func (v *View) BootstrapSelectByName(name string) *BootstrapSelect {
	expr := fmt.Sprintf(`.//select[@name=%s]/..`, Quote(name))
	return &BootstrapSelect{root: v.xp(expr).First(), log: v.log, id: name, selXP: "./select"}
}

// BootstrapSelectByLocator constructs the widget from an XPath locator
// for the bootstrap-select wrapper itself.
func (v *View) BootstrapSelectByLocator(locator string) *BootstrapSelect {
	return &BootstrapSelect{root: v.xp(locator).First(), log: v.log, id: locator, selXP: "./select"}
}

func (s *BootstrapSelect) toggle() playwright.Locator {
	return childXP(s.root, "./button")
}

// IsDisplayed reports whether the select is visible.
func (s *BootstrapSelect) IsDisplayed() (bool, error) {
	return s.root.IsVisible()
}

// IsOpen reports whether the options menu is expanded.
func (s *BootstrapSelect) IsOpen() (bool, error) {
	return hasClass(s.root, "open")
}

// Open expands the options menu if needed.
func (s *BootstrapSelect) Open() error {
	open, err := s.IsOpen()
	if err != nil || open {
		return err
	}
	return s.toggle().Click()
}

// Close collapses the options menu if needed.
func (s *BootstrapSelect) Close() error {
	open, err := s.IsOpen()
	if err != nil || !open {
		return err
	}
	return s.toggle().Click()
}

// IsMultiple reports whether the underlying <select> accepts several
// values at once.
func (s *BootstrapSelect) IsMultiple() (bool, error) {
	return exists(childXP(s.root, s.selXP+"[@multiple]"))
}

// AllOptions returns the visible text of every option in the menu.
func (s *BootstrapSelect) AllOptions() ([]string, error) {
	return elementTexts(childXP(s.root, `./div/ul/li/a/span[contains(@class, "text")]`))
}

// AllSelectedOptions returns the options currently marked selected in the
// menu. Falls back to the toggle text when the menu carries no marks.
func (s *BootstrapSelect) AllSelectedOptions() ([]string, error) {
	selected, err := elementTexts(childXP(s.root,
		`./div/ul/li[contains(@class, "selected")]/a/span[contains(@class, "text")]`))
	if err != nil {
		return nil, err
	}
	if len(selected) > 0 {
		return selected, nil
	}
	current, err := s.SelectedOption()
	if err != nil {
		return nil, err
	}
	return []string{current}, nil
}

// SelectedOption returns the option currently shown on the toggle.
func (s *BootstrapSelect) SelectedOption() (string, error) {
	return elementText(childXP(s.root, `./button/span[contains(@class, "filter-option")]`))
}

// Read returns the option currently shown on the toggle.
func (s *BootstrapSelect) Read() (string, error) {
	return s.SelectedOption()
}

// SelectByVisibleText opens the menu and selects each given option. An
// unknown option fails with a SelectItemNotFoundError listing what the
// menu offers. Selecting more than one option requires a multi-select.
func (s *BootstrapSelect) SelectByVisibleText(items ...string) error {
	return s.selectItems(func(item string) playwright.Locator {
		return childXP(s.root, fmt.Sprintf(
			`./div/ul/li/a[./span[contains(@class, "text") and normalize-space(.)=%s]]`, Quote(item)))
	}, items)
}

// SelectByPartialText selects like SelectByVisibleText but matches options
// by substring.
func (s *BootstrapSelect) SelectByPartialText(items ...string) error {
	return s.selectItems(func(item string) playwright.Locator {
		return childXP(s.root, fmt.Sprintf(
			`./div/ul/li/a[./span[contains(@class, "text") and contains(normalize-space(.), %s)]]`, Quote(item)))
	}, items)
}

func (s *BootstrapSelect) selectItems(locate func(string) playwright.Locator, items []string) error {
	if len(items) > 1 {
		multiple, err := s.IsMultiple()
		if err != nil {
			return err
		}
		if !multiple {
			return fmt.Errorf("select %q accepts a single option, got %d", s.id, len(items))
		}
	}
	for _, item := range items {
		s.log.Debug().Str("select", s.id).Str("item", item).Msg("selecting option")
		if err := s.Open(); err != nil {
			return err
		}
		link := locate(item)
		ok, err := exists(link)
		if err != nil {
			return err
		}
		if !ok {
			options, optErr := s.AllOptions()
			if optErr != nil {
				return optErr
			}
			return &SelectItemNotFoundError{Item: item, Options: options}
		}
		if err := link.First().Click(); err != nil {
			return err
		}
	}
	// Some themes close the menu on select; Close only acts when needed.
	return s.Close()
}

// Fill selects the given option, reporting whether the selection changed.
func (s *BootstrapSelect) Fill(item string) (bool, error) {
	current, err := s.SelectedOption()
	if err != nil {
		return false, err
	}
	if current == item {
		return false, nil
	}
	return true, s.SelectByVisibleText(item)
}
