package patternfly

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// Input is a text input inside a PatternFly form group. It exposes the
// help block and warning text that PatternFly renders next to the field.
type Input struct {
	root playwright.Locator
	log  zerolog.Logger
}

// InputByName constructs an input widget matched by its name attribute.
func (v *View) InputByName(name string) *Input {
	expr := fmt.Sprintf(`.//input[@name=%s]`, Quote(name))
	return &Input{root: v.xp(expr).First(), log: v.log}
}

// InputByID constructs an input widget matched by its id attribute.
func (v *View) InputByID(id string) *Input {
	expr := fmt.Sprintf(`.//input[@id=%s]`, Quote(id))
	return &Input{root: v.xp(expr).First(), log: v.log}
}

// IsDisplayed reports whether the input is visible.
func (i *Input) IsDisplayed() (bool, error) {
	return i.root.IsVisible()
}

// Fill replaces the input's value.
func (i *Input) Fill(value string) error {
	i.log.Debug().Str("value", value).Msg("filling input")
	return i.root.Fill(value)
}

// Value returns the input's current value.
func (i *Input) Value() (string, error) {
	return i.root.InputValue()
}

// Clear empties the input.
func (i *Input) Clear() error {
	return i.root.Clear()
}

// IsReadOnly reports whether the input carries the readonly attribute.
func (i *Input) IsReadOnly() (bool, error) {
	return exists(childXP(i.root, "self::*[@readonly]"))
}

// HelpBlock returns the help text rendered after the input, or "" when the
// form group shows none.
func (i *Input) HelpBlock() (string, error) {
	help := childXP(i.root, `./following-sibling::span[contains(@class, "help-block")]`)
	ok, err := exists(help)
	if err != nil || !ok {
		return "", err
	}
	return elementText(help)
}

// Warning returns the warning text rendered after the input, or "" when the
// form group shows none.
func (i *Input) Warning() (string, error) {
	warning := childXP(i.root, `./following-sibling::div[contains(@class, "warning")]`)
	ok, err := exists(warning)
	if err != nil || !ok {
		return "", err
	}
	return elementText(warning)
}
