package patternfly

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// BootstrapSwitch is the bootstrap-switch checkbox: the real input is
// wrapped in generated markup and toggled by clicking the wrapper.
type BootstrapSwitch struct {
	input playwright.Locator
	log   zerolog.Logger
}

// BootstrapSwitchByID constructs the widget for the input with the given id.
func (v *View) BootstrapSwitchByID(id string) *BootstrapSwitch {
	expr := fmt.Sprintf(`.//input[@id=%s]`, Quote(id))
	return &BootstrapSwitch{input: v.xp(expr).First(), log: v.log}
}

// BootstrapSwitchByName constructs the widget for the input with the given
// name.
func (v *View) BootstrapSwitchByName(name string) *BootstrapSwitch {
	expr := fmt.Sprintf(`.//input[@name=%s]`, Quote(name))
	return &BootstrapSwitch{input: v.xp(expr).First(), log: v.log}
}

func (s *BootstrapSwitch) container() playwright.Locator {
	return childXP(s.input, `./ancestor::div[contains(@class, "bootstrap-switch")][1]`)
}

// IsDisplayed reports whether the switch wrapper is visible. The input
// itself is hidden by the generated markup.
func (s *BootstrapSwitch) IsDisplayed() (bool, error) {
	return s.container().IsVisible()
}

// Selected reports whether the switch is on. Angular-managed inputs carry
// ng-empty/ng-not-empty classes instead of a live checked property.
func (s *BootstrapSwitch) Selected() (bool, error) {
	classes, err := elementClasses(s.input)
	if err != nil {
		return false, err
	}
	for _, class := range classes {
		switch class {
		case "ng-not-empty":
			return true, nil
		case "ng-empty":
			return false, nil
		}
	}
	return s.input.IsChecked()
}

// Read returns the switch state.
func (s *BootstrapSwitch) Read() (bool, error) {
	return s.Selected()
}

// Fill sets the switch to the given state. It reports whether a toggle
// happened.
func (s *BootstrapSwitch) Fill(value bool) (bool, error) {
	selected, err := s.Selected()
	if err != nil || selected == value {
		return false, err
	}
	s.log.Debug().Bool("value", value).Msg("toggling switch")
	if err := s.container().Click(); err != nil {
		return false, err
	}
	return true, nil
}
