package patternfly

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// accordionClickTimeout bounds the wait after a header click before the
// click is retried.
const accordionClickTimeout = 3 * time.Second

// Accordion is one panel of a Bootstrap panel-group accordion, matched by
// its header text.
type Accordion struct {
	root playwright.Locator
	log  zerolog.Logger
	name string
}

// Accordion constructs the widget for the panel with the given header.
func (v *View) Accordion(name string) *Accordion {
	expr := fmt.Sprintf(
		`.//div[contains(@class, "panel-group")]/div[contains(@class, "panel") and ./div/h4/a[normalize-space(.)=%s]]`,
		Quote(name))
	return &Accordion{root: v.xp(expr).First(), log: v.log, name: name}
}

func (a *Accordion) header() playwright.Locator {
	return childXP(a.root, "./div/h4/a")
}

func (a *Accordion) content() playwright.Locator {
	return childXP(a.root, `./div[contains(@class, "panel-collapse")]`)
}

// IsDisplayed reports whether the panel is visible.
func (a *Accordion) IsDisplayed() (bool, error) {
	return a.root.IsVisible()
}

// IsOpened reports whether the panel body is expanded.
func (a *Accordion) IsOpened() (bool, error) {
	return hasClass(a.content(), "in")
}

// Click clicks the panel header.
func (a *Accordion) Click() error {
	return a.header().Click()
}

// Open expands the panel body and waits for the collapse animation. Some
// panels swallow the first click, so a second one is tried before giving
// up.
func (a *Accordion) Open() error {
	opened, err := a.IsOpened()
	if err != nil || opened {
		return err
	}
	a.log.Debug().Str("accordion", a.name).Msg("opening accordion")
	for attempt := 0; attempt < 2; attempt++ {
		if err := a.Click(); err != nil {
			return err
		}
		if err := waitUntil(accordionClickTimeout, a.IsOpened); err == nil {
			return nil
		}
	}
	return fmt.Errorf("accordion %q did not open", a.name)
}

// Close collapses the panel body.
func (a *Accordion) Close() error {
	opened, err := a.IsOpened()
	if err != nil || !opened {
		return err
	}
	if err := a.Click(); err != nil {
		return err
	}
	return waitUntil(defaultWaitTimeout, func() (bool, error) {
		opened, err := a.IsOpened()
		return !opened, err
	})
}

// Content returns the text of the panel body.
func (a *Accordion) Content() (string, error) {
	return elementText(a.content())
}
