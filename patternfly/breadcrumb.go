package patternfly

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// BreadCrumb is the breadcrumb trail at the top of a page.
type BreadCrumb struct {
	root playwright.Locator
	log  zerolog.Logger
}

// BreadCrumb constructs the widget for the first breadcrumb in the view.
func (v *View) BreadCrumb() *BreadCrumb {
	return &BreadCrumb{
		root: v.xp(`.//ol[contains(@class, "breadcrumb")]`).First(),
		log:  v.log,
	}
}

// IsDisplayed reports whether the breadcrumb is visible.
func (b *BreadCrumb) IsDisplayed() (bool, error) {
	return b.root.IsVisible()
}

// Locations returns the text of every breadcrumb entry.
func (b *BreadCrumb) Locations() ([]string, error) {
	return elementTexts(childXP(b.root, ".//li"))
}

// ActiveLocation returns the text of the current location, or "" when no
// entry is marked active.
func (b *BreadCrumb) ActiveLocation() (string, error) {
	active := childXP(b.root, `.//li[contains(@class, "active")]`)
	ok, err := exists(active)
	if err != nil || !ok {
		return "", err
	}
	return elementText(active.First())
}

// ClickLocation clicks the breadcrumb link with the given text.
func (b *BreadCrumb) ClickLocation(name string) error {
	link := childXP(b.root, fmt.Sprintf(".//a[normalize-space(.)=%s]", Quote(name)))
	ok, err := exists(link)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("breadcrumb: no location %q", name)
	}
	return link.First().Click()
}
