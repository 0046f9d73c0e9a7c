package patternfly

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// Bootstrap button style classes usable with WithClasses.
const (
	BtnDefault = "btn-default"
	BtnPrimary = "btn-primary"
	BtnSuccess = "btn-success"
	BtnInfo    = "btn-info"
	BtnWarning = "btn-warning"
	BtnDanger  = "btn-danger"
	BtnLink    = "btn-link"

	BtnLarge      = "btn-lg"
	BtnMedium     = "btn-md"
	BtnSmall      = "btn-sm"
	BtnExtraSmall = "btn-xs"

	BtnBlock = "btn-block"
)

type buttonSpec struct {
	conditions []string
}

// ButtonOption narrows which button a View.Button call matches.
type ButtonOption func(*buttonSpec)

// ByText matches the button by its exact (whitespace-normalized) text.
func ByText(text string) ButtonOption {
	return func(s *buttonSpec) {
		s.conditions = append(s.conditions, "normalize-space(.)="+Quote(text))
	}
}

// ByPartialText matches the button by a substring of its text.
func ByPartialText(text string) ButtonOption {
	return func(s *buttonSpec) {
		s.conditions = append(s.conditions, "contains(normalize-space(.), "+Quote(text)+")")
	}
}

// ByAttr matches the button by an attribute value, e.g. ByAttr("title", "Show xyz").
func ByAttr(name, value string) ButtonOption {
	return func(s *buttonSpec) {
		s.conditions = append(s.conditions, "@"+name+"="+Quote(value))
	}
}

// WithClasses additionally requires the given bootstrap classes on the button.
func WithClasses(classes ...string) ButtonOption {
	return func(s *buttonSpec) {
		for _, c := range classes {
			s.conditions = append(s.conditions, "contains(@class, "+Quote(c)+")")
		}
	}
}

// buttonLocator builds the XPath for a PatternFly/Bootstrap button matching
// the accumulated conditions. With no conditions it matches any button.
func buttonLocator(opts ...ButtonOption) string {
	var spec buttonSpec
	for _, opt := range opts {
		opt(&spec)
	}
	conds := ""
	if len(spec.conditions) > 0 {
		conds = " and (" + strings.Join(spec.conditions, " and ") + ")"
	}
	return `.//*[(self::a or self::button or (self::input and (@type="button" or @type="submit")))` +
		` and contains(@class, "btn")` + conds + `]`
}

// Button is a PatternFly/Bootstrap button. Match it by text, partial text
// and/or attributes, optionally narrowed by the bootstrap style classes:
//
//	view.Button(ByText("Add"), WithClasses(BtnPrimary))
//	view.Button(ByAttr("title", "Show xyz"))
type Button struct {
	root playwright.Locator
	log  zerolog.Logger
}

// Button constructs a button widget scoped to the view.
func (v *View) Button(opts ...ButtonOption) *Button {
	return &Button{
		root: v.xp(buttonLocator(opts...)).First(),
		log:  v.log,
	}
}

// IsDisplayed reports whether the button is visible.
func (b *Button) IsDisplayed() (bool, error) {
	return b.root.IsVisible()
}

// Click clicks the button.
func (b *Button) Click() error {
	b.log.Debug().Msg("clicking button")
	return b.root.Click()
}

// Text returns the button's rendered text.
func (b *Button) Text() (string, error) {
	return elementText(b.root)
}

// Title returns the button's title attribute.
func (b *Button) Title() (string, error) {
	return b.root.GetAttribute("title")
}

// IsActive reports whether the button carries the "active" class.
func (b *Button) IsActive() (bool, error) {
	return hasClass(b.root, "active")
}

// IsDisabled reports whether the button is disabled, via either the
// "disabled" class or the disabled attribute.
func (b *Button) IsDisabled() (bool, error) {
	disabled, err := hasClass(b.root, "disabled")
	if err != nil || disabled {
		return disabled, err
	}
	return b.root.IsDisabled()
}

// Fill clicks the button when value is true. It reports whether a click
// happened, which lets buttons take part in form-style fills.
func (b *Button) Fill(value bool) (bool, error) {
	if !value {
		return false, nil
	}
	if err := b.Click(); err != nil {
		return false, err
	}
	return true, nil
}

// ViewChangeButton is the PatternFly view-selection button: an anchor with a
// title attribute and an "fa" icon child.
type ViewChangeButton struct {
	root playwright.Locator
	log  zerolog.Logger
}

// ViewChangeButton constructs the widget for the given title.
func (v *View) ViewChangeButton(title string) *ViewChangeButton {
	expr := fmt.Sprintf(`.//a[(@title=%s) and i[contains(@class, "fa")]]`, Quote(title))
	return &ViewChangeButton{root: v.xp(expr).First(), log: v.log}
}

// IsDisplayed reports whether the button is visible.
func (b *ViewChangeButton) IsDisplayed() (bool, error) {
	return b.root.IsVisible()
}

// Click clicks the button.
func (b *ViewChangeButton) Click() error {
	return b.root.Click()
}

// IsActive reports whether the enclosing list item carries the "active"
// class, which is how PatternFly marks the current view.
func (b *ViewChangeButton) IsActive() (bool, error) {
	return hasClass(childXP(b.root, ".."), "active")
}
