package patternfly

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// Default timing for widgets that have to wait out CSS transitions or
// lazily-loaded tree nodes.
const (
	defaultWaitTimeout  = 10 * time.Second
	defaultWaitInterval = 200 * time.Millisecond

	// retryAttempts bounds re-reads of widgets whose elements get
	// replaced underneath us, like dismissible notifications.
	retryAttempts = 10
)

// View scopes widget locators to a region of the page. The zero root is the
// whole document.
type View struct {
	root playwright.Locator
	log  zerolog.Logger
}

// ViewOption customizes a View.
type ViewOption func(*View)

// WithRoot restricts the view to the first element matched by selector
// (CSS or "xpath=..." prefixed).
func WithRoot(selector string) ViewOption {
	return func(v *View) {
		v.root = v.root.Locator(selector).First()
	}
}

// WithLogger attaches a structured logger; widget interactions are logged at
// debug/info level the way a page object narrates its own clicks.
func WithLogger(log zerolog.Logger) ViewOption {
	return func(v *View) {
		v.log = log
	}
}

// NewView creates a view over the whole document of page.
func NewView(page playwright.Page, opts ...ViewOption) *View {
	v := &View{
		root: page.Locator("html"),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Nested returns a sub-view rooted at the first element matched by selector,
// inheriting the logger.
func (v *View) Nested(selector string) *View {
	return &View{root: v.root.Locator(selector).First(), log: v.log}
}

// Text returns the whitespace-normalized text of the view's root element.
func (v *View) Text() (string, error) {
	return elementText(v.root)
}

// IsDisplayed reports whether the view's root element is visible.
func (v *View) IsDisplayed() (bool, error) {
	return v.root.IsVisible()
}

// xp resolves a relative XPath expression against the view root.
func (v *View) xp(expr string) playwright.Locator {
	return v.root.Locator("xpath=" + expr)
}

// childXP resolves a relative XPath expression against an arbitrary scope.
func childXP(scope playwright.Locator, expr string) playwright.Locator {
	return scope.Locator("xpath=" + expr)
}

// elementClasses reads the class attribute of the first matched element and
// splits it into fields.
func elementClasses(loc playwright.Locator) ([]string, error) {
	cls, err := loc.GetAttribute("class")
	if err != nil {
		return nil, fmt.Errorf("failed to read class attribute: %w", err)
	}
	return strings.Fields(cls), nil
}

// hasClass reports whether the first matched element carries the class.
func hasClass(loc playwright.Locator, name string) (bool, error) {
	classes, err := elementClasses(loc)
	if err != nil {
		return false, err
	}
	for _, c := range classes {
		if c == name {
			return true, nil
		}
	}
	return false, nil
}

// exists reports whether the locator matches at least one element.
func exists(loc playwright.Locator) (bool, error) {
	n, err := loc.Count()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// normalizeSpace collapses runs of whitespace, matching what
// normalize-space() does in the locators.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// elementText reads the text of the first matched element, whitespace
// normalized. It goes through textContent so hidden elements, like items
// of a closed menu, still read correctly.
func elementText(loc playwright.Locator) (string, error) {
	s, err := loc.TextContent()
	if err != nil {
		return "", err
	}
	return normalizeSpace(s), nil
}

// elementTexts reads the text of every matched element.
func elementTexts(loc playwright.Locator) ([]string, error) {
	els, err := loc.All()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(els))
	for _, el := range els {
		s, err := el.TextContent()
		if err != nil {
			return nil, err
		}
		out = append(out, normalizeSpace(s))
	}
	return out, nil
}

// waitUntil polls cond until it returns true or the timeout elapses.
func waitUntil(timeout time.Duration, cond func() (bool, error)) error {
	deadline := time.Now().Add(timeout)
	for {
		ok, err := cond()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("condition not met within %s", timeout)
		}
		time.Sleep(defaultWaitInterval)
	}
}

// retryDetached retries op a bounded number of times when it fails because an
// element detached from the DOM mid-operation, e.g. a notification dismissed
// while it is being read.
func retryDetached(attempts int, op func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = op()
		if err == nil {
			return nil
		}
		if !isDetachedError(err) {
			return err
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}

func isDetachedError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "not attached") ||
		strings.Contains(msg, "detached") ||
		strings.Contains(msg, "strict mode violation") ||
		strings.Contains(msg, "element was removed")
}
