package patternfly

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// Modal is a Bootstrap modal dialog. Widgets inside it are reached through
// Body, which scopes a nested view to the dialog.
type Modal struct {
	root playwright.Locator
	log  zerolog.Logger
}

// ModalByID constructs the widget for the modal with the given element id.
func (v *View) ModalByID(id string) *Modal {
	expr := fmt.Sprintf(
		`.//div[@id=%s and contains(@class, "modal") and @role="dialog"]`, Quote(id))
	return &Modal{root: v.xp(expr).First(), log: v.log}
}

// Modal constructs the widget for the first modal dialog in the view.
func (v *View) Modal() *Modal {
	return &Modal{
		root: v.xp(`.//div[contains(@class, "modal") and @role="dialog"]`).First(),
		log:  v.log,
	}
}

// IsOpen reports whether the dialog is shown. Bootstrap keeps closed
// modals in the DOM with the "in" class removed.
func (m *Modal) IsOpen() (bool, error) {
	in, err := hasClass(m.root, "in")
	if err != nil || !in {
		return false, err
	}
	return m.root.IsVisible()
}

// IsDisplayed reports whether the dialog is shown.
func (m *Modal) IsDisplayed() (bool, error) {
	return m.IsOpen()
}

// Title returns the dialog's title text.
func (m *Modal) Title() (string, error) {
	return elementText(childXP(m.root, `.//*[contains(@class, "modal-title")]`))
}

// Close dismisses the dialog through the header close button and waits
// for it to disappear.
func (m *Modal) Close() error {
	if err := childXP(m.root,
		`.//div[contains(@class, "modal-header")]/button[contains(@class, "close")]`).Click(); err != nil {
		return err
	}
	return waitUntil(defaultWaitTimeout, func() (bool, error) {
		open, err := m.IsOpen()
		return !open, err
	})
}

// Dismiss cancels the dialog through the footer's dismiss button and
// waits for it to disappear.
func (m *Modal) Dismiss() error {
	btn := childXP(m.root,
		`.//div[contains(@class, "modal-footer")]/button[@data-dismiss="modal" or normalize-space(.)="Cancel"]`)
	if err := btn.First().Click(); err != nil {
		return err
	}
	return waitUntil(defaultWaitTimeout, func() (bool, error) {
		open, err := m.IsOpen()
		return !open, err
	})
}

// Accept clicks the footer's primary button.
func (m *Modal) Accept() error {
	return childXP(m.root,
		`.//div[contains(@class, "modal-footer")]/button[contains(@class, "btn-primary")]`).First().Click()
}

// FooterButton clicks the footer button with the given text.
func (m *Modal) FooterButton(text string) error {
	btn := childXP(m.root, fmt.Sprintf(
		`.//div[contains(@class, "modal-footer")]/button[normalize-space(.)=%s]`, Quote(text)))
	ok, err := exists(btn)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("modal: no footer button %q", text)
	}
	return btn.First().Click()
}

// Body returns a view scoped to the dialog body, for reaching the widgets
// inside it.
func (m *Modal) Body() *View {
	return &View{
		root: childXP(m.root, `.//div[contains(@class, "modal-body")]`).First(),
		log:  m.log,
	}
}

// AboutModal is the PatternFly about dialog with product version entries
// and trademark text.
type AboutModal struct {
	root playwright.Locator
	log  zerolog.Logger
}

// AboutModal constructs the widget for the about dialog with the given
// element id.
func (v *View) AboutModal(id string) *AboutModal {
	expr := fmt.Sprintf(`.//div[@id=%s and contains(@class, "modal")]`, Quote(id))
	return &AboutModal{root: v.xp(expr).First(), log: v.log}
}

// IsOpen reports whether the dialog is shown.
func (m *AboutModal) IsOpen() (bool, error) {
	in, err := hasClass(m.root, "in")
	if err != nil || !in {
		return false, err
	}
	return m.root.IsVisible()
}

// IsDisplayed reports whether the dialog is shown.
func (m *AboutModal) IsDisplayed() (bool, error) {
	return m.IsOpen()
}

// Close dismisses the dialog and waits for it to disappear.
func (m *AboutModal) Close() error {
	if err := childXP(m.root,
		`.//div[@class="modal-header"]/button[contains(@class, "close")]`).Click(); err != nil {
		return err
	}
	return waitUntil(defaultWaitTimeout, func() (bool, error) {
		open, err := m.IsOpen()
		return !open, err
	})
}

// Title returns the product title shown in the dialog.
func (m *AboutModal) Title() (string, error) {
	return elementText(childXP(m.root, ".//h1"))
}

// Trademark returns the trademark line at the bottom of the dialog.
func (m *AboutModal) Trademark() (string, error) {
	return elementText(childXP(m.root, `.//div[@class="trademark-pf"]`))
}

// Items returns the product version entries as a label-to-value map.
func (m *AboutModal) Items() (map[string]string, error) {
	entries, err := childXP(m.root, `.//div[contains(@class, "product-versions-pf")]//li`).All()
	if err != nil {
		return nil, err
	}
	items := make(map[string]string, len(entries))
	for _, entry := range entries {
		label, err := elementText(childXP(entry, "./strong"))
		if err != nil {
			return nil, err
		}
		full, err := elementText(entry)
		if err != nil {
			return nil, err
		}
		items[label] = strings.TrimSpace(strings.TrimPrefix(full, label))
	}
	return items, nil
}
