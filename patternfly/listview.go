package patternfly

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// ListItem is one entry of a PatternFly list view. Expandable entries
// show an angle icon that toggles their detail row.
type ListItem struct {
	root playwright.Locator
	log  zerolog.Logger
}

// Description returns the text of the entry's description column.
func (i *ListItem) Description() (string, error) {
	return elementText(childXP(i.root, `.//span[contains(@class, "description-column")]`))
}

// Open expands the entry through its expand arrow.
func (i *ListItem) Open() error {
	return childXP(i.root, fmt.Sprintf(`.//span[contains(@class, %s)]`, Quote(string(IconAngleRight)))).Click()
}

// Close collapses the entry through its collapse arrow.
func (i *ListItem) Close() error {
	return childXP(i.root, fmt.Sprintf(`.//span[contains(@class, %s)]`, Quote(string(IconAngleDown)))).Click()
}

// Read returns the entry's full text.
func (i *ListItem) Read() (string, error) {
	return elementText(i.root)
}

// ItemsList is the PatternFly list view, a vertical list of expandable
// entries addressed by position or description.
type ItemsList struct {
	root playwright.Locator
	log  zerolog.Logger
}

// ItemsList constructs the widget for the first list view in the view.
func (v *View) ItemsList() *ItemsList {
	return &ItemsList{
		root: v.xp(`.//div[contains(@class, "list-view-pf-view")]`).First(),
		log:  v.log,
	}
}

// IsDisplayed reports whether the list is visible.
func (l *ItemsList) IsDisplayed() (bool, error) {
	return l.root.IsVisible()
}

// ItemCount returns the number of entries in the list.
func (l *ItemsList) ItemCount() (int, error) {
	return childXP(l.root, `.//div[contains(@class, "list-group-item-header")]`).Count()
}

// Item returns the entry at the given zero-based index.
func (l *ItemsList) Item(index int) *ListItem {
	// Exact class token match, "list-group-item-header" must not qualify.
	expr := fmt.Sprintf(
		`(.//div[contains(concat(" ", normalize-space(@class), " "), " list-group-item ")])[%d]`,
		index+1)
	return &ListItem{root: childXP(l.root, expr).First(), log: l.log}
}

// Items returns every entry in the list.
func (l *ItemsList) Items() ([]*ListItem, error) {
	count, err := l.ItemCount()
	if err != nil {
		return nil, err
	}
	items := make([]*ListItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, l.Item(i))
	}
	return items, nil
}

// ItemByDescription returns the first entry whose description column
// matches the given text.
func (l *ItemsList) ItemByDescription(description string) (*ListItem, error) {
	items, err := l.Items()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		desc, err := item.Description()
		if err != nil {
			return nil, err
		}
		if desc == description {
			return item, nil
		}
	}
	return nil, fmt.Errorf("list view: no item with description %q", description)
}
