package patternfly

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// StatusNotification is one notification inside an aggregate status card's
// body: an icon plus an optional count, sometimes wrapped in an anchor.
type StatusNotification struct {
	root playwright.Locator
}

// Icon returns the notification's icon, or IconNone when it has none.
func (n *StatusNotification) Icon() (Icon, error) {
	return iconFromElement(n.root)
}

// Text returns the text shown next to the icon, usually a count. It is ""
// for icon-only notifications.
func (n *StatusNotification) Text() (string, error) {
	return elementText(n.root)
}

// Click clicks the notification's anchor. Notifications without an anchor
// cannot be clicked.
func (n *StatusNotification) Click() error {
	anchor := childXP(n.root, "./a")
	ok, err := exists(anchor)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("status notification has no anchor")
	}
	return anchor.First().Click()
}

// NotificationInfo is the read form of a StatusNotification.
type NotificationInfo struct {
	Icon Icon
	Text string
}

// Read returns the notification's icon and text.
func (n *StatusNotification) Read() (NotificationInfo, error) {
	icon, err := n.Icon()
	if err != nil {
		return NotificationInfo{}, err
	}
	text, err := n.Text()
	if err != nil {
		return NotificationInfo{}, err
	}
	return NotificationInfo{Icon: icon, Text: text}, nil
}

// AggregateStatusCard is the PatternFly dashboard card showing a named
// count, an optional icon and a row of status notifications.
type AggregateStatusCard struct {
	root        playwright.Locator
	log         zerolog.Logger
	name        string
	actionTitle string
}

const aggregateCardLocator = `.//div[contains(@class, "card-pf-aggregate-status") ` +
	`and not(contains(@class, "card-pf-aggregate-status-mini")) ` +
	`and h2[contains(@class, "card-pf-title")]` +
	`//span[normalize-space(following::text())=%s]]`

// StatusCardOption adjusts how an aggregate status card is constructed.
type StatusCardOption func(*AggregateStatusCard)

// WithActionTitle names the title attribute of the card's action anchor,
// making ClickBodyAction usable.
func WithActionTitle(title string) StatusCardOption {
	return func(c *AggregateStatusCard) { c.actionTitle = title }
}

// AggregateStatusCard constructs the widget for the card with the given
// name in its title line.
func (v *View) AggregateStatusCard(name string, opts ...StatusCardOption) *AggregateStatusCard {
	card := &AggregateStatusCard{
		root: v.xp(fmt.Sprintf(aggregateCardLocator, Quote(name))).First(),
		log:  v.log,
		name: name,
	}
	for _, opt := range opts {
		opt(card)
	}
	return card
}

func (c *AggregateStatusCard) title() playwright.Locator {
	return childXP(c.root, `./h2[contains(@class, "card-pf-title")]`)
}

func (c *AggregateStatusCard) body() playwright.Locator {
	return childXP(c.root, `./div[contains(@class, "card-pf-body")]`)
}

// IsDisplayed reports whether the card is visible.
func (c *AggregateStatusCard) IsDisplayed() (bool, error) {
	return c.root.IsVisible()
}

// Name returns the card's configured name.
func (c *AggregateStatusCard) Name() string {
	return c.name
}

// Count returns the count from the title line. Cards without a count
// element report -1.
func (c *AggregateStatusCard) Count() (int, error) {
	count := childXP(c.title(), `.//span[contains(@class, "card-pf-aggregate-status-count")]`)
	ok, err := exists(count)
	if err != nil {
		return -1, err
	}
	if !ok {
		return -1, nil
	}
	text, err := elementText(count.First())
	if err != nil {
		return -1, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return -1, fmt.Errorf("status card %q: count %q: %w", c.name, text, err)
	}
	return n, nil
}

// Icon returns the title icon, or IconNone when the title shows none.
func (c *AggregateStatusCard) Icon() (Icon, error) {
	return iconFromElement(c.title())
}

// Notifications returns the status notifications in the card body.
func (c *AggregateStatusCard) Notifications() ([]*StatusNotification, error) {
	notes, err := childXP(c.body(),
		`./p[contains(@class, "card-pf-aggregate-status-notifications")]`+
			`//span[contains(@class, "card-pf-aggregate-status-notification")]`).All()
	if err != nil {
		return nil, err
	}
	notifications := make([]*StatusNotification, 0, len(notes))
	for _, note := range notes {
		notifications = append(notifications, &StatusNotification{root: note})
	}
	return notifications, nil
}

// StatusCardInfo is the read form of an AggregateStatusCard.
type StatusCardInfo struct {
	Name          string
	Count         int
	Icon          Icon
	Notifications []NotificationInfo
}

// Read returns the card's name, count, icon and notifications in one go.
func (c *AggregateStatusCard) Read() (StatusCardInfo, error) {
	info := StatusCardInfo{Name: c.name}
	var err error
	if info.Count, err = c.Count(); err != nil {
		return StatusCardInfo{}, err
	}
	if info.Icon, err = c.Icon(); err != nil {
		return StatusCardInfo{}, err
	}
	notes, err := c.Notifications()
	if err != nil {
		return StatusCardInfo{}, err
	}
	for _, note := range notes {
		read, err := note.Read()
		if err != nil {
			return StatusCardInfo{}, err
		}
		info.Notifications = append(info.Notifications, read)
	}
	return info, nil
}

// ClickTitle clicks the anchor wrapping the title line.
func (c *AggregateStatusCard) ClickTitle() error {
	return childXP(c.title(), "./a").Click()
}

// ClickBodyAction clicks the action anchor in the card body. It requires
// the card to be constructed with WithActionTitle.
func (c *AggregateStatusCard) ClickBodyAction() error {
	if c.actionTitle == "" {
		return fmt.Errorf("status card %q: no action title configured", c.name)
	}
	q := Quote(c.actionTitle)
	return childXP(c.root,
		fmt.Sprintf(`.//a[@title=%s or @data-original-title=%s]`, q, q)).Click()
}

// AggregateStatusMiniCard is the compact variant of the aggregate status
// card.
type AggregateStatusMiniCard struct {
	AggregateStatusCard
}

const aggregateMiniCardLocator = `.//div[contains(@class, "card-pf-aggregate-status") ` +
	`and contains(@class, "card-pf-aggregate-status-mini") ` +
	`and h2[contains(@class, "card-pf-title")]` +
	`//span[normalize-space(following::text())=%s]]`

// AggregateStatusMiniCard constructs the widget for the mini card with the
// given name.
func (v *View) AggregateStatusMiniCard(name string, opts ...StatusCardOption) *AggregateStatusMiniCard {
	card := &AggregateStatusMiniCard{AggregateStatusCard{
		root: v.xp(fmt.Sprintf(aggregateMiniCardLocator, Quote(name))).First(),
		log:  v.log,
		name: name,
	}}
	for _, opt := range opts {
		opt(&card.AggregateStatusCard)
	}
	return card
}
