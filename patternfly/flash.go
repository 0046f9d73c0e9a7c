package patternfly

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// Notification types reported by FlashMessage.Type.
const (
	MessageSuccess = "success"
	MessageWarning = "warning"
	MessageError   = "error"
	MessageInfo    = "info"
)

var alertTypeClasses = map[string]string{
	"alert-warning": MessageWarning,
	"alert-success": MessageSuccess,
	"alert-danger":  MessageError,
	"alert-info":    MessageInfo,
}

// FlashMessage is a single PatternFly inline notification.
type FlashMessage struct {
	root playwright.Locator
	log  zerolog.Logger
}

// Text returns the message text of the notification.
func (m *FlashMessage) Text() (string, error) {
	return elementText(childXP(m.root, "./strong"))
}

// Type returns the notification type derived from the alert class.
func (m *FlashMessage) Type() (string, error) {
	classes, err := elementClasses(m.root)
	if err != nil {
		return "", err
	}
	for _, class := range classes {
		if t, ok := alertTypeClasses[class]; ok {
			return t, nil
		}
	}
	return "", fmt.Errorf("flash message: no notification type among classes %v", classes)
}

// Icon returns the pficon name of the notification's icon, without the
// "pficon-" prefix, or "" when there is none.
func (m *FlashMessage) Icon() (string, error) {
	icon := childXP(m.root, `./span[contains(@class, "pficon")]`)
	ok, err := exists(icon)
	if err != nil || !ok {
		return "", err
	}
	classes, err := elementClasses(icon.First())
	if err != nil {
		return "", err
	}
	for _, class := range classes {
		if strings.HasPrefix(class, "pficon-") {
			return strings.TrimPrefix(class, "pficon-"), nil
		}
	}
	return "", nil
}

// Dismiss closes the notification.
func (m *FlashMessage) Dismiss() error {
	text, err := m.Text()
	if err != nil {
		return err
	}
	m.log.Info().Str("text", text).Msg("dismissing notification")
	return childXP(m.root, `./button[contains(@class, "close")]`).Click()
}

// MessageFilter narrows which notifications FlashMessages operations
// apply to. The zero value matches everything.
type MessageFilter struct {
	// Text matches the notification text, as a substring when Partial
	// is set.
	Text    string
	Partial bool
	// Pattern matches the notification text against a regular expression.
	// Takes precedence over Text.
	Pattern *regexp.Regexp
	// Types limits matching to the given notification types.
	Types []string
	// Inverse inverts the whole match.
	Inverse bool
}

func (f MessageFilter) matches(text, typ string) bool {
	match := true
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if t == typ {
				found = true
				break
			}
		}
		match = match && found
	}
	if f.Pattern != nil {
		match = match && f.Pattern.MatchString(text)
	} else if f.Text != "" {
		if f.Partial {
			match = match && strings.Contains(text, f.Text)
		} else {
			match = match && text == f.Text
		}
	}
	if f.Inverse {
		return !match
	}
	return match
}

// FlashMessages is the block holding the page's inline notifications.
type FlashMessages struct {
	root playwright.Locator
	log  zerolog.Logger
}

// FlashMessages constructs the widget for the page's notification block.
func (v *View) FlashMessages() *FlashMessages {
	return &FlashMessages{
		root: v.xp(`.//div[@id="flash_msg_div"]`).First(),
		log:  v.log,
	}
}

func (f *FlashMessages) messageItems() playwright.Locator {
	return childXP(f.root, `./div[contains(@class, "flash_text_div")]/div[contains(@class, "alert")]`)
}

// IsDisplayed reports whether the notification block is visible.
func (f *FlashMessages) IsDisplayed() (bool, error) {
	return f.root.IsVisible()
}

// Count returns the number of notifications currently shown.
func (f *FlashMessages) Count() (int, error) {
	return f.messageItems().Count()
}

// Messages returns the notifications matching the filter. A nil filter
// matches everything.
func (f *FlashMessages) Messages(filter *MessageFilter) ([]*FlashMessage, error) {
	items, err := f.messageItems().All()
	if err != nil {
		return nil, err
	}
	var messages []*FlashMessage
	for _, item := range items {
		msg := &FlashMessage{root: item, log: f.log}
		if filter != nil {
			text, err := msg.Text()
			if err != nil {
				return nil, err
			}
			typ, err := msg.Type()
			if err != nil {
				return nil, err
			}
			if !filter.matches(text, typ) {
				continue
			}
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// Read returns the text of every notification matching the filter.
// Notifications dismissed mid-read detach their elements, so the whole
// read retries from scratch in that case.
func (f *FlashMessages) Read(filter *MessageFilter) ([]string, error) {
	var texts []string
	err := retryDetached(retryAttempts, func() error {
		texts = texts[:0]
		messages, err := f.Messages(filter)
		if err != nil {
			return err
		}
		for _, msg := range messages {
			text, err := msg.Text()
			if err != nil {
				return err
			}
			texts = append(texts, text)
		}
		return nil
	})
	return texts, err
}

// Dismiss closes every notification.
func (f *FlashMessages) Dismiss() error {
	return retryDetached(retryAttempts, func() error {
		messages, err := f.Messages(nil)
		if err != nil {
			return err
		}
		for _, msg := range messages {
			if err := msg.Dismiss(); err != nil {
				return err
			}
		}
		return nil
	})
}

// AssertNoError fails when any error notification is shown, except those
// whose text is listed in ignore.
func (f *FlashMessages) AssertNoError(ignore ...string) error {
	errs, err := f.Read(&MessageFilter{
		Types:   []string{MessageSuccess, MessageInfo, MessageWarning},
		Inverse: true,
	})
	if err != nil {
		return err
	}
	ignored := make(map[string]bool, len(ignore))
	for _, text := range ignore {
		ignored[text] = true
	}
	var unexpected []string
	for _, text := range errs {
		if !ignored[text] {
			unexpected = append(unexpected, text)
		}
	}
	if len(unexpected) > 0 {
		return fmt.Errorf("found error notifications %v", unexpected)
	}
	return nil
}

// AssertMessage fails unless a notification matching the filter is shown.
func (f *FlashMessages) AssertMessage(filter MessageFilter) error {
	matched, err := f.Read(&filter)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		all, err := f.Read(nil)
		if err != nil {
			return err
		}
		return fmt.Errorf("no matching notifications, available: %v", all)
	}
	return nil
}

// AssertSuccessMessage fails unless the given text is shown as a success
// notification and no error notifications are present.
func (f *FlashMessages) AssertSuccessMessage(text string) error {
	if err := f.AssertNoError(); err != nil {
		return err
	}
	return f.AssertMessage(MessageFilter{Text: text, Types: []string{MessageSuccess}})
}
