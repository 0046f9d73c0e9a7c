package patternfly

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// defaultDateLayout is the bootstrap-datepicker default display format.
const defaultDateLayout = "01/02/2006"

// DatePicker is a bootstrap-datepicker bound to a text input. Read-only
// pickers are driven through the attached panel instead of the input.
type DatePicker struct {
	page   playwright.Locator
	input  playwright.Locator
	log    zerolog.Logger
	name   string
	layout string
}

// DatePickerOption adjusts how a DatePicker is constructed.
type DatePickerOption func(*DatePicker)

// WithDateLayout sets the time layout used to parse and format the
// input's value.
func WithDateLayout(layout string) DatePickerOption {
	return func(d *DatePicker) { d.layout = layout }
}

// DatePickerByName constructs the widget for the input with the given name.
func (v *View) DatePickerByName(name string, opts ...DatePickerOption) *DatePicker {
	expr := fmt.Sprintf(`.//input[@name=%s]`, Quote(name))
	return newDatePicker(v, v.xp(expr).First(), name, opts)
}

// DatePickerByID constructs the widget for the input with the given id.
func (v *View) DatePickerByID(id string, opts ...DatePickerOption) *DatePicker {
	expr := fmt.Sprintf(`.//input[@id=%s]`, Quote(id))
	return newDatePicker(v, v.xp(expr).First(), id, opts)
}

func newDatePicker(v *View, input playwright.Locator, name string, opts []DatePickerOption) *DatePicker {
	d := &DatePicker{page: v.root, input: input, log: v.log, name: name, layout: defaultDateLayout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DateFormat returns the time layout the picker parses and formats with.
func (d *DatePicker) DateFormat() string {
	return d.layout
}

// IsDisplayed reports whether the input is visible.
func (d *DatePicker) IsDisplayed() (bool, error) {
	return d.input.IsVisible()
}

// IsReadOnly reports whether the input carries the readonly attribute, in
// which case the date can only be changed through the picker panel.
func (d *DatePicker) IsReadOnly() (bool, error) {
	return exists(childXP(d.input, "self::*[@readonly]"))
}

// Read parses the input's value as a date. It returns the zero time when
// the input is empty.
func (d *DatePicker) Read() (time.Time, error) {
	value, err := d.input.InputValue()
	if err != nil {
		return time.Time{}, err
	}
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(d.layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("datepicker %q: %w", d.name, err)
	}
	return parsed, nil
}

// Fill sets the date. Writable pickers take the value through the input;
// read-only ones are driven through the panel.
func (d *DatePicker) Fill(value time.Time) error {
	readOnly, err := d.IsReadOnly()
	if err != nil {
		return err
	}
	d.log.Debug().Str("datepicker", d.name).Time("value", value).Msg("filling date")
	if readOnly {
		return d.fillViaPanel(value)
	}
	return d.input.Fill(value.Format(d.layout))
}

// Open clicks the input so the attached picker panel appears.
func (d *DatePicker) Open() error {
	return d.input.Click()
}

func (d *DatePicker) panel() playwright.Locator {
	return childXP(d.page,
		`.//div[contains(@class, "datepicker") and contains(@class, "dropdown-menu")]`).First()
}

// fillViaPanel climbs to the decade view, then picks year, month and day.
func (d *DatePicker) fillViaPanel(value time.Time) error {
	if err := d.Open(); err != nil {
		return err
	}
	panel := d.panel()
	for _, view := range []string{"datepicker-days", "datepicker-months"} {
		sw := childXP(panel, fmt.Sprintf(
			`.//div[contains(@class, %s)]//th[contains(@class, "datepicker-switch")]`, Quote(view)))
		if err := sw.First().Click(); err != nil {
			return err
		}
	}
	if err := d.pageToYear(panel, value.Year()); err != nil {
		return err
	}
	year := fmt.Sprintf("%d", value.Year())
	if err := childXP(panel, fmt.Sprintf(
		`.//div[contains(@class, "datepicker-years")]//span[contains(@class, "year") and normalize-space(.)=%s]`,
		Quote(year))).First().Click(); err != nil {
		return err
	}
	month := value.Format("Jan")
	if err := childXP(panel, fmt.Sprintf(
		`.//div[contains(@class, "datepicker-months")]//span[contains(@class, "month") and normalize-space(.)=%s]`,
		Quote(month))).First().Click(); err != nil {
		return err
	}
	day := fmt.Sprintf("%d", value.Day())
	return childXP(panel, fmt.Sprintf(
		`.//div[contains(@class, "datepicker-days")]//td[contains(@class, "day") and not(contains(@class, "old")) and not(contains(@class, "new")) and normalize-space(.)=%s]`,
		Quote(day))).First().Click()
}

// pageToYear pages the decade view until the target year is in range.
func (d *DatePicker) pageToYear(panel playwright.Locator, year int) error {
	view := childXP(panel, `.//div[contains(@class, "datepicker-years")]`).First()
	for i := 0; i < 30; i++ {
		caption, err := elementText(childXP(view, `.//th[contains(@class, "datepicker-switch")]`))
		if err != nil {
			return err
		}
		var from, to int
		if _, err := fmt.Sscanf(caption, "%d-%d", &from, &to); err != nil {
			return fmt.Errorf("datepicker %q: cannot parse decade %q: %w", d.name, caption, err)
		}
		var arrow string
		switch {
		case year < from:
			arrow = "prev"
		case year > to:
			arrow = "next"
		default:
			return nil
		}
		if err := childXP(view, fmt.Sprintf(`.//th[contains(@class, %s)]`, Quote(arrow))).First().Click(); err != nil {
			return err
		}
	}
	return fmt.Errorf("datepicker %q: year %d not reachable by paging", d.name, year)
}
