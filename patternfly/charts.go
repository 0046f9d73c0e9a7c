package patternfly

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// The c3 chart widgets read their data by hovering the per-point event
// rectangles and scraping the tooltip c3 renders for them.
const (
	chartRects   = `.//*[contains(@class, "c3-event-rects c3-event-rects-single")]//*`
	chartTooltip = `.//div[contains(@class, "c3-tooltip-container")]`
	chartXTicks  = `.//*[contains(@class, "c3-axis c3-axis-x")]/*[contains(@class, "tick")]`
	chartLegends = `.//*[contains(@class, "c3-legend-item c3-legend-item-")]`
)

// SparkLineChart is the PatternFly spark line: a compact c3 chart whose
// tooltip holds a single value per point.
type SparkLineChart struct {
	root playwright.Locator
	log  zerolog.Logger
	id   string
}

// SparkLineChart constructs the widget for the chart with the given
// element id.
func (v *View) SparkLineChart(id string) *SparkLineChart {
	expr := fmt.Sprintf(`.//div[@id=%s]`, Quote(id))
	return &SparkLineChart{root: v.xp(expr).First(), log: v.log, id: id}
}

// IsDisplayed reports whether the chart is visible.
func (c *SparkLineChart) IsDisplayed() (bool, error) {
	return c.root.IsVisible()
}

// Read hovers every data point and returns the tooltip text for each.
func (c *SparkLineChart) Read() ([]string, error) {
	rects, err := childXP(c.root, chartRects).All()
	if err != nil {
		return nil, err
	}
	var data []string
	for _, rect := range rects {
		if err := rect.Hover(); err != nil {
			return nil, err
		}
		text, err := elementText(childXP(c.root, chartTooltip))
		if err != nil {
			return nil, err
		}
		data = append(data, text)
	}
	return data, nil
}

// SingleLineChart is a c3 line chart with an x axis. Its tooltip is a
// table mapping series names to values for the hovered point.
type SingleLineChart struct {
	root playwright.Locator
	log  zerolog.Logger
	id   string
}

// SingleLineChart constructs the widget for the chart with the given
// element id.
func (v *View) SingleLineChart(id string) *SingleLineChart {
	expr := fmt.Sprintf(`.//div[@id=%s]`, Quote(id))
	return &SingleLineChart{root: v.xp(expr).First(), log: v.log, id: id}
}

// IsDisplayed reports whether the chart is visible.
func (c *SingleLineChart) IsDisplayed() (bool, error) {
	return c.root.IsVisible()
}

// xPoints pairs each x-axis tick label with the event rectangle covering
// that point, in axis order.
func (c *SingleLineChart) xPoints() ([]string, []playwright.Locator, error) {
	ticks, err := childXP(c.root, chartXTicks).All()
	if err != nil {
		return nil, nil, err
	}
	rects, err := childXP(c.root, chartRects).All()
	if err != nil {
		return nil, nil, err
	}
	var labels []string
	for _, tick := range ticks {
		label, err := tick.TextContent()
		if err != nil {
			return nil, nil, err
		}
		labels = append(labels, label)
	}
	if len(rects) < len(labels) {
		labels = labels[:len(rects)]
	}
	return labels, rects[:len(labels)], nil
}

// tooltipValues hovers the rectangle and parses the tooltip table into a
// series-to-value map, returning the tooltip header as the x label.
func (c *SingleLineChart) tooltipValues(rect playwright.Locator) (string, map[string]string, error) {
	if err := rect.Hover(); err != nil {
		return "", nil, err
	}
	tooltip := childXP(c.root, chartTooltip)
	header := ""
	th := childXP(tooltip, `.//table//th`)
	if ok, err := exists(th); err != nil {
		return "", nil, err
	} else if ok {
		if header, err = elementText(th.First()); err != nil {
			return "", nil, err
		}
	}
	rows, err := childXP(tooltip, `.//table//tr[td]`).All()
	if err != nil {
		return "", nil, err
	}
	values := map[string]string{}
	for _, row := range rows {
		name, err := elementText(childXP(row, "./td[1]"))
		if err != nil {
			return "", nil, err
		}
		value, err := elementText(childXP(row, "./td[2]"))
		if err != nil {
			return "", nil, err
		}
		values[name] = value
	}
	return header, values, nil
}

// Read hovers every x-axis point and returns the chart data keyed by the
// point's label.
func (c *SingleLineChart) Read() (map[string]map[string]string, error) {
	labels, rects, err := c.xPoints()
	if err != nil {
		return nil, err
	}
	data := map[string]map[string]string{}
	for i, rect := range rects {
		header, values, err := c.tooltipValues(rect)
		if err != nil {
			return nil, err
		}
		key := header
		if key == "" {
			key = labels[i]
		}
		data[key] = values
	}
	return data, nil
}

// GetValues returns the series values for one x-axis point.
func (c *SingleLineChart) GetValues(xAxis string) (map[string]string, error) {
	labels, rects, err := c.xPoints()
	if err != nil {
		return nil, err
	}
	for i, label := range labels {
		if label == xAxis {
			_, values, err := c.tooltipValues(rects[i])
			return values, err
		}
	}
	return nil, fmt.Errorf("chart %q: no x-axis point %q", c.id, xAxis)
}

// LineChart is a multi-series c3 line chart with a clickable legend per
// series.
type LineChart struct {
	SingleLineChart
}

// LineChart constructs the widget for the chart with the given element id.
func (v *View) LineChart(id string) *LineChart {
	expr := fmt.Sprintf(`.//div[@id=%s]`, Quote(id))
	return &LineChart{SingleLineChart{root: v.xp(expr).First(), log: v.log, id: id}}
}

// Legends returns the name of every legend entry.
func (c *LineChart) Legends() ([]string, error) {
	return elementTexts(childXP(c.root, chartLegends))
}

func (c *LineChart) legend(name string) (playwright.Locator, error) {
	legends, err := childXP(c.root, chartLegends).All()
	if err != nil {
		return nil, err
	}
	for _, legend := range legends {
		text, err := elementText(legend)
		if err != nil {
			return nil, err
		}
		if text == name {
			return legend, nil
		}
	}
	return nil, fmt.Errorf("chart %q: no legend %q", c.id, name)
}

func legendDisplayed(legend playwright.Locator) (bool, error) {
	hidden, err := hasClass(legend, "c3-legend-item-hidden")
	return !hidden, err
}

// LegendIsDisplayed reports whether the series behind the legend entry is
// currently shown.
func (c *LineChart) LegendIsDisplayed(name string) (bool, error) {
	legend, err := c.legend(name)
	if err != nil {
		return false, nil
	}
	return legendDisplayed(legend)
}

func (c *LineChart) setAllLegends(show bool) error {
	legends, err := childXP(c.root, chartLegends).All()
	if err != nil {
		return err
	}
	for _, legend := range legends {
		displayed, err := legendDisplayed(legend)
		if err != nil {
			return err
		}
		if displayed != show {
			if err := legend.Click(); err != nil {
				return err
			}
		}
	}
	return nil
}

// HideAllLegends toggles every shown series off.
func (c *LineChart) HideAllLegends() error {
	return c.setAllLegends(false)
}

// DisplayAllLegends toggles every hidden series on.
func (c *LineChart) DisplayAllLegends() error {
	return c.setAllLegends(true)
}

func (c *LineChart) setLegends(show bool, names []string) error {
	for _, name := range names {
		legend, err := c.legend(name)
		if err != nil {
			return err
		}
		displayed, err := legendDisplayed(legend)
		if err != nil {
			return err
		}
		if displayed != show {
			if err := legend.Click(); err != nil {
				return err
			}
		}
	}
	return nil
}

// DisplayLegends toggles the named series on.
func (c *LineChart) DisplayLegends(names ...string) error {
	return c.setLegends(true, names)
}

// HideLegends toggles the named series off.
func (c *LineChart) HideLegends(names ...string) error {
	return c.setLegends(false, names)
}

// GetDataForLegends reads the chart with only the named series shown.
func (c *LineChart) GetDataForLegends(names ...string) (map[string]map[string]string, error) {
	if err := c.HideAllLegends(); err != nil {
		return nil, err
	}
	if err := c.DisplayLegends(names...); err != nil {
		return nil, err
	}
	return c.SingleLineChart.Read()
}

// Read shows every series and reads the whole chart.
func (c *LineChart) Read() (map[string]map[string]string, error) {
	if err := c.DisplayAllLegends(); err != nil {
		return nil, err
	}
	return c.SingleLineChart.Read()
}

// SingleSplineChart is a spline-rendered SingleLineChart.
type SingleSplineChart = SingleLineChart

// BarChart is a vertical or horizontal bar chart without legends.
type BarChart = SingleLineChart

// SplineChart is a spline-rendered LineChart.
type SplineChart = LineChart

// GroupedBarChart is a grouped or stacked bar chart with legends.
type GroupedBarChart = LineChart

// SingleSplineChart constructs the widget for the chart with the given
// element id.
func (v *View) SingleSplineChart(id string) *SingleSplineChart { return v.SingleLineChart(id) }

// BarChart constructs the widget for the chart with the given element id.
func (v *View) BarChart(id string) *BarChart { return v.SingleLineChart(id) }

// SplineChart constructs the widget for the chart with the given element id.
func (v *View) SplineChart(id string) *SplineChart { return v.LineChart(id) }

// GroupedBarChart constructs the widget for the chart with the given
// element id.
func (v *View) GroupedBarChart(id string) *GroupedBarChart { return v.LineChart(id) }
