package model

import "time"

// ContributionDay is a single day in a contribution calendar.
type ContributionDay struct {
	// Date is the ISO calendar date, e.g. "2025-03-14".
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ContributionCalendar is a full year of contribution activity. Days are
// in chronological order and cover every day the source calendar reports
// for the year; consumers must not truncate or reorder them.
type ContributionCalendar struct {
	Year  int               `json:"year"`
	Total int               `json:"total"`
	Days  []ContributionDay `json:"days"`
}

// LeadingWeekdayOffset returns the weekday index (Sunday = 0) of the
// first day. Heatmap renderers use it to pad the first week column: a
// year rarely starts on a Sunday, so without the offset every later
// column would shift and weekday rows would misalign.
func (c *ContributionCalendar) LeadingWeekdayOffset() int {
	if len(c.Days) == 0 {
		return 0
	}
	t, err := time.Parse("2006-01-02", c.Days[0].Date)
	if err != nil {
		return 0
	}
	return int(t.Weekday())
}

// MaxDailyCount returns the highest single-day count, used to scale
// heatmap intensity.
func (c *ContributionCalendar) MaxDailyCount() int {
	max := 0
	for _, d := range c.Days {
		if d.Count > max {
			max = d.Count
		}
	}
	return max
}
