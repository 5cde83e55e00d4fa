package projection

import (
	"time"

	"budgetcast/internal/models"
)

// occurrenceCounter counts occurrences of an item in a window that has
// already been clipped to the item's active dates. clippedDays is the number
// of whole days between the first and last active day of the window.
type occurrenceCounter func(start time.Time, end *time.Time, rangeStart, rangeEnd time.Time, clippedDays int) int

// counters maps each frequency to its counting rule. Frequencies missing
// from the map count as zero occurrences.
var counters = map[models.Frequency]occurrenceCounter{
	models.FrequencyWeekly:   everyNDays(7),
	models.FrequencyBiweekly: everyNDays(14),
	models.FrequencyMonthly:  presence,
	models.FrequencyYearly:   presence,
}

// OccurrencesInRange returns how many times a recurring item with the given
// start, optional end and frequency occurs within [rangeStart, rangeEnd].
//
// Monthly and yearly items are a presence test: an item active at any point
// of the window counts exactly once, whatever the window length. Callers must
// pass month-long windows for monthly items and year-long windows for yearly
// items.
func OccurrencesInRange(start time.Time, end *time.Time, freq models.Frequency, rangeStart, rangeEnd time.Time) int {
	start = dayOf(start)
	rangeStart = dayOf(rangeStart)
	rangeEnd = dayOf(rangeEnd)
	var until *time.Time
	if end != nil {
		e := dayOf(*end)
		until = &e
	}

	if until != nil && until.Before(rangeStart) {
		return 0
	}

	activeStart := rangeStart
	if start.After(activeStart) {
		activeStart = start
	}
	activeEnd := rangeEnd
	if until != nil && until.Before(activeEnd) {
		activeEnd = *until
	}
	if activeStart.After(activeEnd) {
		return 0
	}

	count, ok := counters[freq]
	if !ok {
		return 0
	}
	return count(start, until, rangeStart, rangeEnd, daysBetween(activeStart, activeEnd))
}

// presence counts 1 when the item is live at any point of the window.
func presence(start time.Time, end *time.Time, rangeStart, rangeEnd time.Time, _ int) int {
	if !start.After(rangeEnd) && (end == nil || !end.Before(rangeStart)) {
		return 1
	}
	return 0
}

// everyNDays counts one occurrence on the first active day and one more per
// full period after it.
func everyNDays(period int) occurrenceCounter {
	return func(_ time.Time, _ *time.Time, _, _ time.Time, clippedDays int) int {
		return clippedDays/period + 1
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// endTime converts an optional end date into the form OccurrencesInRange takes.
func endTime(d *models.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
