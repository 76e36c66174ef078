package performance

import (
	"time"
)

// DayLayout is the ISO calendar-day layout used for all day buckets.
const DayLayout = "2006-01-02"

// DayKey truncates an ISO date or timestamp to its calendar day (YYYY-MM-DD).
// Shorter values are kept as they are; only "" means no date.
func DayKey(s string) string {
	if len(s) < len(DayLayout) {
		return s
	}
	return s[:len(DayLayout)]
}

// OnOrBefore compares two YYYY-MM-DD days as strings, which sorts correctly for this layout.
func OnOrBefore(day, todayIso string) bool {
	return day != "" && day <= todayIso
}

func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// WeekBounds returns the Monday starting the week that contains day, and the
// exclusive end of that week (the following Monday), both at midnight in day's location.
func WeekBounds(day time.Time) (start, end time.Time) {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	offset := (int(midnight.Weekday()) + 6) % 7 // monday = 0
	start = midnight.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 7)
	return start, end
}
