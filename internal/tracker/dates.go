package tracker

import "time"

// Dates throughout the tracker are ISO yyyy-mm-dd strings; blank means
// unset. All helpers are fail-soft: a blank or malformed date makes the
// calculation report "no data" rather than erroring.

const dayLayout = "2006-01-02"

func Today() string { return time.Now().Format(dayLayout) }

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DiffDays returns whole calendar days from a to b (negative when b is
// earlier). ok is false when either date is blank or malformed.
func DiffDays(a, b string) (days int, ok bool) {
	ta, okA := parseDay(a)
	tb, okB := parseDay(b)
	if !okA || !okB {
		return 0, false
	}
	return int(tb.Sub(ta).Hours() / 24), true
}

// DaysSince returns calendar days from d to today.
func DaysSince(d, today string) (int, bool) {
	return DiffDays(d, today)
}

// DiffBizDays counts Mon-Fri days strictly after a, up to and including b.
// Same-day is 0. Reversed ranges count negatively.
func DiffBizDays(a, b string) (days int, ok bool) {
	ta, okA := parseDay(a)
	tb, okB := parseDay(b)
	if !okA || !okB {
		return 0, false
	}
	if tb.Before(ta) {
		n, _ := DiffBizDays(b, a)
		return -n, true
	}
	count := 0
	for d := ta.AddDate(0, 0, 1); !d.After(tb); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count, true
}

// BizDaysSince returns business days elapsed from d to today.
func BizDaysSince(d, today string) (int, bool) {
	return DiffBizDays(d, today)
}
