package tracker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffDays(t *testing.T) {
	d, ok := DiffDays("2026-08-01", "2026-08-15")
	require.True(t, ok)
	require.Equal(t, 14, d)

	d, ok = DiffDays("2026-08-15", "2026-08-01")
	require.True(t, ok)
	require.Equal(t, -14, d)

	d, ok = DiffDays("2026-08-15", "2026-08-15")
	require.True(t, ok)
	require.Equal(t, 0, d)

	_, ok = DiffDays("", "2026-08-15")
	require.False(t, ok)
	_, ok = DiffDays("2026-08-15", "not-a-date")
	require.False(t, ok)
}

// 2026-08-21 is a Friday.
func TestDiffBizDaysSkipsWeekends(t *testing.T) {
	d, ok := DiffBizDays("2026-08-21", "2026-08-24")
	require.True(t, ok)
	require.Equal(t, 1, d, "Friday to Monday is one business day")

	d, ok = DiffBizDays("2026-08-21", "2026-08-25")
	require.True(t, ok)
	require.Equal(t, 2, d)

	d, ok = DiffBizDays("2026-08-24", "2026-08-28")
	require.True(t, ok)
	require.Equal(t, 4, d, "full work week minus the start day")

	d, ok = DiffBizDays("2026-08-22", "2026-08-23")
	require.True(t, ok)
	require.Equal(t, 0, d, "Saturday to Sunday has no business days")
}

func TestDiffBizDaysSameDayAndReversed(t *testing.T) {
	d, ok := DiffBizDays("2026-08-24", "2026-08-24")
	require.True(t, ok)
	require.Equal(t, 0, d)

	d, ok = DiffBizDays("2026-08-25", "2026-08-21")
	require.True(t, ok)
	require.Equal(t, -2, d)
}

func TestDiffBizDaysBadInput(t *testing.T) {
	_, ok := DiffBizDays("", "2026-08-24")
	require.False(t, ok)
	_, ok = DiffBizDays("2026-08-24", "")
	require.False(t, ok)
}
