package validator

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// After accepts times strictly after t.
func After(t time.Time) Rule[time.Time] {
	return newRule("date_after", fmt.Sprintf("date must be after %s", t.Format(dateLayout)), ErrOutOfRange, func(v time.Time) bool {
		return v.After(t)
	})
}

// Before accepts times strictly before t.
func Before(t time.Time) Rule[time.Time] {
	return newRule("date_before", fmt.Sprintf("date must be before %s", t.Format(dateLayout)), ErrOutOfRange, func(v time.Time) bool {
		return v.Before(t)
	})
}

// DateBetween accepts times in [start, end].
func DateBetween(start, end time.Time) Rule[time.Time] {
	message := fmt.Sprintf("date must be between %s and %s", start.Format(dateLayout), end.Format(dateLayout))
	return newRule("date_between", message, ErrOutOfRange, func(v time.Time) bool {
		return !v.Before(start) && !v.After(end)
	})
}

// Past accepts times before now(). Pass time.Now in production and a fixed
// clock in tests.
func Past(now func() time.Time) Rule[time.Time] {
	return newRule("date_past", "date must be in the past", ErrOutOfRange, func(v time.Time) bool {
		return v.Before(now())
	})
}

// Future accepts times after now().
func Future(now func() time.Time) Rule[time.Time] {
	return newRule("date_future", "date must be in the future", ErrOutOfRange, func(v time.Time) bool {
		return v.After(now())
	})
}
