package weekly

import (
	"fmt"
	"time"
)

// Week is the exhibition week the showings must fit in.
type Week struct {
	Start time.Weekday
}

// DefaultWeek runs Wednesday to Tuesday.
var DefaultWeek = Week{Start: time.Wednesday}

// offset is the position of d inside the week, 0 being the start day.
func (w Week) offset(d time.Time) int {
	return (int(WeekdayOf(d)) - int(FromTimeWeekday(w.Start)) + daysInWeek) % daysInWeek
}

// Validate fails when the dates cannot belong to a single exhibition week.
// A range may be partial, but it must not start on the last day of a week
// and it must not start on the day before that and run into the next week.
func (w Week) Validate(dates []time.Time) error {
	if len(dates) == 0 {
		return fmt.Errorf("%w: no dates to validate", ErrInvalidInput)
	}
	days := uniqueDates(dates)
	first, last := days[0], days[len(days)-1]
	if last.Sub(first) >= daysInWeek*24*time.Hour {
		return &RangeError{First: first, Last: last, Reason: "more days than a movie week"}
	}
	if first.Equal(last) {
		return nil
	}
	start, end := w.offset(first), w.offset(last)
	if start == daysInWeek-1 || (start == daysInWeek-2 && end < daysInWeek-2) {
		return &RangeError{
			First:  first,
			Last:   last,
			Reason: fmt.Sprintf("should not start before %s or end after %s", frenchDays[FromTimeWeekday(w.Start)], frenchDays[(FromTimeWeekday(w.Start)+daysInWeek-1)%daysInWeek]),
		}
	}
	return nil
}
