package weekly

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Weekday is a Monday-indexed day of the week.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const daysInWeek = 7

var frenchDays = [daysInWeek]string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

func WeekdayOf(t time.Time) Weekday {
	return FromTimeWeekday(t.Weekday())
}

func FromTimeWeekday(d time.Weekday) Weekday {
	return Weekday((int(d) + 6) % daysInWeek)
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) French() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return frenchDays[d]
}

// Short is the 3-letter French abbreviation.
func (d Weekday) Short() string {
	if !d.Valid() {
		return d.French()
	}
	return frenchDays[d][:3]
}

type RecurrenceKind int

const (
	Daily RecurrenceKind = iota
	PartialWeek
	ExceptWeekdays
)

func (k RecurrenceKind) String() string {
	switch k {
	case Daily:
		return "daily"
	case PartialWeek:
		return "partial"
	case ExceptWeekdays:
		return "except"
	default:
		return fmt.Sprintf("RecurrenceKind(%d)", int(k))
	}
}

// Recurrence describes on which weekdays a showing comes back.
// Days holds the listed days for PartialWeek and the missing days for
// ExceptWeekdays, ascending. It is empty for Daily.
type Recurrence struct {
	Kind RecurrenceKind
	Days []Weekday
}

// Label is the shortest French wording: "", "Lun, Mer" or "sf Sam, Dim".
func (r Recurrence) Label() string {
	names := make([]string, 0, len(r.Days))
	for _, d := range r.Days {
		names = append(names, d.Short())
	}
	switch r.Kind {
	case PartialWeek:
		return strings.Join(names, ", ")
	case ExceptWeekdays:
		return "sf " + strings.Join(names, ", ")
	default:
		return ""
	}
}

func (r Recurrence) String() string {
	if r.Kind == Daily {
		return "tous les jours"
	}
	return r.Label()
}

// CompactDates reduces a set of calendar dates to their weekday recurrence.
func CompactDates(dates []time.Time) (Recurrence, error) {
	if len(dates) == 0 {
		return Recurrence{}, fmt.Errorf("%w: no dates to compact", ErrInvalidInput)
	}
	present := [daysInWeek]bool{}
	for _, d := range uniqueDates(dates) {
		present[WeekdayOf(d)] = true
	}
	var in, out []Weekday
	for d := Monday; d <= Sunday; d++ {
		if present[d] {
			in = append(in, d)
		} else {
			out = append(out, d)
		}
	}
	switch {
	case len(in) == daysInWeek:
		return Recurrence{Kind: Daily}, nil
	case len(in) <= 4:
		return Recurrence{Kind: PartialWeek, Days: in}, nil
	default:
		return Recurrence{Kind: ExceptWeekdays, Days: out}, nil
	}
}

const dateLayout = "2006-01-02"

// dateOf drops the time of day, keeping the calendar date of t in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func uniqueDates(dates []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := dateOf(d)
		if seen[day] {
			continue
		}
		seen[day] = true
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
