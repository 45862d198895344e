package showtimes

import (
	"fmt"
	"strings"
	"time"

	"seances/internal/weekly"
)

// Eligibility keeps showtimes starting after Earliest and ending before Latest.
// A nil bound is not checked.
type Eligibility struct {
	Earliest *weekly.Clock
	Latest   *weekly.Clock
}

// ParseClock reads "HH:MM". An empty string gives a nil clock.
func ParseClock(raw string) (*weekly.Clock, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: expected HH:MM", raw)
	}
	c := weekly.ClockOf(t)
	return &c, nil
}

func NewEligibility(earliest, latest string) (Eligibility, error) {
	e, err := ParseClock(earliest)
	if err != nil {
		return Eligibility{}, err
	}
	l, err := ParseClock(latest)
	if err != nil {
		return Eligibility{}, err
	}
	return Eligibility{Earliest: e, Latest: l}, nil
}

// Allows checks a showtime against the bounds placed on day.
func (e Eligibility) Allows(s Showtime, day time.Time) bool {
	if e.Earliest != nil && !s.Start.After(onDay(day, *e.Earliest, s.Start.Location())) {
		return false
	}
	if e.Latest != nil && !s.EndOrDefault().Before(onDay(day, *e.Latest, s.Start.Location())) {
		return false
	}
	return true
}

func (e Eligibility) Apply(showtimes []Showtime, day time.Time) []Showtime {
	out := make([]Showtime, 0, len(showtimes))
	for _, s := range showtimes {
		if e.Allows(s, day) {
			out = append(out, s)
		}
	}
	return out
}

func onDay(day time.Time, c weekly.Clock, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, loc)
}
