package showtimes

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"seances/internal/weekly"
)

// Accepted start/end layouts, most specific first.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04",
}

// ParseDateTime reads a showtime timestamp in loc. Timestamps carrying an
// offset are converted to loc so every showing is compacted on the same clock.
func ParseDateTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date time %q", raw)
}

// ParseDay reads "2006-01-02" or "02/01/2006".
func ParseDay(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid day %q", raw)
}

type Showtime struct {
	weekly.Schedule
	Movie MovieVersion
}

func (s Showtime) Day() time.Time {
	return truncateDay(s.Start)
}

// HourString renders "14:05".
func (s Showtime) HourString() string {
	return s.Start.Format("15:04")
}

func (s Showtime) EndHourString() string {
	return s.EndOrDefault().Format("15:04")
}

// HourShort renders "14h05".
func (s Showtime) HourShort() string {
	return weekly.ShortTime(s.Clock())
}

// DateString renders "02/01/2024 14:05".
func (s Showtime) DateString() string {
	return s.Start.Format("02/01/2006 15:04")
}

func (s Showtime) EndDateString() string {
	return s.EndOrDefault().Format("02/01/2006 15:04")
}

// DayString is the French weekday name.
func (s Showtime) DayString() string {
	return weekly.WeekdayOf(s.Start).French()
}

// StartEndUTC renders "20240102T140500/20240102T161000" for calendar links.
func (s Showtime) StartEndUTC() string {
	const layout = "20060102T150405"
	return s.Start.Format(layout) + "/" + s.EndOrDefault().Format(layout)
}

func (s Showtime) String() string {
	return fmt.Sprintf("%s : %s", s.DateString(), s.Movie)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// OfDay keeps the showtimes starting on day.
func OfDay(showtimes []Showtime, day time.Time) []Showtime {
	out := make([]Showtime, 0, len(showtimes))
	for _, s := range showtimes {
		if sameDay(s.Start, day) {
			out = append(out, s)
		}
	}
	return out
}

// AvailableDates lists the distinct days with at least one showtime, ascending.
func AvailableDates(showtimes []Showtime) []time.Time {
	seen := make(map[string]bool)
	out := make([]time.Time, 0)
	for _, s := range showtimes {
		key := s.Start.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s.Day())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// DayGroup is a list of hours shared by several days.
type DayGroup struct {
	Hours string      `json:"hours"`
	Days  []time.Time `json:"days"`
}

// GroupPerSchedule gathers the days having exactly the same hours,
// ordered by their first day.
func GroupPerSchedule(showtimes []Showtime) []DayGroup {
	groups := make([]DayGroup, 0)
	index := make(map[string]int)
	for _, day := range AvailableDates(showtimes) {
		ofDay := OfDay(showtimes, day)
		sort.SliceStable(ofDay, func(i, j int) bool {
			return ofDay[i].Clock().Weight() < ofDay[j].Clock().Weight()
		})
		hours := make([]string, 0, len(ofDay))
		for _, s := range ofDay {
			hours = append(hours, s.HourShort())
		}
		key := strings.Join(hours, ", ")
		if i, ok := index[key]; ok {
			groups[i].Days = append(groups[i].Days, day)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, DayGroup{Hours: key, Days: []time.Time{day}})
	}
	return groups
}

// Program compacts the showtimes of one movie over the week.
func Program(c *weekly.Compactor, showtimes []Showtime) (string, error) {
	schedules := make([]weekly.Schedule, 0, len(showtimes))
	for _, s := range showtimes {
		schedules = append(schedules, weekly.NewSchedule(s.Start))
	}
	return c.Format(schedules)
}

var frenchMonths = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

func Month(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return frenchMonths[m-1]
}

// LongDay renders "Mercredi 3 Janvier".
func LongDay(t time.Time) string {
	return fmt.Sprintf("%s %d %s", weekly.WeekdayOf(t).French(), t.Day(), Month(t.Month()))
}
