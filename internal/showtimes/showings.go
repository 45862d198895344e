package showtimes

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type FilmShowings struct {
	Title         string    `json:"title"`
	Version       string    `json:"version"`
	Duration      string    `json:"duration"`
	Rating        string    `json:"rating,omitempty"`
	Genres        string    `json:"genres,omitempty"`
	Nationalities []string  `json:"nationalities,omitempty"`
	Showings      []Showing `json:"showings"`
}

type DayShowings struct {
	Day   string         `json:"day"`
	Label string         `json:"label"`
	Films []FilmShowings `json:"films"`
}

// CollectShowings builds the showings of each day, leaving out films with no eligible showtime.
func CollectShowings(cinema *Cinema, days []time.Time, eligibility Eligibility) []DayShowings {
	out := make([]DayShowings, 0, len(days))
	for _, day := range days {
		ds := DayShowings{Day: day.Format("2006-01-02"), Label: LongDay(day), Films: []FilmShowings{}}
		for _, film := range cinema.MoviesOfDay(day) {
			eligible := eligibility.Apply(cinema.ShowtimesOfMovie(film, day), day)
			if len(eligible) == 0 {
				continue
			}
			fs := FilmShowings{
				Title:         film.Title,
				Version:       film.Version(),
				Duration:      film.DurationString(),
				Rating:        film.RatingString(),
				Genres:        film.GenresString(),
				Nationalities: film.Nationalities(),
				Showings:      make([]Showing, 0, len(eligible)),
			}
			for _, st := range eligible {
				fs.Showings = append(fs.Showings, NewShowing(cinema, st))
			}
			ds.Films = append(ds.Films, fs)
		}
		out = append(out, ds)
	}
	return out
}

// ResolveDays turns "", "+N", "YYYY-MM-DD" or "DD/MM/YYYY" into the days to list.
// With week set, seven days from today are listed and raw is ignored.
func ResolveDays(raw string, week bool, now time.Time) ([]time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if week {
		days := make([]time.Time, 0, 7)
		for i := 0; i < 7; i++ {
			days = append(days, today.AddDate(0, 0, i))
		}
		return days, nil
	}
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return []time.Time{today}, nil
	case strings.HasPrefix(raw, "+"):
		n, err := strconv.Atoi(raw[1:])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid day offset %q", raw)
		}
		return []time.Time{today.AddDate(0, 0, n)}, nil
	default:
		day, err := ParseDay(raw, now.Location())
		if err != nil {
			return nil, err
		}
		return []time.Time{day}, nil
	}
}


// ParseWindow reads optional from/to days. An empty bound stays zero.
func ParseWindow(from, to string, loc *time.Location) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if strings.TrimSpace(from) != "" {
		if start, err = ParseDay(from, loc); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if strings.TrimSpace(to) != "" {
		if end, err = ParseDay(to, loc); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("window ends before it starts: %s > %s", from, to)
	}
	return start, end, nil
}
