package showtimes

import (
	"sort"
	"strings"
	"time"

	"seances/internal/weekly"
)

type MemberCard struct {
	Code  int    `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

type Cinema struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address,omitempty"`
	Zipcode     string       `json:"zipcode,omitempty"`
	City        string       `json:"city,omitempty"`
	MemberCards []MemberCard `json:"member_cards,omitempty"`
	Showtimes   []Showtime   `json:"-"`
}

// AddressString renders "12 rue X, 75001 Paris".
func (c *Cinema) AddressString() string {
	var b strings.Builder
	if c.Address != "" {
		b.WriteString(c.Address)
		b.WriteString(", ")
	}
	b.WriteString(strings.TrimSpace(c.Zipcode + " " + c.City))
	return b.String()
}

// AcceptsCard reports whether the cinema takes the member card with this code.
func (c *Cinema) AcceptsCard(code int) bool {
	for _, card := range c.MemberCards {
		if card.Code == code {
			return true
		}
	}
	return false
}

// ShowtimesOfMovie returns the showtimes of a version, restricted to day unless day is zero.
func (c *Cinema) ShowtimesOfMovie(version MovieVersion, day time.Time) []Showtime {
	out := make([]Showtime, 0)
	for _, s := range c.Showtimes {
		if s.Movie.Key() != version.Key() {
			continue
		}
		if !day.IsZero() && !sameDay(s.Start, day) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (c *Cinema) ShowtimesOfDay(day time.Time) []Showtime {
	return OfDay(c.Showtimes, day)
}

// MoviesOfDay lists the versions showing on day, by title then version.
func (c *Cinema) MoviesOfDay(day time.Time) []MovieVersion {
	seen := make(map[string]bool)
	out := make([]MovieVersion, 0)
	for _, s := range c.ShowtimesOfDay(day) {
		if seen[s.Movie.Key()] {
			continue
		}
		seen[s.Movie.Key()] = true
		out = append(out, s.Movie)
	}
	sortVersions(out)
	return out
}

// VersionShowtimes is the showtimes of one movie version.
type VersionShowtimes struct {
	Version   MovieVersion
	Showtimes []Showtime
}

// PerMovieVersion groups showtimes by movie version, ordered by title.
func (c *Cinema) PerMovieVersion() []VersionShowtimes {
	return c.group(func(v MovieVersion) MovieVersion { return v })
}

// PerMovie groups showtimes by movie, ignoring language and screen format.
func (c *Cinema) PerMovie() []VersionShowtimes {
	return c.group(func(v MovieVersion) MovieVersion { return MovieVersion{Movie: v.Movie} })
}

func (c *Cinema) group(keyOf func(MovieVersion) MovieVersion) []VersionShowtimes {
	index := make(map[string]int)
	out := make([]VersionShowtimes, 0)
	for _, s := range c.Showtimes {
		v := keyOf(s.Movie)
		i, ok := index[v.Key()]
		if !ok {
			i = len(out)
			index[v.Key()] = i
			out = append(out, VersionShowtimes{Version: v})
		}
		out[i].Showtimes = append(out[i].Showtimes, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return lessVersion(out[i].Version, out[j].Version)
	})
	return out
}

// MovieProgram is the compact weekly programme of one movie, or of one
// version when compacted per version. Days lists the hours of each day.
type MovieProgram struct {
	Movie   Movie      `json:"movie"`
	Version string     `json:"version,omitempty"`
	Program string     `json:"programme"`
	Days    []DayGroup `json:"days"`
	Err     error      `json:"-"`
}

// ProgramPerMovie compacts the week of every movie. A movie whose showtimes
// do not fit in one week keeps its error and an empty programme.
func (c *Cinema) ProgramPerMovie(compactor *weekly.Compactor) []MovieProgram {
	return programs(compactor, c.PerMovie(), false)
}

// ProgramPerVersion is ProgramPerMovie with VF, VOST and screen formats kept apart.
func (c *Cinema) ProgramPerVersion(compactor *weekly.Compactor) []MovieProgram {
	return programs(compactor, c.PerMovieVersion(), true)
}

func programs(compactor *weekly.Compactor, groups []VersionShowtimes, withVersion bool) []MovieProgram {
	out := make([]MovieProgram, 0, len(groups))
	for _, g := range groups {
		program, err := Program(compactor, g.Showtimes)
		p := MovieProgram{
			Movie:   g.Version.Movie,
			Program: program,
			Days:    GroupPerSchedule(g.Showtimes),
			Err:     err,
		}
		if withVersion {
			p.Version = g.Version.Version()
		}
		out = append(out, p)
	}
	return out
}

// Filter drops the showtimes before from or after to. Zero bounds are ignored.
func (c *Cinema) Filter(from, to time.Time) {
	kept := c.Showtimes[:0]
	for _, s := range c.Showtimes {
		day := s.Day()
		if !from.IsZero() && day.Before(truncateDay(from)) {
			continue
		}
		if !to.IsZero() && day.After(truncateDay(to)) {
			continue
		}
		kept = append(kept, s)
	}
	c.Showtimes = kept
}

func sortVersions(versions []MovieVersion) {
	sort.SliceStable(versions, func(i, j int) bool {
		return lessVersion(versions[i], versions[j])
	})
}

func lessVersion(a, b MovieVersion) bool {
	if a.Title != b.Title {
		return a.Title < b.Title
	}
	return a.Version() < b.Version()
}
