package showtimes

import (
	"fmt"
	"strings"
	"time"
)

type Movie struct {
	ID            int      `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	OriginalTitle string   `json:"original_title,omitempty" yaml:"original_title"`
	Rating        *float64 `json:"rating,omitempty" yaml:"rating"`
	// Runtime is in seconds, as published by showtime providers.
	Runtime   int      `json:"runtime,omitempty" yaml:"runtime"`
	Genres    []string `json:"genres,omitempty" yaml:"genres"`
	Countries []string `json:"countries,omitempty" yaml:"countries"`
	Directors string   `json:"directors,omitempty" yaml:"directors"`
	Actors    string   `json:"actors,omitempty" yaml:"actors"`
	Synopsis  string   `json:"synopsis,omitempty" yaml:"synopsis"`
	Year      int      `json:"year,omitempty" yaml:"year"`
}

func (m Movie) Duration() time.Duration {
	return time.Duration(m.Runtime) * time.Second
}

// DurationString renders "02h05", or "HH:MM" when the runtime is unknown.
func (m Movie) DurationString() string {
	if m.Runtime <= 0 {
		return "HH:MM"
	}
	h, mins := splitDuration(m.Duration())
	return fmt.Sprintf("%02dh%02d", h, mins)
}

// DurationShort renders "2h05", or "NA" when the runtime is unknown.
func (m Movie) DurationShort() string {
	if m.Runtime <= 0 {
		return "NA"
	}
	h, mins := splitDuration(m.Duration())
	return fmt.Sprintf("%dh%02d", h, mins)
}

func (m Movie) RatingString() string {
	if m.Rating == nil || *m.Rating == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", *m.Rating)
}

func (m Movie) GenresString() string {
	return strings.Join(m.Genres, ", ")
}

func (m Movie) String() string {
	return fmt.Sprintf("%s [%d] (%s)", m.Title, m.ID, m.DurationString())
}

func splitDuration(d time.Duration) (int, int) {
	total := int(d / time.Minute)
	return total / 60, total % 60
}

const (
	languageFrench = "Français"
	formatDigital  = "Numérique"
)

// MovieVersion is a movie in a given language and screen format.
type MovieVersion struct {
	Movie        `yaml:",inline"`
	Language     string `json:"language,omitempty" yaml:"language"`
	ScreenFormat string `json:"screen_format,omitempty" yaml:"screen_format"`
}

// Version renders "VF", "VOST" or "VOST 3D".
func (v MovieVersion) Version() string {
	version := "VOST"
	if v.Language == languageFrench {
		version = "VF"
	}
	if v.ScreenFormat != "" && v.ScreenFormat != formatDigital {
		version += " " + v.ScreenFormat
	}
	return version
}

// Key identifies a version across showtimes.
func (v MovieVersion) Key() string {
	return fmt.Sprintf("%d/%s", v.ID, v.Version())
}

func (v MovieVersion) String() string {
	return fmt.Sprintf("%s (%s)", v.Movie.String(), v.Version())
}
