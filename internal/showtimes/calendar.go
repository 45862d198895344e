package showtimes

import (
	"net/url"
	"strings"
)

const calendarBaseURL = "https://www.google.com/calendar/render?action=TEMPLATE"

// CalendarLink builds a Google Calendar event template for a showing.
func CalendarLink(c *Cinema, s Showtime) string {
	params := []struct{ key, value string }{
		{"text", "Cinema: " + s.Movie.Title},
		{"dates", s.StartEndUTC()},
		{"details", CleanSynopsis(s.Movie.Synopsis)},
		{"location", c.AddressString()},
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.key+"="+quote(p.value))
	}
	return calendarBaseURL + "&" + strings.Join(parts, "&")
}

// Showing is a showtime ready to be served, with its calendar link.
type Showing struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	StartHour string `json:"start_hour"`
	EndHour   string `json:"end_hour"`
	Link      string `json:"link"`
}

func NewShowing(c *Cinema, s Showtime) Showing {
	return Showing{
		StartTime: s.DateString(),
		EndTime:   s.EndDateString(),
		StartHour: s.HourString(),
		EndHour:   s.EndHourString(),
		Link:      CalendarLink(c, s),
	}
}

// quote escapes like a query value but keeps spaces as %20 and slashes as is.
func quote(v string) string {
	escaped := url.QueryEscape(v)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	return strings.ReplaceAll(escaped, "%2F", "/")
}
