package showtimes

import (
	"fmt"
	"time"

	"seances/internal/weekly"
)

// ScheduleInput is a showing as read from JSON or YAML.
type ScheduleInput struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end,omitempty" yaml:"end"`
}

func (in ScheduleInput) Schedule(loc *time.Location) (weekly.Schedule, error) {
	start, err := ParseDateTime(in.Start, loc)
	if err != nil {
		return weekly.Schedule{}, err
	}
	s := weekly.NewSchedule(start)
	if in.End != "" {
		end, err := ParseDateTime(in.End, loc)
		if err != nil {
			return weekly.Schedule{}, err
		}
		s.End = end
	}
	return s, nil
}

func Schedules(inputs []ScheduleInput, loc *time.Location) ([]weekly.Schedule, error) {
	out := make([]weekly.Schedule, 0, len(inputs))
	for i, in := range inputs {
		s, err := in.Schedule(loc)
		if err != nil {
			return nil, fmt.Errorf("showtime %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

type ShowtimeInput struct {
	ScheduleInput `yaml:",inline"`
	Movie         MovieVersion `json:"movie" yaml:"movie"`
}

type CinemaInput struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Address     string          `json:"address" yaml:"address"`
	Zipcode     string          `json:"zipcode" yaml:"zipcode"`
	City        string          `json:"city" yaml:"city"`
	MemberCards []MemberCard    `json:"member_cards" yaml:"member_cards"`
	Showtimes   []ShowtimeInput `json:"showtimes" yaml:"showtimes"`
}

// Cinema parses every showtime; the first bad timestamp fails the whole cinema.
func (in CinemaInput) Cinema(loc *time.Location) (*Cinema, error) {
	c := &Cinema{
		ID:          in.ID,
		Name:        in.Name,
		Address:     in.Address,
		Zipcode:     in.Zipcode,
		City:        in.City,
		MemberCards: in.MemberCards,
		Showtimes:   make([]Showtime, 0, len(in.Showtimes)),
	}
	for i, st := range in.Showtimes {
		s, err := st.Schedule(loc)
		if err != nil {
			return nil, fmt.Errorf("cinema %s showtime %d: %w", in.ID, i, err)
		}
		c.Showtimes = append(c.Showtimes, Showtime{Schedule: s, Movie: st.Movie})
	}
	return c, nil
}
