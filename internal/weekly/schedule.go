package weekly

import "time"

// DefaultShowDuration is used when a schedule has no known end.
const DefaultShowDuration = 15 * time.Minute

// Schedule is one showing. Only Start takes part in compaction.
type Schedule struct {
	Start time.Time
	End   time.Time
}

func NewSchedule(start time.Time) Schedule {
	return Schedule{Start: start, End: start.Add(DefaultShowDuration)}
}

func (s Schedule) Date() time.Time {
	return dateOf(s.Start)
}

func (s Schedule) Clock() Clock {
	return ClockOf(s.Start)
}

// EndOrDefault returns End, or Start plus DefaultShowDuration when End is unset.
func (s Schedule) EndOrDefault() time.Time {
	if s.End.IsZero() {
		return s.Start.Add(DefaultShowDuration)
	}
	return s.End
}
