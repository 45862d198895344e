package weekly

import (
	"fmt"
	"sort"
	"time"
)

// nightEnd is the last minute still counted as part of the previous evening.
const nightEnd = 5 * 60

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

// Weight orders clocks so that 00:00-05:00 sorts after 23:59.
func (c Clock) Weight() int {
	m := c.minutes()
	if m <= nightEnd {
		m += 24 * 60
	}
	return m
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ShortTime renders a clock as "9h" or "23h30".
func ShortTime(c Clock) string {
	if c.Minute == 0 {
		return fmt.Sprintf("%dh", c.Hour)
	}
	return fmt.Sprintf("%dh%02d", c.Hour, c.Minute)
}

// SortClocks returns the distinct clocks ordered by weight.
func SortClocks(clocks []Clock) []Clock {
	seen := make(map[Clock]bool, len(clocks))
	out := make([]Clock, 0, len(clocks))
	for _, c := range clocks {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Weight() < out[j].Weight()
	})
	return out
}

// minWeight is the weight of the earliest clock in the group.
func minWeight(clocks []Clock) int {
	best := 0
	for i, c := range clocks {
		if w := c.Weight(); i == 0 || w < best {
			best = w
		}
	}
	return best
}
