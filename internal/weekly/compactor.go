package weekly

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type LayoutMode int

const (
	// TimeLed lists every time of day, used when one of them runs daily.
	TimeLed LayoutMode = iota
	// PatternLed lists weekday patterns followed by their times.
	PatternLed
)

// Line is one fragment of the compact programme: a set of times sharing
// the same weekday recurrence.
type Line struct {
	Recurrence Recurrence
	Clocks     []Clock
}

func (l Line) times() string {
	parts := make([]string, 0, len(l.Clocks))
	for _, c := range l.Clocks {
		parts = append(parts, ShortTime(c))
	}
	return strings.Join(parts, ", ")
}

// Layout is the ordered result of grouping a week of schedules.
type Layout struct {
	Mode  LayoutMode
	Lines []Line
}

// String assembles the compact programme, e.g. "14h, 17h30 (sf Sam, Dim), 21h".
func (l Layout) String() string {
	parts := make([]string, 0, len(l.Lines))
	switch l.Mode {
	case TimeLed:
		for _, line := range l.Lines {
			if label := line.Recurrence.Label(); label != "" {
				parts = append(parts, fmt.Sprintf("%s (%s)", line.times(), label))
			} else {
				parts = append(parts, line.times())
			}
		}
		return strings.Join(parts, ", ")
	default:
		for _, line := range l.Lines {
			parts = append(parts, line.Recurrence.Label()+" "+line.times())
		}
		if len(parts) == 1 {
			return parts[0]
		}
		return strings.Join(parts, "; ")
	}
}

type Option func(*Compactor)

func WithWeek(w Week) Option {
	return func(c *Compactor) {
		c.week = w
	}
}

// Compactor turns a week of showings into a compact French programme.
// It holds no mutable state and is safe for concurrent use.
type Compactor struct {
	week Week
}

func New(opts ...Option) *Compactor {
	c := &Compactor{week: DefaultWeek}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Compactor) Week() Week {
	return c.week
}

type timeBucket struct {
	clock Clock
	dates []time.Time
}

type patternBucket struct {
	recurrence Recurrence
	clocks     []Clock
}

// Group validates the week and orders the showings for assembly.
func (c *Compactor) Group(schedules []Schedule) (Layout, error) {
	if len(schedules) == 0 {
		return Layout{}, fmt.Errorf("%w: empty schedule list", ErrInvalidInput)
	}
	dates := make([]time.Time, 0, len(schedules))
	for _, s := range schedules {
		dates = append(dates, s.Start)
	}
	if err := c.week.Validate(dates); err != nil {
		return Layout{}, err
	}

	byClock := make(map[Clock]*timeBucket)
	times := make([]*timeBucket, 0)
	for _, s := range schedules {
		clock := s.Clock()
		b, ok := byClock[clock]
		if !ok {
			b = &timeBucket{clock: clock}
			byClock[clock] = b
			times = append(times, b)
		}
		b.dates = append(b.dates, s.Start)
	}
	sort.Slice(times, func(i, j int) bool {
		return times[i].clock.Weight() < times[j].clock.Weight()
	})

	recurrences := make(map[Clock]Recurrence, len(times))
	byLabel := make(map[string]*patternBucket)
	patterns := make([]*patternBucket, 0)
	daily := false
	for _, b := range times {
		rec, err := CompactDates(b.dates)
		if err != nil {
			return Layout{}, err
		}
		recurrences[b.clock] = rec
		if rec.Kind == Daily {
			daily = true
		}
		label := rec.Label()
		p, ok := byLabel[label]
		if !ok {
			p = &patternBucket{recurrence: rec}
			byLabel[label] = p
			patterns = append(patterns, p)
		}
		p.clocks = append(p.clocks, b.clock)
	}

	if daily {
		lines := make([]Line, 0, len(times))
		for _, b := range times {
			lines = append(lines, Line{Recurrence: recurrences[b.clock], Clocks: []Clock{b.clock}})
		}
		return Layout{Mode: TimeLed, Lines: lines}, nil
	}

	for _, p := range patterns {
		p.clocks = SortClocks(p.clocks)
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		return minWeight(patterns[i].clocks) < minWeight(patterns[j].clocks)
	})
	lines := make([]Line, 0, len(patterns))
	for _, p := range patterns {
		lines = append(lines, Line{Recurrence: p.recurrence, Clocks: p.clocks})
	}
	return Layout{Mode: PatternLed, Lines: lines}, nil
}

// Format returns the compact programme of a week of showings.
func (c *Compactor) Format(schedules []Schedule) (string, error) {
	layout, err := c.Group(schedules)
	if err != nil {
		return "", err
	}
	return layout.String(), nil
}

var defaultCompactor = New()

// Format compacts schedules against the default Wednesday to Tuesday week.
func Format(schedules []Schedule) (string, error) {
	return defaultCompactor.Format(schedules)
}
