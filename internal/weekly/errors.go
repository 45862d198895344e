package weekly

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrScheduleRange means the showings do not fit in one exhibition week.
	ErrScheduleRange = errors.New("schedule range")
	// ErrInvalidInput means there was nothing to compact.
	ErrInvalidInput = errors.New("invalid input")
)

type RangeError struct {
	First  time.Time
	Last   time.Time
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("schedule range %s..%s: %s", e.First.Format(dateLayout), e.Last.Format(dateLayout), e.Reason)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrScheduleRange
}
