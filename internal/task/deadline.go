package task

import (
	"fmt"
	"time"
)

// Accepted deadline input layouts, tried in order.
const (
	inputDateTimeLayout = "2006-01-02 15:04"
	inputDateLayout     = "2006-01-02"
	inputTimeLayout     = "15:04"
	inputTimeSecLayout  = "15:04:05"
)

// defaultDeadlineHour is the time of day assumed when the input carries
// only a date, and for DefaultDeadline.
const defaultDeadlineHour = 17

// ParseDeadline interprets user input as a local-time deadline and
// returns it in UTC. Accepted forms: "2006-01-02 15:04", a bare date
// (17:00 assumed), or a bare time (today assumed).
func ParseDeadline(input string, now time.Time) (time.Time, error) {
	loc := now.Location()

	if t, err := time.ParseInLocation(inputDateTimeLayout, input, loc); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(inputDateLayout, input, loc); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), defaultDeadlineHour, 0, 0, 0, loc).UTC(), nil
	}
	for _, layout := range []string{inputTimeSecLayout, inputTimeLayout} {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc).UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("deadline %q is not a date, time, or date time", input)
}

// DefaultDeadline is today at 17:00 local, in UTC.
func DefaultDeadline(now time.Time) time.Time {
	loc := now.Location()
	return time.Date(now.Year(), now.Month(), now.Day(), defaultDeadlineHour, 0, 0, 0, loc).UTC()
}
