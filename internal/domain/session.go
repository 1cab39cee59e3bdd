package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultIntervalDuration is the length of a pomodoro when none is given.
const DefaultIntervalDuration = 25 * time.Minute

// DefaultTotalIntervals is the number of pomodoros in a session.
const DefaultTotalIntervals = 4

// clockLayout formats the wall-clock times in summary lines.
const clockLayout = "15:04"

// Outcome is how an interval ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeAbandoned Outcome = "abandoned"
)

// Session is one run of the program: a fixed number of intervals and
// the summary accumulated while running them.
type Session struct {
	ID               string
	TotalIntervals   int
	IntervalDuration time.Duration
	Summary          []string
}

// NewSession creates a session with the given shape. Non-positive values
// fall back to the defaults.
func NewSession(total int, duration time.Duration) *Session {
	if total <= 0 {
		total = DefaultTotalIntervals
	}
	if duration <= 0 {
		duration = DefaultIntervalDuration
	}
	return &Session{
		ID:               generateID(),
		TotalIntervals:   total,
		IntervalDuration: duration,
	}
}

// NewInterval returns a fresh interval at full duration. Retries after an
// abandon always go through here so they never inherit remaining time.
func (s *Session) NewInterval(index int, start time.Time) *Interval {
	return &Interval{
		Index:     index,
		Duration:  s.IntervalDuration,
		Remaining: s.IntervalDuration,
		StartedAt: start,
	}
}

// IsLast reports whether index is the final interval of the session.
func (s *Session) IsLast(index int) bool {
	return index >= s.TotalIntervals
}

// RecordPomodoro appends the line for a completed interval.
func (s *Session) RecordPomodoro(index int, start, end time.Time) {
	s.Summary = append(s.Summary, fmt.Sprintf("Pomodoro %d: %s–%s", index, start.Format(clockLayout), end.Format(clockLayout)))
}

// RecordAbandoned appends the line for an abandoned interval.
func (s *Session) RecordAbandoned(start, end time.Time) {
	s.Summary = append(s.Summary, fmt.Sprintf("Abandoned: %s–%s", start.Format(clockLayout), end.Format(clockLayout)))
}

// RecordBreak appends the line for a break, rounded to the nearest minute.
func (s *Session) RecordBreak(elapsed time.Duration) {
	minutes := int(math.Round(elapsed.Minutes()))
	unit := "minutes"
	if minutes == 1 {
		unit = "minute"
	}
	s.Summary = append(s.Summary, fmt.Sprintf("Break: about %d %s", minutes, unit))
}

// SummaryText returns the summary as printed at exit.
func (s *Session) SummaryText() string {
	if len(s.Summary) == 0 {
		return ""
	}
	return strings.Join(s.Summary, "\n") + "\n"
}

// Interval is a single pomodoro countdown.
type Interval struct {
	Index     int
	Duration  time.Duration
	Remaining time.Duration
	StartedAt time.Time
	Outcome   Outcome
}

// Tick removes one second from the remaining time.
func (iv *Interval) Tick() {
	iv.Remaining -= time.Second
	if iv.Remaining < 0 {
		iv.Remaining = 0
	}
}

// Done reports whether the countdown has reached zero.
func (iv *Interval) Done() bool {
	return iv.Remaining <= 0
}

// FormatClock formats d as minutes:seconds with zero-padded seconds.
func FormatClock(d time.Duration) string {
	total := int(d.Round(time.Second) / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
