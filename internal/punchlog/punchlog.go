// Package punchlog implements the punch-log state machine: an ordered list
// of clock-in/clock-out pairs with at most one open session, persisted as a
// two-column CSV table.
package punchlog

import (
	"strings"
	"time"
)

// State is the clocked state derived from the rows. It is recomputed after
// every load and mutation, never stored alongside the data.
type State string

const (
	StateIn  State = "In"
	StateOut State = "Out"
)

// Lower returns the state as it appears in the status message.
func (s State) Lower() string {
	return strings.ToLower(string(s))
}

// Row is a single punch pair. Timestamps are whole seconds since the Unix
// epoch. Out is nil while the session is still open.
type Row struct {
	In  int64
	Out *int64
}

// Committed reports whether the row has both timestamps.
func (r Row) Committed() bool {
	return r.Out != nil
}

// Result reports the outcome of a guarded transition.
type Result int

const (
	// Applied means the transition changed the log.
	Applied Result = iota
	// Ignored means the log was already in the target state.
	Ignored
)

func (r Result) String() string {
	if r == Applied {
		return "applied"
	}
	return "ignored"
}

// Log is the ordered punch table. Rows are appended in chronological order;
// at most the last row may be open.
type Log struct {
	rows []Row
}

// NewLog returns an empty log in state Out.
func NewLog() *Log {
	return &Log{}
}

// Len returns the number of rows.
func (l *Log) Len() int {
	return len(l.rows)
}

// Rows returns a copy of the punch table.
func (l *Log) Rows() []Row {
	out := make([]Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// State derives the clocked state from the last row.
func (l *Log) State() State {
	if n := len(l.rows); n > 0 && !l.rows[n-1].Committed() {
		return StateIn
	}
	return StateOut
}

// PunchIn appends a new open row at the given time. Ignored when already
// clocked in.
func (l *Log) PunchIn(now time.Time) Result {
	if l.State() == StateIn {
		return Ignored
	}
	l.rows = append(l.rows, Row{In: now.Unix()})
	return Applied
}

// PunchOut closes the open row at the given time. Ignored when already
// clocked out.
func (l *Log) PunchOut(now time.Time) Result {
	if l.State() == StateOut {
		return Ignored
	}
	ts := now.Unix()
	l.rows[len(l.rows)-1].Out = &ts
	return Applied
}

// Reset discards all rows. Effective from any state.
func (l *Log) Reset() {
	l.rows = nil
}

// Sum returns the total worked time: the committed rows plus, when clocked
// in, the elapsed part of the open session. Timestamps are already whole
// seconds, so the result is exact; an empty log sums to zero. Sum never
// mutates the log.
func (l *Log) Sum(now time.Time) time.Duration {
	var total int64
	for _, r := range l.rows {
		if r.Committed() {
			total += *r.Out - r.In
		} else {
			total += now.Unix() - r.In
		}
	}
	return time.Duration(total) * time.Second
}
