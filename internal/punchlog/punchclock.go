package punchlog

import "time"

// PunchClock is the scoped handle over a persisted punch log: Open loads the
// table (or starts empty), the mutation and query methods operate in memory,
// and Close writes the table back. One process instance owns the file for
// the duration of one invocation; there is no locking against concurrent
// writers.
type PunchClock struct {
	path  string
	clock Clock
	log   *Log
}

// Open loads the punch log at path. A nil clock defaults to the system clock.
func Open(path string, clock Clock) (*PunchClock, error) {
	if clock == nil {
		clock = RealClock{}
	}
	log, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &PunchClock{path: path, clock: clock, log: log}, nil
}

// State returns the derived clocked state.
func (p *PunchClock) State() State {
	return p.log.State()
}

// PunchIn clocks in at the current time.
func (p *PunchClock) PunchIn() Result {
	return p.log.PunchIn(p.clock.Now())
}

// PunchOut clocks out at the current time.
func (p *PunchClock) PunchOut() Result {
	return p.log.PunchOut(p.clock.Now())
}

// Reset discards all recorded punches.
func (p *PunchClock) Reset() {
	p.log.Reset()
}

// Sum returns the total worked time as of the current time.
func (p *PunchClock) Sum() time.Duration {
	return p.log.Sum(p.clock.Now())
}

// Rows returns a copy of the punch table.
func (p *PunchClock) Rows() []Row {
	return p.log.Rows()
}

// Close persists the punch table back to its file.
func (p *PunchClock) Close() error {
	return SaveFile(p.path, p.log)
}
