// Package clock supplies the current time to the ledger so that
// transaction timestamps and "today" statistics can be pinned in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the wall clock, truncated to seconds. A nil Location means
// time.Local.
type System struct {
	Location *time.Location
}

func (s System) Now() time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc).Truncate(time.Second)
}

// Fixed always returns the same instant. Advance moves it forward.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time { return f.T }

func (f *Fixed) Advance(d time.Duration) { f.T = f.T.Add(d) }

// LoadLocation resolves a configured zone name, treating "" and "Local" as
// the process zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
