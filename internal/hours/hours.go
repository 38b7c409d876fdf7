// Package hours implements the staffed-hours predicate for the lead pipeline.
package hours

import (
	"fmt"
	"time"
)

// Policy reports whether a human operator is assumed available. The check is
// a straight inclusive-exclusive band against the hour in a fixed reference
// timezone; hour wrap-around is intentionally not handled (start > end simply
// yields an always-false band).
type Policy struct {
	start int
	end   int
	loc   *time.Location
	now   func() time.Time
}

// New builds a policy for the given band and IANA timezone name.
func New(start, end int, timezone string) (*Policy, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("working hours: bad timezone %q: %w", timezone, err)
	}
	return &Policy{start: start, end: end, loc: loc, now: time.Now}, nil
}

// WithClock replaces the wall clock, for tests.
func (p *Policy) WithClock(now func() time.Time) *Policy {
	clone := *p
	clone.now = now
	return &clone
}

// Staffed reports whether the current time falls inside the working band.
func (p *Policy) Staffed() bool {
	h := p.now().In(p.loc).Hour()
	return p.start <= h && h < p.end
}
