package domain

import "fmt"

// Goal is a named target: every listed unit must appear, completed, in the
// final roadmap.
type Goal struct {
	Name    string
	UnitIDs []string
}

// Contains reports whether id is one of the goal's required units.
func (g *Goal) Contains(id string) bool {
	for _, u := range g.UnitIDs {
		if u == id {
			return true
		}
	}
	return false
}

// SelectionSet is the set of unit IDs the user chose to include in a plan.
// Units whose prerequisites are not in the set are treated as externally
// satisfied.
type SelectionSet []string

// ToSet returns the selection as a membership map.
func (s SelectionSet) ToSet() map[string]bool {
	set := make(map[string]bool, len(s))
	for _, id := range s {
		set[id] = true
	}
	return set
}

// UserConstraints bound a single planning request.
type UserConstraints struct {
	WeeklyCapacity    float64 // hours available per period, > 0
	Budget            float64 // max resource spend, >= 0
	FormatPreference  string  // optional format tag, "" = no preference
	PeriodGranularity Granularity
}

// Validate checks the constraint invariants.
func (c *UserConstraints) Validate() error {
	if c.WeeklyCapacity <= 0 {
		return fmt.Errorf("weekly capacity must be > 0, got %v", c.WeeklyCapacity)
	}
	if c.Budget < 0 {
		return fmt.Errorf("budget must be >= 0, got %v", c.Budget)
	}
	if c.PeriodGranularity != "" && !ValidGranularities[string(c.PeriodGranularity)] {
		return fmt.Errorf("invalid period granularity %q", c.PeriodGranularity)
	}
	return nil
}
