package tracker

import (
	"sort"
	"strings"
)

// Set is an unordered collection of unique tracker URLs.
// Trackers are opaque, case-sensitive strings; no normalization is applied.
type Set map[string]struct{}

// NewSet creates a Set from the given trackers.
func NewSet(trackers ...string) Set {
	s := make(Set, len(trackers))
	for _, t := range trackers {
		s.Add(t)
	}
	return s
}

// Add inserts a tracker into the set.
func (s Set) Add(t string) {
	s[t] = struct{}{}
}

// Contains reports whether the set holds t.
func (s Set) Contains(t string) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of trackers in the set.
func (s Set) Len() int {
	return len(s)
}

// Union returns a new set holding every tracker present in either set.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Diff returns a new set holding the trackers in s that are not in other.
func (s Set) Diff(other Set) Set {
	out := NewSet()
	for t := range s {
		if !other.Contains(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// Sorted returns the trackers in lexicographic ascending order.
// All serialization and diff reporting goes through this so output is
// deterministic regardless of fetch order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Join returns the sorted trackers as a single comma-joined string,
// the form both the config file directive and the RPC option expect.
func (s Set) Join() string {
	return strings.Join(s.Sorted(), ",")
}
