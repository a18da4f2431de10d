package reconcile

import "github.com/yuanweize/BTtrackers-updater/core/tracker"

// Result holds the outcome of merging a target's current tracker set with a
// freshly fetched one.
type Result struct {
	// Merged is the union of both input sets.
	Merged tracker.Set

	// Added lists the trackers present in Merged but not in the old set,
	// sorted lexicographically.
	Added []string

	// Removed lists the trackers present in the old set but not in Merged,
	// sorted lexicographically. Merging is a pure union, so this is always
	// empty; it exists as a regression guard and callers warn when it is not.
	Removed []string
}

// HasChanges reports whether applying the result would alter the target.
func (r *Result) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// Merge unions the trackers a target currently holds with a freshly fetched
// set and computes the diff against the old state. Merge never drops an entry
// present in either input.
func Merge(old, fresh tracker.Set) *Result {
	merged := old.Union(fresh)
	return &Result{
		Merged:  merged,
		Added:   merged.Diff(old).Sorted(),
		Removed: old.Diff(merged).Sorted(),
	}
}
