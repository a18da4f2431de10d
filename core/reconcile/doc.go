// Package reconcile merges tracker sets and computes what changed.
//
// The merge is a pure set union: the result always contains every tracker
// present in either the target's current state or the freshly fetched lists.
// Because union never removes, the Removed field of a Result is empty by
// construction. It is kept (and asserted empty in tests) so that any future
// change to the merge semantics surfaces loudly instead of silently dropping
// trackers from a live client.
//
// Output ordering is lexicographic ascending, giving deterministic
// serialization and diffs regardless of the order sources were fetched in.
package reconcile
