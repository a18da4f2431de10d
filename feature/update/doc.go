// Package update orchestrates one tracker reconciliation run.
//
// # Modes
//
// Three update strategies exist:
//
//  1. config: read and rewrite the aria2 configuration file.
//  2. rpc: read and push through the running instance's JSON-RPC endpoint,
//     with an optional fallback to the config path when the rpc path fails.
//  3. hybrid: run both paths independently; one failing does not abort the
//     other, and the run succeeds when at least one channel was updated.
//
// Each path performs its own fetch, so in hybrid mode the two branches may
// observe slightly different snapshots of the remote lists. That is accepted:
// the merge only ever grows the set, so the targets converge on subsequent
// runs.
//
// # Safety
//
// A path never commits when the fetch produced zero trackers (ErrNoTrackers),
// and the dry-run variant reads and reports without touching either target.
package update
