// Package tracker defines the tracker URL value type and its validation rules.
//
// A tracker is an announce endpoint URL. Validation is purely structural
// (accepted scheme plus non-empty remainder); liveness of the endpoint is
// deliberately out of scope. The Set type backs every reconciliation pass:
// one set for the state a target currently holds, one for the freshly
// fetched lists, and one for their union.
package tracker
