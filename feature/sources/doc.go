// Package sources fetches tracker lists from remote sources.
//
// Each configured source is an HTTP endpoint serving a newline-delimited
// list of announce URLs, with #-prefixed comment lines. Sources are
// unreliable by assumption: every source gets a bounded number of attempts
// with a fixed delay between them, and a source that exhausts its attempts
// is skipped without affecting the others. Only structurally valid trackers
// are admitted to the returned set.
package sources
