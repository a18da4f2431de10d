// Package aria2conf treats an aria2 configuration file as a tracker target.
//
// The file holds arbitrary key=value lines; only the first line starting
// with "bt-tracker=" is read and rewritten. Later duplicate directives are
// deliberately passed through unchanged, mirroring aria2's own
// first-line-wins behavior. A backup copy is taken before any rewrite when
// enabled.
package aria2conf
