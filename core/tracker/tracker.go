package tracker

import "strings"

// acceptedSchemes are the announce URL schemes aria2 understands.
var acceptedSchemes = [...]string{"http://", "https://", "udp://"}

// IsValid reports whether candidate is a structurally valid tracker URL.
// A valid tracker starts with an accepted scheme and has a non-empty
// remainder after the scheme separator. No network or deeper syntax
// validation is performed.
func IsValid(candidate string) bool {
	c := strings.TrimSpace(candidate)
	if c == "" {
		return false
	}
	for _, scheme := range acceptedSchemes {
		if strings.HasPrefix(c, scheme) && len(c) > len(scheme) {
			return true
		}
	}
	return false
}

// ParseLines extracts valid trackers from a newline-delimited source body.
// Blank lines and #-prefixed comments are dropped; every remaining line is
// trimmed and filtered through IsValid.
func ParseLines(body string) Set {
	set := NewSet()
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if IsValid(line) {
			set.Add(line)
		}
	}
	return set
}

// ParseList splits a stored tracker value on commas and newlines.
// Segments are trimmed and empty segments dropped. No validation is applied:
// whatever a target currently holds is taken as-is.
func ParseList(raw string) Set {
	set := NewSet()
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }) {
		part = strings.TrimSpace(part)
		if part != "" {
			set.Add(part)
		}
	}
	return set
}
