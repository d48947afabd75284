// Package validation evaluates declarative per-field rules against string form
// values. A Rule combines an optional required flag, a regular expression,
// length bounds and a custom callback; checks run in that order and the first
// failure wins. Failures are reported as human-readable messages collected in
// an Errors map keyed by field name, never as Go errors.
//
// Pattern failures pick their message from the pattern source: sources that
// contain "@" are treated as email patterns, sources that contain a `\d`
// class as phone patterns, everything else reports a generic format error.
// Callers that depend on the message set should keep their patterns written
// accordingly.
package validation
