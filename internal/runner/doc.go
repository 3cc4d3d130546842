// Package runner provides the concurrent execution engine for checks.
//
// The Runner fans check names out to a bounded pool of workers. Each
// worker resolves its check under a shared lock, executes it against a
// private output buffer, and flushes that buffer to the real stream under
// the same lock, so concurrent checks never interleave their text.
//
// Failure isolation: a check that returns an error, panics or times out
// produces one error line and does not disturb sibling checks. The single
// exception is the fatal-input path on the report, which suppresses
// dispatch of checks that have not started yet; in-flight checks still
// run to completion before the report is finalized.
package runner
