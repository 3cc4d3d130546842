// Package report holds the shared findings store for a run.
//
// One Report instance is shared by every concurrently running check. All
// mutation is serialized behind its mutex, the terminal status transition
// happens exactly once via Finish, and the fatal-input path (Fatal) is the
// only way a check can stop the rest of the run.
package report
