// Package check defines the contract between the execution engine and the
// individual check modules: the Check interface and the execution Context
// handed to every run.
package check
