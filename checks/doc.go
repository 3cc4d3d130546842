// Package checks provides the check module registry for tlscheck TLS
// assessments.
//
// Each check implements analysis of one slice of a testssl.sh result set
// as a self-contained module that can be invoked via CLI flags or exposed
// as MCP tools. The registry is a compile-time list; adding a check means
// adding its constructor to All.
package checks
