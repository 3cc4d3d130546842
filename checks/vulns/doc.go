// Package vulns reports the outcome of the scanner's probes for known TLS
// vulnerabilities such as Heartbleed, ROBOT and POODLE.
package vulns
