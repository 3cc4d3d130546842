// Package ciphers detects insecure cipher use.
//
// It analyses the cipher list section of a testssl report to tell whether
// the target server still offers weak or vulnerable cipher classes, from
// NULL and export ciphers up to the modern strong suites.
package ciphers
