// Package certificate inspects the served certificate chain: trust,
// expiration, signature algorithm and key strength.
package certificate
