// Package protocols checks which SSL/TLS protocol versions the target
// offers and flags the deprecated ones (SSLv2 through TLS 1.1).
package protocols
