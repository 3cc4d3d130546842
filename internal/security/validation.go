package security

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeTargetURL validates a target URL and strips everything below the
// host: path, query and fragment are discarded so the scanner always sees
// the bare origin. A bare hostname is promoted to https.
func NormalizeTargetURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("target URL cannot be empty")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid target URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
	}

	host := u.Hostname()
	if _, err := SanitizeHostname(host); err != nil {
		return "", err
	}

	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	u.User = nil

	return u.String(), nil
}

// SanitizeHostname removes potentially dangerous characters from hostnames.
// This prevents any potential injection attacks if hostname is used in commands.
func SanitizeHostname(hostname string) (string, error) {
	if hostname == "" {
		return "", fmt.Errorf("hostname cannot be empty")
	}

	// Basic hostname validation - alphanumeric, dots, hyphens only
	for _, char := range hostname {
		if !((char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '.' || char == '-' || char == '_') {
			return "", fmt.Errorf("invalid character in hostname: %c", char)
		}
	}

	if len(hostname) > 253 {
		return "", fmt.Errorf("hostname too long: %d characters (max 253)", len(hostname))
	}

	return hostname, nil
}
