// Package redact provides utilities for scrubbing sensitive information from
// strings before they are logged or surfaced in error responses: database
// connection strings, signed session tokens, payment provider keys, and
// email addresses.
package redact

import "regexp"

// Placeholders substituted for matched sensitive values.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

var (
	// Database connection strings with embedded credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql|mongodb)://[^@\s]+@`)

	// Signed session tokens (standard three-part base64url JWT format).
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Stripe secret and publishable keys.
	stripeKeyRegex = regexp.MustCompile(`(sk|pk|rk)_(test|live)_[A-Za-z0-9]{8,}`)

	// Generic secret assignments (password=..., api_key: ...).
	credentialRegex = regexp.MustCompile(
		`(?i)(password|passwd|secret|api[_-]?key|token)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Email addresses.
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String redacts sensitive values from the given string.
func String(s string) string {
	if s == "" {
		return s
	}

	s = dbConnRegex.ReplaceAllString(s, "$1://"+RedactedCredentialPlaceholder+"@")
	s = jwtTokenRegex.ReplaceAllString(s, RedactedCredentialPlaceholder)
	s = stripeKeyRegex.ReplaceAllString(s, RedactedCredentialPlaceholder)
	s = credentialRegex.ReplaceAllString(s, "$1$2"+RedactedCredentialPlaceholder)
	s = emailRegex.ReplaceAllString(s, RedactionPlaceholder)

	return s
}

// Error redacts sensitive values from an error's message.
// Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
