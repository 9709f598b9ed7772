// Package redact scrubs credentials from strings before they are logged.
// Errors surfaced by the generation SDKs can echo request URLs and headers,
// which may carry API keys.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

// Precompiled regex patterns
var (
	// Google API keys, e.g. the Gemini key passed as ?key=AIza...
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

	// OpenAI secret keys: sk-..., sk-proj-...
	openAIKeyRegex = regexp.MustCompile(`sk-[A-Za-z0-9_\-]{16,}`)

	// Authorization headers
	bearerRegex = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`)

	// Generic key=value / key: value credentials in URLs, headers, or messages
	apiKeyRegex = regexp.MustCompile(
		`(?i)((?:api[_-]?key|x-goog-api-key|key|token|secret)(?:['"\s]*[:=]\s*['"]?))[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// JWT token pattern - matches the standard three-part base64url-encoded JWT token format
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	result = jwtTokenRegex.ReplaceAllString(result, RedactedCredentialPlaceholder)
	result = bearerRegex.ReplaceAllString(result, "${1}"+RedactedCredentialPlaceholder)
	result = apiKeyRegex.ReplaceAllString(result, "${1}"+RedactedKeyPlaceholder)
	result = googleKeyRegex.ReplaceAllString(result, RedactedKeyPlaceholder)
	result = openAIKeyRegex.ReplaceAllString(result, RedactedKeyPlaceholder)

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
