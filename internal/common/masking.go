package common

import (
	"regexp"
	"strings"
)

// SensitivePattern describes one class of sensitive value to hide in log output.
type SensitivePattern struct {
	Name        string         // pattern name (e.g., "password", "token")
	Regex       *regexp.Regexp // regular expression matching the sensitive data
	Replacement string         // replacement string
	Keys        []string       // attribute keys to mask wholesale (case-insensitive)
}

// DefaultSensitivePatterns covers the credentials this tool handles:
// AWX passwords, personal access tokens, OAuth2 client secrets and the
// Authorization header values built from them.
var DefaultSensitivePatterns = []SensitivePattern{
	{
		Name:        "password",
		Regex:       regexp.MustCompile(`(?i)(password|passwd|pwd)["'\s]*[:=]["'\s]*([^"',}\]\s]+)`),
		Replacement: `${1}":"***MASKED***"`,
		Keys:        []string{"password", "passwd", "pwd", "ansible_password"},
	},
	{
		Name:        "token",
		Regex:       regexp.MustCompile(`(?i)(token|access[_-]?token|auth[_-]?token)["'\s]*[:=]["'\s]*([^"',}\]\s]+)`),
		Replacement: `${1}":"***MASKED***"`,
		Keys:        []string{"token", "access_token", "auth_token", "ansible_token"},
	},
	{
		Name:        "authorization",
		Regex:       regexp.MustCompile(`(?i)(authorization)["'\s]*[:=]["'\s]*([^"',}\]\s]+)`),
		Replacement: `${1}":"***MASKED***"`,
		Keys:        []string{"authorization"},
	},
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9\-._~+/]+=*`),
		Replacement: "Bearer ***MASKED***",
	},
	{
		Name:        "basic_auth",
		Regex:       regexp.MustCompile(`(?i)Basic\s+[A-Za-z0-9+/]+=*`),
		Replacement: "Basic ***MASKED***",
	},
	{
		Name:        "secret",
		Regex:       regexp.MustCompile(`(?i)(secret|client[_-]?secret)["'\s]*[:=]["'\s]*([^"',}\]\s]+)`),
		Replacement: `${1}":"***MASKED***"`,
		Keys:        []string{"secret", "client_secret"},
	},
}

// Masker hides sensitive values in log attributes and free-form strings.
type Masker struct {
	patterns []SensitivePattern
	enabled  bool
}

// NewMasker creates a masker with the default patterns.
func NewMasker() *Masker {
	return &Masker{
		patterns: DefaultSensitivePatterns,
		enabled:  true,
	}
}

// SetEnabled enables or disables masking
func (m *Masker) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// IsEnabled returns whether masking is enabled
func (m *Masker) IsEnabled() bool {
	return m.enabled
}

// MaskString masks sensitive information in a string
func (m *Masker) MaskString(input string) string {
	if !m.enabled {
		return input
	}

	result := input
	for _, pattern := range m.patterns {
		result = pattern.Regex.ReplaceAllString(result, pattern.Replacement)
	}
	return result
}

// MaskValue masks a value based on its attribute key. Keys matching a sensitive
// pattern are masked wholesale; string values are additionally pattern-scanned.
func (m *Masker) MaskValue(key string, value any) any {
	if !m.enabled {
		return value
	}

	lowerKey := strings.ToLower(key)
	for _, pattern := range m.patterns {
		for _, sensitiveKey := range pattern.Keys {
			if lowerKey == sensitiveKey {
				return "***MASKED***"
			}
		}
	}

	if s, ok := value.(string); ok {
		return m.MaskString(s)
	}
	return value
}

// Global masker instance
var globalMasker = NewMasker()

// MaskSensitiveData masks sensitive data using the global masker
func MaskSensitiveData(input string) string {
	return globalMasker.MaskString(input)
}

// EnableMasking enables/disables global masking
func EnableMasking(enabled bool) {
	globalMasker.SetEnabled(enabled)
}

// IsMaskingEnabled returns whether global masking is enabled
func IsMaskingEnabled() bool {
	return globalMasker.IsEnabled()
}
