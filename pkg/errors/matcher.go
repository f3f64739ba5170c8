package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// categoryPatterns lists the message fragments that identify one category.
type categoryPatterns struct {
	category ErrorCategory
	patterns []string
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Categories are tried in order; a wrapped message such as
// "/x is not a readable directory: ... permission denied" resolves to the most
// specific cause.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: []categoryPatterns{
			{CategoryPermission, []string{
				"permission denied",
				"access denied",
				"operation not permitted",
			}},
			{CategoryConnection, []string{
				"ssh connection failed",
				"failed to connect",
				"connection refused",
				"no such host",
				"no ssh authentication methods",
				"knownhosts",
				"host key",
				"unable to authenticate",
			}},
			{CategoryPath, []string{
				"no such file or directory",
				"file does not exist",
				"file not found",
				"path does not exist",
			}},
			{CategoryNotADirectory, []string{
				"not a readable directory",
				"not a directory",
			}},
			{CategoryIO, []string{
				"input/output error",
				"i/o error",
				"i/o timeout",
				"failed to read directory",
				"failed to stat",
				"stale file handle",
			}},
		},
	}
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	patterns []categoryPatterns
}

// Match returns the first category with a pattern contained in the message.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, entry := range m.patterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return entry.category
			}
		}
	}

	return CategoryUnknown
}
