package dirscan

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides whether an entry takes part in a scan.
// Implementations must be pure: no side effects, no shared mutable state.
type Filter interface {
	// Match returns true if the entry should be included
	Match(entry Entry) bool
}

// FilterFunc adapts an ordinary function to the Filter interface.
type FilterFunc func(entry Entry) bool

// Match calls f(entry).
func (f FilterFunc) Match(entry Entry) bool {
	return f(entry)
}

// SizeFilter matches files of at least Bound bytes. Directories never match;
// their reported size is the filesystem's allocation for the listing.
type SizeFilter struct {
	Bound int64
}

// NewSizeFilter creates a SizeFilter with the given inclusive lower bound.
func NewSizeFilter(bound int64) *SizeFilter {
	return &SizeFilter{Bound: bound}
}

// Match returns true if the entry is a file of at least Bound bytes.
func (f *SizeFilter) Match(entry Entry) bool {
	return !entry.IsDir && entry.Size >= f.Bound
}

// PrefixFilter matches entries whose name starts with Prefix.
type PrefixFilter struct {
	Prefix string
}

// NewPrefixFilter creates a case-sensitive name prefix filter.
func NewPrefixFilter(prefix string) *PrefixFilter {
	return &PrefixFilter{Prefix: prefix}
}

// Match returns true if the entry name starts with Prefix.
func (f *PrefixFilter) Match(entry Entry) bool {
	return strings.HasPrefix(entry.Name, f.Prefix)
}

// SuffixFilter matches entries whose name ends with Suffix.
type SuffixFilter struct {
	Suffix string
}

// NewSuffixFilter creates a case-sensitive name suffix filter.
func NewSuffixFilter(suffix string) *SuffixFilter {
	return &SuffixFilter{Suffix: suffix}
}

// Match returns true if the entry name ends with Suffix.
func (f *SuffixFilter) Match(entry Entry) bool {
	return strings.HasSuffix(entry.Name, f.Suffix)
}

// GlobFilter matches entry names against a glob pattern
type GlobFilter struct {
	normalizedPattern string
	isEmpty           bool
}

// NewGlobFilter creates a new GlobFilter with the given pattern
// Empty pattern matches all entries
func NewGlobFilter(pattern string) *GlobFilter {
	return &GlobFilter{
		normalizedPattern: strings.ToLower(pattern),
		isEmpty:           pattern == "",
	}
}

// Match returns true if the entry name matches the glob pattern.
// Matching is case-insensitive; an invalid pattern matches nothing.
func (f *GlobFilter) Match(entry Entry) bool {
	if f.isEmpty {
		return true
	}

	matched, err := doublestar.Match(f.normalizedPattern, strings.ToLower(entry.Name))
	if err != nil {
		return false
	}

	return matched
}

// ValidGlob reports whether pattern is a well-formed glob.
func ValidGlob(pattern string) bool {
	return doublestar.ValidatePattern(pattern)
}

// Files matches every entry that is not a directory.
func Files() Filter {
	return FilterFunc(func(entry Entry) bool { return !entry.IsDir })
}

// Dirs matches directories.
func Dirs() Filter {
	return FilterFunc(func(entry Entry) bool { return entry.IsDir })
}

// All matches when every filter matches. Nil filters are skipped; All() matches everything.
func All(filters ...Filter) Filter {
	return FilterFunc(func(entry Entry) bool {
		for _, f := range filters {
			if f != nil && !f.Match(entry) {
				return false
			}
		}

		return true
	})
}

// Any matches when at least one filter matches. Any() matches nothing.
func Any(filters ...Filter) Filter {
	return FilterFunc(func(entry Entry) bool {
		for _, f := range filters {
			if f != nil && f.Match(entry) {
				return true
			}
		}

		return false
	})
}

// Not inverts f.
func Not(f Filter) Filter {
	return FilterFunc(func(entry Entry) bool { return !matches(f, entry) })
}

// matches treats a nil filter as matching everything.
func matches(f Filter, entry Entry) bool {
	return f == nil || f.Match(entry)
}
