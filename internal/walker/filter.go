package walker

import (
	ignore "github.com/sabhiram/go-gitignore"
)

// SourceExtensions lists the C/C++ file extensions that are scanned.
var SourceExtensions = []string{".c", ".cpp", ".cc", ".cxx", ".h", ".hpp", ".hh"}

// SourceFilter decides which file names are scanned. Patterns use gitignore
// syntax and are matched against the base name only, case-sensitively.
type SourceFilter struct {
	patterns *ignore.GitIgnore
}

// NewSourceFilter compiles a filter from gitignore-style patterns.
func NewSourceFilter(patterns ...string) *SourceFilter {
	return &SourceFilter{patterns: ignore.CompileIgnoreLines(patterns...)}
}

// NewCSourceFilter returns the filter for SourceExtensions.
func NewCSourceFilter() *SourceFilter {
	patterns := make([]string, len(SourceExtensions))
	for i, ext := range SourceExtensions {
		patterns[i] = "*" + ext
	}
	return NewSourceFilter(patterns...)
}

// Matches reports whether a file with the given base name should be scanned.
// A nil filter matches every name.
func (f *SourceFilter) Matches(name string) bool {
	if f == nil || f.patterns == nil {
		return true
	}
	return f.patterns.MatchesPath(name)
}
