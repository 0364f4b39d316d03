package matcher

import "strings"

const (
	// MaxCollect caps how many lines are gathered while looking for the
	// closing brace of a loop.
	MaxCollect = 20
	// MaxSnippet caps how many of the gathered lines are kept.
	MaxSnippet = 10

	loopKeyword = "for"
)

// LoopMatcher finds lines that open a for loop and bounds the loop text by
// counting braces. It is a line-oriented heuristic: braces and the keyword
// inside comments or string literals count like any others, so commented-out
// loops are reported and literals containing braces can mis-bound a snippet.
type LoopMatcher struct{}

// NewLoopMatcher creates a LoopMatcher.
func NewLoopMatcher() *LoopMatcher {
	return &LoopMatcher{}
}

// FindAll returns every loop in lines in top-to-bottom order. A nested loop
// is reported on its own in addition to appearing in its parent's snippet.
func (m *LoopMatcher) FindAll(lines []string) []Loop {
	var loops []Loop
	for i, line := range lines {
		if !isLoopStart(line) {
			continue
		}
		snippet := collectSnippet(lines[i:])
		if !containsKeyword(snippet) {
			continue
		}
		loops = append(loops, Loop{LineNum: i + 1, Lines: snippet})
	}
	return loops
}

// isLoopStart reports whether line begins a loop: the trimmed text starts
// with the keyword and the line carries both parentheses.
func isLoopStart(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), loopKeyword) &&
		strings.Contains(line, "(") &&
		strings.Contains(line, ")")
}

// collectSnippet gathers lines from the loop start until the brace depth
// drops to zero or below on a line that itself has an opening brace, or
// MaxCollect lines have been read. The result is cut to MaxSnippet lines.
func collectSnippet(lines []string) []string {
	n := min(len(lines), MaxCollect)
	depth := 0
	end := n
	for j := 0; j < n; j++ {
		line := lines[j]
		opens := strings.Count(line, "{")
		depth += opens - strings.Count(line, "}")
		if depth <= 0 && opens > 0 {
			end = j + 1
			break
		}
	}
	end = min(end, MaxSnippet)

	snippet := make([]string, end)
	copy(snippet, lines[:end])
	return snippet
}

// containsKeyword always holds for a snippet built from a loop start line;
// it is kept as the final acceptance check for a window.
func containsKeyword(snippet []string) bool {
	for _, line := range snippet {
		if strings.Contains(line, loopKeyword) {
			return true
		}
	}
	return false
}

// Ensure LoopMatcher implements Matcher.
var _ Matcher = (*LoopMatcher)(nil)
