package output

import (
	"strconv"
	"strings"

	"github.com/dl/findloops/internal/matcher"
)

// Report is everything that goes into one Markdown document.
type Report struct {
	Dir     string // scanned directory, as given on the command line
	Matches []matcher.Match
}

// MarkdownFormatter renders a Report as a Markdown document.
//
// Paths and line numbers are placed in code spans and snippet lines in a
// fenced c block; neither passes through EscapeMarkdown, so the bytes of a
// report depend only on the matches. A snippet that itself contains a
// ``` line will end the fence early.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format appends the rendered report to buf and returns the extended slice.
func (f *MarkdownFormatter) Format(buf []byte, r Report) []byte {
	buf = append(buf, "# C/C++ For Loops\n\n"...)
	buf = append(buf, "Scanned directory: `"...)
	buf = append(buf, r.Dir...)
	buf = append(buf, "`\n\n"...)

	if len(r.Matches) == 0 {
		buf = append(buf, "## No for loops found\n\n"...)
		buf = append(buf, "No for loop constructs were found in C/C++ source files under the given directory."...)
		return buf
	}

	buf = append(buf, "## For loops found ("...)
	buf = strconv.AppendInt(buf, int64(len(r.Matches)), 10)
	buf = append(buf, ")\n\n"...)

	for i, m := range r.Matches {
		buf = f.formatMatch(buf, i+1, m)
	}
	return buf
}

func (f *MarkdownFormatter) formatMatch(buf []byte, seq int, m matcher.Match) []byte {
	buf = append(buf, "### Loop "...)
	buf = strconv.AppendInt(buf, int64(seq), 10)
	buf = append(buf, "\n\n"...)

	buf = append(buf, "- **File**: `"...)
	buf = append(buf, m.FilePath...)
	buf = append(buf, "`\n"...)
	buf = append(buf, "- **Line**: `"...)
	buf = strconv.AppendInt(buf, int64(m.LineNum), 10)
	buf = append(buf, "`\n\n"...)

	buf = append(buf, "```c\n"...)
	for _, line := range m.Snippet {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	buf = append(buf, "```\n\n"...)
	return buf
}

// markdownEscaper prefixes each Markdown-significant character with a backslash.
// strings.Replacer works in a single pass, so inserted backslashes are not escaped again.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"`", "\\`",
)

// EscapeMarkdown escapes *, _, [, ], backtick and backslash for use in plain
// Markdown text. MarkdownFormatter does not use it.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
