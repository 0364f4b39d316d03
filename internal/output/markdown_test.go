package output

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dl/findloops/internal/matcher"
)

func TestMarkdownFormatter_NoMatches(t *testing.T) {
	f := NewMarkdownFormatter()
	got := string(f.Format(nil, Report{Dir: "src"}))
	want := "# C/C++ For Loops\n\n" +
		"Scanned directory: `src`\n\n" +
		"## No for loops found\n\n" +
		"No for loop constructs were found in C/C++ source files under the given directory."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMarkdownFormatter_Matches(t *testing.T) {
	f := NewMarkdownFormatter()
	r := Report{
		Dir: ".",
		Matches: []matcher.Match{
			{FilePath: "./b/c.cpp", LineNum: 1, Snippet: []string{"for (;;) {", "  x++;", "}"}},
			{FilePath: "./d_e.h", LineNum: 12, Snippet: []string{"for (int *p = a; *p; p++) { s_[0] = `x`; }"}},
		},
	}

	got := string(f.Format(nil, r))
	want := "# C/C++ For Loops\n\n" +
		"Scanned directory: `.`\n\n" +
		"## For loops found (2)\n\n" +
		"### Loop 1\n\n" +
		"- **File**: `./b/c.cpp`\n" +
		"- **Line**: `1`\n\n" +
		"```c\n" +
		"for (;;) {\n" +
		"  x++;\n" +
		"}\n" +
		"```\n\n" +
		"### Loop 2\n\n" +
		"- **File**: `./d_e.h`\n" +
		"- **Line**: `12`\n\n" +
		"```c\n" +
		"for (int *p = a; *p; p++) { s_[0] = `x`; }\n" +
		"```\n\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkdownFormatter_AppendsToBuffer(t *testing.T) {
	f := NewMarkdownFormatter()
	buf := []byte("prefix\n")
	got := string(f.Format(buf, Report{Dir: "x"}))
	if !strings.HasPrefix(got, "prefix\n# C/C++ For Loops\n") {
		t.Errorf("output %q does not extend the given buffer", got)
	}
}

func TestMarkdownFormatter_Deterministic(t *testing.T) {
	f := NewMarkdownFormatter()
	r := Report{Dir: "d", Matches: []matcher.Match{{FilePath: "d/a.c", LineNum: 3, Snippet: []string{"for (;;) {}"}}}}
	first := string(f.Format(nil, r))
	second := string(f.Format(nil, r))
	if first != second {
		t.Error("formatting the same report twice produced different output")
	}
}

func TestMarkdownFormatter_ParsesAsMarkdown(t *testing.T) {
	snippets := [][]string{
		{"for (i = 0; i < n; i++) {", "  a[i] = b[i] * c_[i];", "}"},
		{"for (;;) {}"},
	}
	r := Report{Dir: "src"}
	for i, s := range snippets {
		r.Matches = append(r.Matches, matcher.Match{FilePath: "src/k.c", LineNum: i + 1, Snippet: s})
	}
	src := NewMarkdownFormatter().Format(nil, r)

	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	headings := map[int]int{}
	var blocks []*ast.FencedCodeBlock
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			headings[node.Level]++
		case *ast.FencedCodeBlock:
			blocks = append(blocks, node)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if headings[1] != 1 || headings[2] != 1 || headings[3] != len(snippets) {
		t.Errorf("headings by level = %v, want 1 h1, 1 h2, %d h3", headings, len(snippets))
	}
	if len(blocks) != len(snippets) {
		t.Fatalf("got %d code blocks, want %d", len(blocks), len(snippets))
	}
	for i, b := range blocks {
		if lang := string(b.Language(src)); lang != "c" {
			t.Errorf("block %d language = %q, want c", i, lang)
		}
		var body strings.Builder
		lines := b.Lines()
		for j := 0; j < lines.Len(); j++ {
			seg := lines.At(j)
			body.Write(seg.Value(src))
		}
		want := strings.Join(snippets[i], "\n") + "\n"
		if body.String() != want {
			t.Errorf("block %d body = %q, want %q", i, body.String(), want)
		}
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"a*b", `a\*b`},
		{"snake_case", `snake\_case`},
		{"a[i]", `a\[i\]`},
		{"`code`", "\\`code\\`"},
		{`C:\dir`, `C:\\dir`},
		{`\*`, `\\\*`},
		{"for (int *p = a[0]; p; p++)", `for (int \*p = a\[0\]; p; p++)`},
	}
	for _, tt := range tests {
		if got := EscapeMarkdown(tt.in); got != tt.want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeMarkdown_NotAppliedToReport(t *testing.T) {
	r := Report{
		Dir:     "my_dir",
		Matches: []matcher.Match{{FilePath: "my_dir/a_b.c", LineNum: 1, Snippet: []string{"for (p = *q; p; p++) { x_[0]; }"}}},
	}
	got := string(NewMarkdownFormatter().Format(nil, r))
	for _, raw := range []string{"`my_dir`", "`my_dir/a_b.c`", "for (p = *q; p; p++) { x_[0]; }\n"} {
		if !strings.Contains(got, raw) {
			t.Errorf("report is missing unescaped %q", raw)
		}
	}
	if strings.Contains(got, `\_`) || strings.Contains(got, `\*`) {
		t.Error("report contains escaped characters")
	}
}
