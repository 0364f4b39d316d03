package matcher

// Loop is one heuristically detected for loop inside a file.
type Loop struct {
	LineNum int      // 1-based line of the for statement
	Lines   []string // snippet: raw source lines, terminators removed, at most MaxSnippet
}

// Match is a Loop attributed to the file it was found in.
type Match struct {
	FilePath string
	LineNum  int
	Snippet  []string
}

// Matcher finds loops in the lines of a single file.
type Matcher interface {
	FindAll(lines []string) []Loop
}
