// Package scan runs the loop heuristic over every C/C++ source file under a
// directory, one file at a time.
package scan

import (
	"errors"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/dl/findloops/internal/input"
	"github.com/dl/findloops/internal/matcher"
	"github.com/dl/findloops/internal/walker"
)

// Scanner walks a directory tree and yields the loops found in its source files.
type Scanner struct {
	reader  input.Reader
	matcher matcher.Matcher
	filter  *walker.SourceFilter
	logger  *log.Logger
}

// New creates a Scanner. Per-file and per-directory failures are reported
// to logger at warn level.
func New(r input.Reader, m matcher.Matcher, filter *walker.SourceFilter, logger *log.Logger) *Scanner {
	return &Scanner{
		reader:  r,
		matcher: m,
		filter:  filter,
		logger:  logger,
	}
}

// Matches returns a single-pass sequence of matches under root in walk order,
// then line order. Files and subdirectories that cannot be read are logged
// and skipped. If root itself cannot be listed the sequence yields that error
// once and ends.
func (s *Scanner) Matches(root string) iter.Seq2[matcher.Match, error] {
	return func(yield func(matcher.Match, error) bool) {
		for entry, err := range walker.Walk(root, s.filter) {
			if err != nil {
				var we *walker.WalkError
				if errors.As(err, &we) && we.Root {
					yield(matcher.Match{}, err)
					return
				}
				s.logger.Warn("walk error", "err", err)
				continue
			}

			for _, m := range s.scanFile(entry.Path) {
				if !yield(m, nil) {
					return
				}
			}
		}
	}
}

// Collect drains Matches into a slice.
func (s *Scanner) Collect(root string) ([]matcher.Match, error) {
	var matches []matcher.Match
	for m, err := range s.Matches(root) {
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// scanFile reads one file and returns its matches. The read buffer is
// released before returning, so a read error only costs this file's matches.
func (s *Scanner) scanFile(path string) []matcher.Match {
	readResult, err := s.reader.Read(path)
	if err != nil {
		s.logger.Warn("cannot read file", "path", path, "err", err)
		return nil
	}
	defer func() {
		if readResult.Closer != nil {
			readResult.Closer()
		}
	}()

	if readResult.Data == nil {
		return nil
	}

	// SplitLines copies out of the pooled buffer, so the strings outlive Closer.
	loops := s.matcher.FindAll(matcher.SplitLines(readResult.Data))
	if len(loops) == 0 {
		return nil
	}
	matches := make([]matcher.Match, len(loops))
	for i, l := range loops {
		matches[i] = matcher.Match{
			FilePath: path,
			LineNum:  l.LineNum,
			Snippet:  l.Lines,
		}
	}
	return matches
}
