package walker

import (
	"iter"
	"os"
	"unsafe"
)

// FileEntry represents a source file discovered during directory traversal.
type FileEntry struct {
	Path string
}

// Walk traverses root top-down and yields every source file it finds.
// Within a directory, files are yielded before any subdirectory is entered,
// and entries are visited in lexical name order so that repeated walks of an
// unchanged tree produce the same sequence.
//
// Symlinks to directories are not followed. A directory that cannot be listed
// yields a *WalkError and the walk moves on to its siblings; if that directory
// is root itself the error has Root set and nothing else is yielded.
func Walk(root string, filter *SourceFilter) iter.Seq2[FileEntry, error] {
	return func(yield func(FileEntry, error) bool) {
		w := &treeWalker{filter: filter, yield: yield}
		w.walkDir(root, true)
	}
}

type treeWalker struct {
	filter *SourceFilter
	yield  func(FileEntry, error) bool
}

// walkDir lists one directory, yields its files, then recurses into its
// subdirectories in order. Returns false once the consumer stops iterating.
func (w *treeWalker) walkDir(dir string, isRoot bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return w.yield(FileEntry{}, &WalkError{Path: dir, Err: err, Root: isRoot})
	}

	var subdirs []string
	for _, entry := range entries {
		fullPath := joinPath(dir, entry.Name())
		mode := entry.Type()

		switch {
		case mode.IsDir():
			subdirs = append(subdirs, fullPath)

		case mode&os.ModeSymlink != 0:
			// os.walk semantics: a link to a directory is listed but never
			// descended into; anything else, including a dangling link, is a file.
			if info, err := os.Stat(fullPath); err == nil && info.IsDir() {
				continue
			}
			if !w.emit(fullPath, entry.Name()) {
				return false
			}

		case mode.IsRegular():
			if !w.emit(fullPath, entry.Name()) {
				return false
			}
		}
	}

	for _, sub := range subdirs {
		if !w.walkDir(sub, false) {
			return false
		}
	}
	return true
}

func (w *treeWalker) emit(fullPath, name string) bool {
	if !w.filter.Matches(name) {
		return true
	}
	return w.yield(FileEntry{Path: fullPath}, nil)
}

// joinPath concatenates a directory and entry name with a single separator.
// Unlike filepath.Join it does not Clean, so a root of "." is kept as a
// "./" prefix on every reported path.
func joinPath(dirPath, name string) string {
	needsSep := len(dirPath) > 0 && dirPath[len(dirPath)-1] != '/'
	n := len(dirPath) + len(name)
	if needsSep {
		n++
	}
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	copy(buf, dirPath)
	i := len(dirPath)
	if needsSep {
		buf[i] = '/'
		i++
	}
	copy(buf[i:], name)
	return unsafe.String(&buf[0], len(buf))
}

// WalkError represents an error during directory traversal.
type WalkError struct {
	Path string
	Err  error
	Root bool // the walk root itself could not be listed
}

func (e *WalkError) Error() string {
	return "walk " + e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}
