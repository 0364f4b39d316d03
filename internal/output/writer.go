package output

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// FileWriter writes a report to a file through a raw descriptor.
type FileWriter struct {
	path string
	fd   int
}

// CreateFile opens path for writing, creating it or truncating an existing file.
func CreateFile(path string) (*FileWriter, error) {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC|unix.O_CLOEXEC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &FileWriter{path: path, fd: fd}, nil
}

// Write writes all of data, retrying short writes.
func (w *FileWriter) Write(data []byte) (int, error) {
	written := 0
	for written < len(data) {
		n, err := unix.Write(w.fd, data[written:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return written, fmt.Errorf("write %s: %w", w.path, err)
		}
		written += n
	}
	return written, nil
}

// Close closes the underlying descriptor. Errors from close(2) are reported
// since they can be the first sign of a failed write on some filesystems.
func (w *FileWriter) Close() error {
	if err := unix.Close(w.fd); err != nil {
		return fmt.Errorf("close %s: %w", w.path, err)
	}
	return nil
}

// WriteFile creates path and writes data to it, closing it on every path.
func WriteFile(path string, data []byte) error {
	w, err := CreateFile(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
