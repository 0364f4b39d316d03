package input

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// bufPool pools read buffers so sequential files reuse one backing array.
// Buffers are stored as *[]byte so the pool keeps the grown array.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64*1024)
		return &b
	},
}

// BufferedReader reads whole files using unix.Open with O_NOATIME and unix.Pread.
// The file descriptor is always closed before Read returns.
type BufferedReader struct{}

// NewBufferedReader creates a new BufferedReader.
func NewBufferedReader() *BufferedReader {
	return &BufferedReader{}
}

func (r *BufferedReader) Read(path string) (ReadResult, error) {
	fd, err := openFile(path)
	if err != nil {
		return ReadResult{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer unix.Close(fd)

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return ReadResult{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.Mode&unix.S_IFMT == unix.S_IFDIR {
		return ReadResult{}, fmt.Errorf("read %s: %w", path, unix.EISDIR)
	}

	if stat.Size == 0 {
		return ReadResult{Data: nil, Closer: noopCloser}, nil
	}

	data, release, err := readAll(fd, stat.Size)
	if err != nil {
		return ReadResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ReadResult{Data: data, Closer: release}, nil
}

// readAll reads size bytes from fd into a pooled buffer. The returned release
// func hands the buffer back to the pool. On error the buffer is already released.
func readAll(fd int, size int64) ([]byte, func() error, error) {
	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < int(size) {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}
	release := func() error {
		*bp = buf[:0]
		bufPool.Put(bp)
		return nil
	}

	// pread has no seek state; a file that shrank since fstat stops at EOF.
	var total int
	for total < int(size) {
		n, err := unix.Pread(fd, buf[total:], int64(total))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			release()
			return nil, nil, err
		}
		if n == 0 {
			break
		}
		total += n
	}

	return buf[:total], release, nil
}

func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME|unix.O_CLOEXEC, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	}
	return fd, err
}
