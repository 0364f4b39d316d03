package output

import (
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for stdout notices.
// The zero value renders text unchanged.
type Styles struct {
	Path    lipgloss.Style
	Count   lipgloss.Style
	enabled bool
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),            // magenta
		Count:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true), // bold green
		enabled: true,
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{}
}

// RenderPath styles a file or directory path.
func (s Styles) RenderPath(p string) string {
	if !s.enabled {
		return p
	}
	return s.Path.Render(p)
}

// RenderCount styles a match count.
func (s Styles) RenderCount(n int) string {
	text := strconv.Itoa(n)
	if !s.enabled {
		return text
	}
	return s.Count.Render(text)
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
