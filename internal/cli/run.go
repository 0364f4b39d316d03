package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dl/findloops/internal/input"
	"github.com/dl/findloops/internal/matcher"
	"github.com/dl/findloops/internal/output"
	"github.com/dl/findloops/internal/scan"
	"github.com/dl/findloops/internal/walker"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1 // bad target directory or unwritable report
	ExitUsage = 2 // invalid arguments or flags
)

// errNotExist and errNotDir are the pre-flight failures for the target directory.
var (
	errNotExist = errors.New("directory does not exist")
	errNotDir   = errors.New("not a directory")
)

// Run executes a scan with the given config, writing notices to stdout and
// diagnostics to stderr. Returns the process exit code.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	styles := output.NoStyles()
	if output.StdoutIsTerminal() {
		styles = output.NewStyles()
	}
	return run(cfg, os.Stdout, logger, styles)
}

func run(cfg Config, stdout io.Writer, logger *log.Logger, styles output.Styles) int {
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid arguments", "err", err)
		return ExitUsage
	}

	if err := checkDir(cfg.Dir); err != nil {
		logger.Error(err.Error(), "dir", cfg.Dir)
		return ExitError
	}

	fmt.Fprintf(stdout, "Scanning directory: %s\n", styles.RenderPath(cfg.Dir))

	s := scan.New(input.NewBufferedReader(), matcher.NewLoopMatcher(), walker.NewCSourceFilter(), logger)
	matches, err := s.Collect(cfg.Dir)
	if err != nil {
		logger.Error("cannot scan directory", "dir", cfg.Dir, "err", err)
		return ExitError
	}

	report := output.NewMarkdownFormatter().Format(nil, output.Report{
		Dir:     cfg.Dir,
		Matches: matches,
	})
	if err := output.WriteFile(cfg.Output, report); err != nil {
		logger.Error("cannot write report", "path", cfg.Output, "err", err)
		return ExitError
	}

	fmt.Fprintf(stdout, "For loops written to %s\n", styles.RenderPath(cfg.Output))
	if len(matches) > 0 {
		fmt.Fprintf(stdout, "Found %s for loops\n", styles.RenderCount(len(matches)))
	}
	return ExitOK
}

// checkDir is the pre-flight check on the scan target.
func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errNotExist
		}
		return err
	}
	if !info.IsDir() {
		return errNotDir
	}
	return nil
}
