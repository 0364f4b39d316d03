package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCmd_Flags(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.cc"), "for (;;) {}\n")
	out := filepath.Join(t.TempDir(), "report.md")

	for _, flag := range []string{"-o", "--output"} {
		t.Run(flag, func(t *testing.T) {
			os.Remove(out)
			code := -1
			cmd := NewRootCmd(&code)
			cmd.SetArgs([]string{root, flag, out})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if code != ExitOK {
				t.Fatalf("exit code = %d, want %d", code, ExitOK)
			}
			report, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("report not written: %v", err)
			}
			if !strings.Contains(string(report), "### Loop 1") {
				t.Errorf("report %q missing the loop", report)
			}
		})
	}
}

func TestRootCmd_Defaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.c"), "int x;\n")
	t.Chdir(root)

	code := -1
	cmd := NewRootCmd(&code)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if code != ExitOK {
		t.Fatalf("exit code = %d, want %d", code, ExitOK)
	}
	report, err := os.ReadFile(filepath.Join(root, DefaultOutput))
	if err != nil {
		t.Fatalf("default report not written: %v", err)
	}
	if !strings.Contains(string(report), "Scanned directory: `.`") {
		t.Errorf("report %q does not name the default directory", report)
	}
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	code := -1
	cmd := NewRootCmd(&code)
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	cmd.SetArgs([]string{"a", "b"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for two positional arguments")
	}
	if code != -1 {
		t.Errorf("run should not start, code = %d", code)
	}
}

func TestExecute_UsageError(t *testing.T) {
	if code := Execute([]string{"--no-such-flag"}); code != ExitUsage {
		t.Errorf("Execute() = %d, want %d", code, ExitUsage)
	}
}

func TestExecute_Help(t *testing.T) {
	if code := Execute([]string{"--help"}); code != ExitOK {
		t.Errorf("Execute(--help) = %d, want %d", code, ExitOK)
	}
}
