package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the findloops command. The exit code of the run is
// stored in *code; cobra errors are argument errors.
func NewRootCmd(code *int) *cobra.Command {
	cfg := Config{Dir: DefaultDir}

	cmd := &cobra.Command{
		Use:   "findloops [directory]",
		Short: "Find for loops in C/C++ source files",
		Long: `findloops walks a directory, looks for lines that open a for loop in
C/C++ sources (.c .cpp .cc .cxx .h .hpp .hh) and writes each loop's file,
line number and first lines to a Markdown report.

Detection is textual: comments and string literals are not parsed.

Exit Codes:
  0  - Success, including when no loops were found
  1  - Directory missing or not a directory, or report not writable
  2  - CLI usage error`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Dir = args[0]
			}
			*code = Run(cfg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", DefaultOutput, "output Markdown file")
	return cmd
}

// Execute parses args and runs findloops, returning the process exit code.
func Execute(args []string) int {
	code := ExitOK
	cmd := NewRootCmd(&code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n%s", err, cmd.UsageString())
		return ExitUsage
	}
	return code
}
