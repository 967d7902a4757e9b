// Package output provides terminal output formatting utilities for the
// relkit CLI. This package is designed to have minimal dependencies to avoid
// import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsTerminal reports whether stdout is attached to a terminal. Spinners and
// colors are disabled when it is not.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintSuccess prints a colored success message with a checkmark.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintStep prints a colored progress line for a pipeline step.
func PrintStep(out io.Writer, message string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", cyan("→"), message)
}

// PrintWarning prints a colored warning line.
func PrintWarning(out io.Writer, message string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("!"), message)
}
