package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color functions with auto-detection for terminal support.
	// These fall back gracefully when colors are unavailable.
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg   = color.New(color.FgRed).SprintFunc()
	kindFmt    = color.New(color.FgYellow).SprintFunc()
)

// FormatError formats a classified error for display. The color functions
// degrade to plain text on their own when output is not a terminal.
func FormatError(err *Error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(errorLabel("Error"))
	sb.WriteString(" [")
	sb.WriteString(kindFmt(err.Kind.String()))
	sb.WriteString("]: ")
	sb.WriteString(errorMsg(err.Message))
	sb.WriteString("\n")
	return sb.String()
}

// PrintError prints a formatted classified error to stderr.
func PrintError(err *Error) {
	FprintError(os.Stderr, err)
}

// FprintError prints a formatted classified error to the given writer.
func FprintError(w io.Writer, err *Error) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

// PrintUnclassified prints a plain error to stderr with its raw detail.
// Used for failures outside the closed taxonomy.
func PrintUnclassified(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", errorLabel("Error:"), err.Error())
}
