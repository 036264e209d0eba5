// Package output provides styled terminal output for the protomodels CLI.
//
// Functions use lipgloss for styling but abstract away the details from
// callers. Status messages go to stdout; errors go to stderr so they never
// mix with piped output.
package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message in green.
//
// Example:
//
//	output.Success("Wrote schema: tachiyomi.proto")
func Success(msg string) {
	fmt.Println(successStyle.Render("✔ " + msg))
}

// Error prints an error message in red to stderr.
//
// Example:
//
//	output.Error("2 problems found; tachiyomi.proto not written")
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ " + msg))
}

// Info prints an informational message in cyan.
func Info(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// Step prints an indented step message in gray.
//
// Example:
//
//	output.Step("Chapter.kt (3 fields)")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
