// Package output provides terminal output formatting utilities for the changelog CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DefaultWidth is used when stdout is not a terminal.
const DefaultWidth = 80

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	return terminalWidth(int(os.Stdout.Fd()))
}

func terminalWidth(fd int) int {
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		return width
	}
	return DefaultWidth
}

// ResolveLineWidth maps a configured line width to the wrap column.
// 0 selects the terminal width.
func ResolveLineWidth(configured int) int {
	if configured > 0 {
		return configured
	}
	return GetTerminalWidth()
}

// PrintSuccess prints message in green.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintln(out, green(message))
}

// PrintViolation prints a "[file] message" line with the filename highlighted.
func PrintViolation(out io.Writer, filename, message string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("["+filename+"]"), message)
}

// SetNoColor toggles color output globally.
func SetNoColor(disabled bool) {
	if disabled {
		color.NoColor = true
	}
}
