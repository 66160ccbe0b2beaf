// Package output formats CLI progress for terminals and CI logs.
package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// IsCI reports whether we run under a CI system.
func IsCI() bool {
	return os.Getenv("CI") == "true"
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(os.Stdout) || IsCI()
}

// Dimmed returns dimmed text if color is enabled.
func Dimmed(text string, color bool) string {
	return paint(text, colorGray, color)
}

func paint(text, code string, color bool) string {
	if !color || text == "" {
		return text
	}
	return code + text + colorReset
}
