package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one semantic category of CLI text. With color
// enabled it applies the category's color; without, it falls back to a
// plain-text decoration so categories stay distinguishable.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

var (
	// Code marks runnable commands: yellow, or `backticks`.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path marks file locations: yellow, undecorated.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag marks CLI flags: yellow, undecorated (the -- prefix speaks
	// for itself).
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	// Info marks hints and follow-up suggestions: cyan, undecorated.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight marks user-supplied values such as usernames, folder
	// names and note titles: cyan, or 'single quotes'.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted marks secondary detail such as ids and timestamps: gray,
	// or (parentheses).
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Sprint formats the arguments and returns the decorated string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the
// decorated string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// noColor honors NO_COLOR (https://no-color.org/) in addition to
// fatih/color's own terminal detection.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// EnsureNewline appends a trailing newline when s lacks one.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}
