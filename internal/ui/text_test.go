package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	// Ensure NO_COLOR is not set for this test.
	os.Unsetenv("NO_COLOR")
	// Force color output for testing.
	color.NoColor = false

	// Code formatter should not have backticks when color is enabled.
	result := Code.Sprint("notevault auth login")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}

	// Verify it contains ANSI escape codes (color output).
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "notevault auth login", "`notevault auth login`"},
		{"Path has no decoration", Path, "notes_alice.encrypted", "notes_alice.encrypted"},
		{"Flag has no decoration", Flag, "--folder", "--folder"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "alice", "'alice'"},
		{"Muted adds parentheses", Muted, "unknown", "(unknown)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	got := Highlight.Sprintf("%s/%s", "work", "groceries")
	if got != "'work/groceries'" {
		t.Errorf("got %q, want %q", got, "'work/groceries'")
	}
}

func TestEnsureNewline(t *testing.T) {
	if got := EnsureNewline("text"); got != "text\n" {
		t.Errorf("got %q", got)
	}
	if got := EnsureNewline("text\n"); got != "text\n" {
		t.Errorf("got %q", got)
	}
	if got := EnsureNewline(""); got != "\n" {
		t.Errorf("got %q", got)
	}
}
