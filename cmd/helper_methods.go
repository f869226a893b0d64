package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/silverfern314/notevault/internal/ui"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when
// not in verbose or debug mode. Returns the spinner and a function that
// should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup
// function calls ui.EnsureNewline() on the final message before
// printing it, so output formatting stays consistent across commands.
func startSpinner(message string, verbose, debug bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
