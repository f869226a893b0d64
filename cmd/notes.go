package cmd

import (
	logger "github.com/silverfern314/notevault/internal/logging"
	"github.com/spf13/cobra"
)

var (
	notesVerbose bool
	notesDebug   bool
	NotesLogger  logger.Logger

	NotesCmd = &cobra.Command{
		Use:   "notes",
		Short: "Manage encrypted notes",
		Long: `Provides creation, listing, display, editing, and deletion of notes.

Note titles and contents are encrypted with your passphrase before they
touch disk. Every command prompts for the passphrase (or reads
NOTEVAULT_PASSPHRASE when stdin is not a terminal).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			NotesLogger = logger.Logger{
				Verbose: notesVerbose,
				Debug:   notesDebug,
			}
			NotesLogger.Debugf("Initializing notes command with verbose=%t, debug=%t", notesVerbose, notesDebug)
		},
	}
)

func init() {
	NotesCmd.PersistentFlags().BoolVarP(&notesVerbose, "verbose", "v", false, "enable verbose output")
	NotesCmd.PersistentFlags().BoolVar(&notesDebug, "debug", false, "enable debug output")

	NotesCmd.AddCommand(notesCreateCmd)
	NotesCmd.AddCommand(notesListCmd)
	NotesCmd.AddCommand(notesShowCmd)
	NotesCmd.AddCommand(notesEditCmd)
	NotesCmd.AddCommand(notesDeleteCmd)
}
