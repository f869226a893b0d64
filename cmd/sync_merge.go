package cmd

import (
	"errors"

	"github.com/silverfern314/notevault/internal/audit"
	verrors "github.com/silverfern314/notevault/internal/errors"
	"github.com/silverfern314/notevault/internal/notestore"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var syncMergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge local and remote documents, then push the result",
	Long: `Reconcile the local and remote encrypted documents. Notes present on
both sides keep whichever version was updated last; on a timestamp tie
the local version wins. Folders are unioned.

Deletions are not tracked across sync: a note deleted on one side but
still present on the other re-appears after a merge.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vault, err := openVault(SyncLogger)
		if err != nil {
			return SyncLogger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if err := vault.attach(); err != nil {
			return SyncLogger.ErrorfAndReturn("not logged in: %v", err)
		}

		engine, err := vault.newEngine(SyncLogger)
		if err != nil {
			return SyncLogger.ErrorfAndReturn("failed to build sync backend: %v", err)
		}

		spinner, cleanup := startSpinner("Merging with remote...", syncVerbose, syncDebug)
		defer cleanup()

		merged, err := engine.Merge(vault.documentPath())
		if errors.Is(err, verrors.ErrSyncBusy) {
			spinner.FinalMSG = color.RedString("✗") + " Another sync is already running"
			return err
		}
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Merge failed"
			return SyncLogger.ErrorfAndReturn("merge failed: %v", err)
		}
		if !merged {
			spinner.FinalMSG = color.YellowString("!") + " No sync backend configured, run " +
				ui.Code.Sprint("notevault sync config") + " first"
			return nil
		}

		notesCount := 0
		if doc, err := notestore.LoadDocument(vault.documentPath()); err == nil {
			notesCount = len(doc.Notes)
		}

		audit.Log(audit.Entry{
			User:       vault.registry.CurrentUser(),
			Operation:  "sync.merge",
			Backend:    vault.config.Sync.Backend,
			NotesCount: notesCount,
		})

		spinner.FinalMSG = color.GreenString("✓") + " Merged with " +
			ui.Highlight.Sprint(vault.config.Sync.Backend) + " backend, vault now holds " +
			ui.Highlight.Sprintf("%d", notesCount) + " notes"
		return nil
	},
}
