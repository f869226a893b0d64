package cmd

import (
	"errors"

	"github.com/silverfern314/notevault/internal/audit"
	verrors "github.com/silverfern314/notevault/internal/errors"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the remote document, overwriting the local copy",
	Long: `Download the remote encrypted document and replace the local file
with it. Local changes that were never pushed are lost; use
'notevault sync merge' to reconcile instead.`,
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

		spinner, cleanup := startSpinner("Pulling encrypted document...", syncVerbose, syncDebug)
		defer cleanup()

		pulled, err := engine.Download(vault.documentPath())
		if errors.Is(err, verrors.ErrSyncBusy) {
			spinner.FinalMSG = color.RedString("✗") + " Another sync is already running"
			return err
		}
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Pull failed"
			return SyncLogger.ErrorfAndReturn("pull failed: %v", err)
		}
		if !pulled {
			if !engine.HasBackend() {
				spinner.FinalMSG = color.YellowString("!") + " No sync backend configured, run " +
					ui.Code.Sprint("notevault sync config") + " first"
				return nil
			}
			spinner.FinalMSG = color.YellowString("!") + " Remote has no document yet, nothing pulled"
			return nil
		}

		audit.Log(audit.Entry{
			User:      vault.registry.CurrentUser(),
			Operation: "sync.pull",
			Backend:   vault.config.Sync.Backend,
		})

		spinner.FinalMSG = color.GreenString("✓") + " Pulled from " + ui.Highlight.Sprint(vault.config.Sync.Backend) + " backend"
		return nil
	},
}
