package cmd

import (
	"errors"

	"github.com/silverfern314/notevault/internal/audit"
	verrors "github.com/silverfern314/notevault/internal/errors"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the local encrypted document to the remote",
	Args:  cobra.NoArgs,
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

		spinner, cleanup := startSpinner("Pushing encrypted document...", syncVerbose, syncDebug)
		defer cleanup()

		pushed, err := engine.Upload(vault.documentPath())
		if errors.Is(err, verrors.ErrSyncBusy) {
			spinner.FinalMSG = color.RedString("✗") + " Another sync is already running"
			return err
		}
		if err != nil {
			spinner.FinalMSG = color.RedString("✗") + " Push failed"
			return SyncLogger.ErrorfAndReturn("push failed: %v", err)
		}
		if !pushed {
			spinner.FinalMSG = color.YellowString("!") + " No sync backend configured, run " +
				ui.Code.Sprint("notevault sync config") + " first"
			return nil
		}

		audit.Log(audit.Entry{
			User:      vault.registry.CurrentUser(),
			Operation: "sync.push",
			Backend:   vault.config.Sync.Backend,
		})

		spinner.FinalMSG = color.GreenString("✓") + " Pushed to " + ui.Highlight.Sprint(vault.config.Sync.Backend) + " backend"
		return nil
	},
}
