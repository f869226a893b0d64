package cmd

import (
	"errors"
	"fmt"

	"github.com/silverfern314/notevault/internal/audit"
	verrors "github.com/silverfern314/notevault/internal/errors"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var foldersCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		vault, err := openVault(FoldersLogger)
		if err != nil {
			return FoldersLogger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if err := vault.attach(); err != nil {
			return FoldersLogger.ErrorfAndReturn("not logged in: %v", err)
		}

		err = vault.store.CreateFolder(name)
		if errors.Is(err, verrors.ErrDuplicateFolder) {
			fmt.Println(color.RedString("✗") + " Folder " + ui.Highlight.Sprint(name) + " already exists")
			return err
		}
		if err != nil {
			return FoldersLogger.ErrorfAndReturn("failed to create folder: %v", err)
		}

		audit.Log(audit.Entry{
			User:      vault.registry.CurrentUser(),
			Operation: "folder.create",
			Folder:    name,
		})

		fmt.Println(color.GreenString("✓") + " Created folder " + ui.Highlight.Sprint(name))
		return nil
	},
}
