package cmd

import (
	"fmt"
	"time"

	"github.com/silverfern314/notevault/internal/ui"

	"github.com/spf13/cobra"
)

var foldersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List folders in the vault",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vault, err := openVault(FoldersLogger)
		if err != nil {
			return FoldersLogger.ErrorfAndReturn("failed to load config: %v", err)
		}
		if err := vault.attach(); err != nil {
			return FoldersLogger.ErrorfAndReturn("not logged in: %v", err)
		}

		folders, err := vault.store.ListFolders()
		if err != nil {
			return FoldersLogger.ErrorfAndReturn("failed to list folders: %v", err)
		}

		if len(folders) == 0 {
			fmt.Println(ui.Muted.Sprint("No folders yet"))
			return nil
		}

		for _, f := range folders {
			created := time.UnixMilli(f.CreatedAt).Format("2006-01-02 15:04")
			fmt.Printf("%s  %s\n", ui.Highlight.Sprint(f.Name), ui.Muted.Sprintf("created %s", created))
		}
		return nil
	},
}
