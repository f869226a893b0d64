package cmd

import (
	"fmt"
	"os"

	"github.com/silverfern314/notevault/internal/configs"
	"github.com/silverfern314/notevault/internal/notestore"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and sync configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		vault, err := openVault(AuthLogger)
		if err != nil {
			return AuthLogger.ErrorfAndReturn("failed to load config: %v", err)
		}

		user := vault.config.Session.CurrentUser
		if user == "" {
			fmt.Println(ui.Muted.Sprint("not logged in"))
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("notevault auth login <username>"))
		} else {
			fmt.Println("User:    " + ui.Highlight.Sprint(user))

			path := notestore.DocumentPath(configs.UserVaultSettings.DataPath, user)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Println("Store:   " + ui.Muted.Sprint("no document yet"))
			} else {
				fmt.Println("Store:   " + ui.Path.Sprint(path))
			}
		}

		backend := vault.config.Sync.Backend
		if backend == "" || backend == configs.BackendNone {
			fmt.Println("Sync:    " + ui.Muted.Sprint("disabled"))
		} else {
			fmt.Println("Sync:    " + ui.Highlight.Sprint(backend) + " " + ui.Muted.Sprint(vault.config.Sync.BaseURL))
		}

		users, err := notestore.ListUsers(configs.UserVaultSettings.DataPath)
		if err != nil {
			return AuthLogger.ErrorfAndReturn("failed to list documents: %v", err)
		}
		if len(users) > 0 {
			fmt.Printf("Vaults:  %d %s\n", len(users), ui.Muted.Sprint("local encrypted documents"))
		}

		return nil
	},
}
