package cmd

import (
	"fmt"

	"github.com/silverfern314/notevault/internal/audit"
	"github.com/silverfern314/notevault/internal/configs"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		vault, err := openVault(AuthLogger)
		if err != nil {
			return AuthLogger.ErrorfAndReturn("failed to load config: %v", err)
		}

		user := vault.config.Session.CurrentUser
		if user == "" {
			// Logout is idempotent: already logged out is not an error.
			fmt.Println(color.GreenString("✓") + " Already logged out")
			return nil
		}

		vault.registry.Logout()
		vault.config.Session.CurrentUser = ""
		if err := configs.SaveConfig(vault.config); err != nil {
			return AuthLogger.ErrorfAndReturn("failed to save config: %v", err)
		}

		audit.Log(audit.Entry{User: user, Operation: "auth.logout"})

		fmt.Println(color.GreenString("✓") + " Logged out " + ui.Highlight.Sprint(user))
		return nil
	},
}
