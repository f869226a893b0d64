package cmd

import (
	"fmt"

	"github.com/silverfern314/notevault/internal/audit"
	"github.com/silverfern314/notevault/internal/configs"
	"github.com/silverfern314/notevault/internal/cryptobox"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in as a user and verify the passphrase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		vault, err := openVault(AuthLogger)
		if err != nil {
			return AuthLogger.ErrorfAndReturn("failed to load config: %v", err)
		}

		passphrase, err := ui.ReadPassphrase(fmt.Sprintf("Passphrase for %s: ", username))
		if err != nil {
			return AuthLogger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		key := cryptobox.KeyFromPassphrase(passphrase)

		// The only password check in the system: try to decrypt an
		// existing note. A brand-new user has nothing to check against
		// and passes trivially.
		ok, err := vault.store.VerifyLogin(username, key)
		if err != nil {
			return AuthLogger.ErrorfAndReturn("failed to verify passphrase: %v", err)
		}
		if !ok {
			fmt.Println(color.RedString("✗") + " Wrong passphrase for " + ui.Highlight.Sprint(username))
			return fmt.Errorf("login verification failed")
		}

		vault.registry.Login(username, key)
		vault.config.Session.CurrentUser = username
		if err := configs.SaveConfig(vault.config); err != nil {
			return AuthLogger.ErrorfAndReturn("failed to save config: %v", err)
		}

		audit.Log(audit.Entry{User: username, Operation: "auth.login"})

		fmt.Println(color.GreenString("✓") + " Logged in as " + ui.Highlight.Sprint(username))
		fmt.Println(ui.Info.Sprint("→") + " Your passphrase is never stored; commands will prompt for it")
		return nil
	},
}
