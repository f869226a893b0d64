package cmd

import (
	"fmt"
	"strings"

	"github.com/silverfern314/notevault/internal/configs"
	"github.com/silverfern314/notevault/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// backendValue is a pflag.Value that only accepts known backend kinds,
// so an unknown value fails at flag-parse time with the valid choices
// listed instead of surfacing later as a config error.
type backendValue string

var _ pflag.Value = (*backendValue)(nil)

func (b *backendValue) String() string { return string(*b) }

func (b *backendValue) Set(value string) error {
	if !configs.IsValidBackend(value) {
		return fmt.Errorf("invalid backend %q, must be one of: %s", value, strings.Join(configs.BackendKinds, ", "))
	}
	*b = backendValue(value)
	return nil
}

func (b *backendValue) Type() string { return "backend" }

var (
	configBackend  backendValue
	configBaseURL  string
	configUsername string
	configPassword string
	configToken    string
	configTimeout  int
)

func init() {
	flags := syncConfigCmd.Flags()
	flags.Var(&configBackend, "backend", "backend kind: "+strings.Join(configs.BackendKinds, ", "))
	flags.StringVar(&configBaseURL, "base-url", "", "base URL of the remote")
	flags.StringVar(&configUsername, "username", "", "username for basic-http auth")
	flags.StringVar(&configPassword, "password", "", "password for basic-http auth")
	flags.StringVar(&configToken, "token", "", "bearer token for repo-api auth")
	flags.IntVar(&configTimeout, "timeout", 0, "request timeout in seconds (0 uses the default)")
}

var syncConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the sync backend configuration",
	Long: `Without flags, prints the current sync configuration. With flags,
updates the named settings and saves them. Credentials are stored in
the config file in plaintext; protect the config directory accordingly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vault, err := openVault(SyncLogger)
		if err != nil {
			return SyncLogger.ErrorfAndReturn("failed to load config: %v", err)
		}

		if cmd.Flags().NFlag() == 0 {
			printSyncConfig(vault.config.Sync)
			return nil
		}

		sync := &vault.config.Sync
		if cmd.Flags().Changed("backend") {
			sync.Backend = string(configBackend)
		}
		if cmd.Flags().Changed("base-url") {
			sync.BaseURL = configBaseURL
		}
		if cmd.Flags().Changed("username") {
			sync.Username = configUsername
		}
		if cmd.Flags().Changed("password") {
			sync.Password = configPassword
		}
		if cmd.Flags().Changed("token") {
			sync.Token = configToken
		}
		if cmd.Flags().Changed("timeout") {
			sync.TimeoutSeconds = configTimeout
		}

		if err := configs.SaveConfig(vault.config); err != nil {
			return SyncLogger.ErrorfAndReturn("failed to save config: %v", err)
		}

		fmt.Println(color.GreenString("✓") + " Sync configuration saved")
		printSyncConfig(*sync)
		return nil
	},
}

func printSyncConfig(sync configs.SyncConfig) {
	fmt.Printf("Backend:  %s\n", ui.Highlight.Sprint(sync.Backend))
	if sync.BaseURL != "" {
		fmt.Printf("Base URL: %s\n", ui.Path.Sprint(sync.BaseURL))
	}
	if sync.Username != "" {
		fmt.Printf("Username: %s\n", sync.Username)
	}
	if sync.Password != "" {
		fmt.Printf("Password: %s\n", ui.Muted.Sprint("(set)"))
	}
	if sync.Token != "" {
		fmt.Printf("Token:    %s\n", ui.Muted.Sprint("(set)"))
	}
	fmt.Printf("Timeout:  %s\n", sync.Timeout())
}
