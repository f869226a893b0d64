package cmd

import (
	logger "github.com/silverfern314/notevault/internal/logging"
	"github.com/spf13/cobra"
)

var (
	authVerbose bool
	authDebug   bool
	AuthLogger  logger.Logger

	AuthCmd = &cobra.Command{
		Use:   "auth",
		Short: "Manage the notevault session",
		Long:  `Provides login, logout, session inspection, and the audit log.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			AuthLogger = logger.Logger{
				Verbose: authVerbose,
				Debug:   authDebug,
			}
			AuthLogger.Debugf("Initializing auth command with verbose=%t, debug=%t", authVerbose, authDebug)
		},
	}
)

func init() {
	AuthCmd.PersistentFlags().BoolVarP(&authVerbose, "verbose", "v", false, "enable verbose output")
	AuthCmd.PersistentFlags().BoolVar(&authDebug, "debug", false, "enable debug output")

	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(authLogCmd)
}
