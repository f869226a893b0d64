package cmd

import (
	logger "github.com/silverfern314/notevault/internal/logging"
	"github.com/spf13/cobra"
)

var (
	syncVerbose bool
	syncDebug   bool
	SyncLogger  logger.Logger

	SyncCmd = &cobra.Command{
		Use:   "sync",
		Short: "Sync the encrypted vault with a remote backend",
		Long: `Pushes, pulls, and merges the encrypted document against the
configured remote. The remote only ever sees ciphertext.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			SyncLogger = logger.Logger{
				Verbose: syncVerbose,
				Debug:   syncDebug,
			}
			SyncLogger.Debugf("Initializing sync command with verbose=%t, debug=%t", syncVerbose, syncDebug)
		},
	}
)

func init() {
	SyncCmd.PersistentFlags().BoolVarP(&syncVerbose, "verbose", "v", false, "enable verbose output")
	SyncCmd.PersistentFlags().BoolVar(&syncDebug, "debug", false, "enable debug output")

	SyncCmd.AddCommand(syncPushCmd)
	SyncCmd.AddCommand(syncPullCmd)
	SyncCmd.AddCommand(syncMergeCmd)
	SyncCmd.AddCommand(syncConfigCmd)
}
